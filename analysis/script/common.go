package script

import (
	"github.com/cs-au-dk/absdom/utils"

	"github.com/fatih/color"
)

var colorize = struct {
	Statement    func(...interface{}) string
	Line         func(...interface{}) string
	Satisfied    func(...interface{}) string
	NotSatisfied func(...interface{}) string
	Unknown      func(...interface{}) string
	Unreachable  func(...interface{}) string
}{
	Statement: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgCyan).SprintFunc())(is...)
	},
	Line: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiBlack).SprintFunc())(is...)
	},
	Satisfied: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgGreen).SprintFunc())(is...)
	},
	NotSatisfied: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgRed).SprintFunc())(is...)
	},
	Unknown: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgYellow).SprintFunc())(is...)
	},
	Unreachable: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiRed).SprintFunc())(is...)
	},
}

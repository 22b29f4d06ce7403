package utils

import (
	"flag"
	"fmt"
	"log"
	"strings"
)

type options struct {
	domain             string
	task               string
	config             string
	function           string
	maxReductionRounds uint
	logai              bool
	noColorize         bool
	verbose            bool
}

const (
	_RUN = iota
	_LAWS
	_SSA
)

const (
	_DOMAIN_INTERVAL = iota
	_DOMAIN_PARITY
	_DOMAIN_INTERVAL_PARITY
)

// DefaultMaxReductionRounds bounds the number of rounds a reduced product
// may spend before its reduction is considered divergent.
const DefaultMaxReductionRounds = 64

func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%s", len(is)), is...)
		}
	}
	return col
}

var task = []struct{ flag, explanation string }{{
	"run",
	"Run a straight-line script of assignments, assumptions and checks over the chosen domain",
}, {
	"laws",
	"Check the lattice laws of the chosen domain over a built-in sample set",
}, {
	"ssa",
	"Translate the entry block of a Go function to SSA and evaluate it over the chosen domain",
}}

var domains = []struct{ flag, explanation string }{{
	"interval",
	"Integer ranges [low, high] with possibly infinite bounds",
}, {
	"parity",
	"Even/odd abstraction of integers",
}, {
	"interval-parity",
	"Reduced product of the interval and parity domains",
}}

var opts = &options{
	maxReductionRounds: DefaultMaxReductionRounds,
}

type optInterface struct{}

type taskInterface struct{}

type domainInterface struct{}

func Opts() optInterface {
	return optInterface{}
}

func (optInterface) NoColorize() bool {
	return opts.noColorize
}

func (optInterface) LogAI() bool {
	return opts.logai
}

func (optInterface) Verbose() bool {
	return opts.verbose
}

func (optInterface) Config() string {
	return opts.config
}

func (optInterface) Function() string {
	return opts.function
}

// MaxReductionRounds is the upper bound on Granger reduction rounds.
func (optInterface) MaxReductionRounds() int {
	return int(opts.maxReductionRounds)
}

// SetMaxReductionRounds overrides the reduction bound. Mainly useful for testing.
func (optInterface) SetMaxReductionRounds(n uint) {
	opts.maxReductionRounds = n
}

func (optInterface) SetNoColorize(b bool) {
	opts.noColorize = b
}

func (optInterface) Domain() domainInterface {
	return domainInterface{}
}
func (domainInterface) Name() string {
	return opts.domain
}
func (domainInterface) IsInterval() bool {
	return opts.domain == domains[_DOMAIN_INTERVAL].flag
}
func (domainInterface) IsParity() bool {
	return opts.domain == domains[_DOMAIN_PARITY].flag
}
func (domainInterface) IsIntervalParity() bool {
	return opts.domain == domains[_DOMAIN_INTERVAL_PARITY].flag
}

func (optInterface) Task() taskInterface {
	return taskInterface{}
}
func (taskInterface) Name() string {
	return opts.task
}
func (taskInterface) IsRun() bool {
	return opts.task == task[_RUN].flag
}
func (taskInterface) IsLaws() bool {
	return opts.task == task[_LAWS].flag
}
func (taskInterface) IsSSA() bool {
	return opts.task == task[_SSA].flag
}

func init() {
	taskFlag := "\n"
	for _, task := range task {
		taskFlag += task.flag + " -- " + task.explanation + "\n"
	}
	taskFlag += "\n"
	domainFlag := "\n"
	for _, domain := range domains {
		domainFlag += domain.flag + " -- " + domain.explanation + "\n"
	}
	domainFlag += "\n"

	flag.StringVar(&(opts.task), "task", task[_RUN].flag, "Set the task to do during execution. Options:"+taskFlag)
	flag.StringVar(&(opts.domain), "domain", domains[_DOMAIN_INTERVAL_PARITY].flag, "Abstract domain used for evaluation. Options:"+domainFlag)
	flag.StringVar(&(opts.config), "config", "", "Path to a TOML file with default option values. Flags given on the command line take precedence.")
	flag.StringVar(&(opts.function), "fun", "main", "Function whose entry block is evaluated by the ssa task.")
	flag.UintVar(&(opts.maxReductionRounds), "max-reduction-rounds", DefaultMaxReductionRounds, "Upper bound on rounds of reduced product refinement")
	flag.BoolVar(&(opts.logai), "ai-logging", false, "Enable logging of specific events during abstract interpretation")
	flag.BoolVar(&(opts.noColorize), "no-colorize", false, "Disable pretty printer colorization")
	flag.BoolVar(&(opts.verbose), "verbose", false, "enable verbose output")

	// Set up logging
	log.SetFlags(log.Ltime | log.Lshortfile)
}

func ParseArgs() {
	// Calling flag.Parse in init messes up unit tests.
	// See https://stackoverflow.com/questions/60235896/flag-provided-but-not-defined-test-v
	flag.Parse()

	if opts.config != "" {
		explicit := map[string]bool{}
		flag.Visit(func(f *flag.Flag) {
			explicit[f.Name] = true
		})
		if err := loadConfig(opts.config, explicit); err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}

	if err := validate(); err != nil {
		log.Fatal(err)
	}

	configureLogger()
}

func validate() error {
	validTask := false
	for _, task := range task {
		if task.flag == opts.task {
			validTask = true
			break
		}
	}
	if !validTask {
		return fmt.Errorf("Value \"%s\" is not valid for -task", opts.task)
	}

	validDomain := false
	for _, domain := range domains {
		if domain.flag == opts.domain {
			validDomain = true
			break
		}
	}
	if !validDomain {
		return fmt.Errorf("Value \"%s\" is not valid for -domain", opts.domain)
	}

	if opts.maxReductionRounds == 0 {
		return fmt.Errorf("-max-reduction-rounds must be positive")
	}
	return nil
}

func (optInterface) OnVerbose(do func()) {
	if Opts().Verbose() {
		do()
	}
}

package main

import (
	"os"

	ai "github.com/cs-au-dk/absdom/analysis/absint"
	L "github.com/cs-au-dk/absdom/analysis/lattice"
	"github.com/cs-au-dk/absdom/analysis/symbolic"
	"github.com/cs-au-dk/absdom/utils"
)

var (
	opts   = utils.Opts()
	task   = opts.Task()
	logger = utils.Logger()
)

func main() {
	utils.ParseArgs()

	var err error
	switch domain := opts.Domain(); {
	case domain.IsInterval():
		err = pipeline[L.Interval]{
			domain: func(reg *symbolic.Registry) L.ValueDomain[L.Interval] {
				return ai.Create().Interval(reg)
			},
			samples: intervalSamples(),
		}.execute()
	case domain.IsParity():
		err = pipeline[L.Parity]{
			domain: func(reg *symbolic.Registry) L.ValueDomain[L.Parity] {
				return ai.Create().Parity(reg)
			},
			samples: []L.Parity{L.Even, L.Odd},
		}.execute()
	case domain.IsIntervalParity():
		var samples []L.IntervalParity
		samples, err = intervalParitySamples()
		if err == nil {
			err = pipeline[L.IntervalParity]{
				domain: func(reg *symbolic.Registry) L.ValueDomain[L.IntervalParity] {
					return ai.Create().IntervalParity(reg)
				},
				samples: samples,
			}.execute()
		}
	}

	if err != nil {
		logger.Errorf("%+v", err)
		os.Exit(1)
	}
}

func intervalSamples() []L.Interval {
	elements := L.Create().Element()
	return []L.Interval{
		elements.IntervalSingleton(0),
		elements.IntervalSingleton(1),
		elements.IntervalFinite(-3, 4),
		elements.IntervalFinite(2, 9),
		elements.Interval(L.FiniteBound(1), L.PlusInfinity{}),
		elements.Interval(L.MinusInfinity{}, L.FiniteBound(0)),
	}
}

func intervalParitySamples() ([]L.IntervalParity, error) {
	lat := L.Create().Lattice().IntervalParity()
	var samples []L.IntervalParity
	for _, i := range intervalSamples() {
		for _, p := range []L.Parity{L.Even, L.Odd, L.ParityTop} {
			v, err := lat.Make(i, p)
			if err != nil {
				return nil, err
			}
			samples = append(samples, v)
		}
	}
	return samples, nil
}

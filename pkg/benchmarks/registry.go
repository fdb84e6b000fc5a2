package benchmarks

import (
	"fmt"
	"sort"

	"github.com/mihai-snyk/moea/pkg/benchmarks/placement"
	"github.com/mihai-snyk/moea/pkg/framework"
)

type factory func(numVars, numObjectives int) (framework.Problem, error)

var registry = map[string]factory{
	"ZDT1":     func(v, _ int) (framework.Problem, error) { return NewZDT1(v), nil },
	"ZDT2":     func(v, _ int) (framework.Problem, error) { return NewZDT2(v), nil },
	"ZDT3":     func(v, _ int) (framework.Problem, error) { return NewZDT3(v), nil },
	"DTLZ1":    func(v, m int) (framework.Problem, error) { return NewDTLZ1(v, m), nil },
	"DTLZ2":    func(v, m int) (framework.Problem, error) { return NewDTLZ2(v, m), nil },
	"Srinivas": func(_, _ int) (framework.Problem, error) { return NewSrinivas(), nil },
	// numVars is the number of tasks of the synthetic instance; a third
	// objective adds migration.
	"Placement": func(v, m int) (framework.Problem, error) {
		if m == 3 {
			return placement.Synthetic(v, placement.WithMigrationObjective())
		}
		return placement.Synthetic(v)
	},
}

// New builds a registered benchmark. Zero sizes select the customary
// dimensions of the problem.
func New(name string, numVars, numObjectives int) (framework.Problem, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown benchmark %q, known: %v", name, Names())
	}
	if numObjectives == 0 {
		numObjectives = 2
	}
	if numVars == 0 {
		switch name {
		case "ZDT1", "ZDT2", "ZDT3":
			numVars = 30
		case "DTLZ1":
			numVars = numObjectives + 4
		case "DTLZ2":
			numVars = numObjectives + 9
		case "Placement":
			numVars = 40
		}
	}
	return f(numVars, numObjectives)
}

// Names lists the registered benchmarks in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

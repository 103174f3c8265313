package orchestration

import "github.com/agbru/fibmod/internal/fibonacci"

// GetCalculatorsToRun returns the calculators selected by algo: every
// registered calculator in factory order for "all", otherwise the named one.
// An unknown name yields nil.
func GetCalculatorsToRun(algo string, factory fibonacci.CalculatorFactory) []fibonacci.Calculator {
	if algo == "all" {
		names := factory.List()
		calculators := make([]fibonacci.Calculator, 0, len(names))
		for _, name := range names {
			if calc, err := factory.Get(name); err == nil {
				calculators = append(calculators, calc)
			}
		}
		return calculators
	}
	if calc, err := factory.Get(algo); err == nil {
		return []fibonacci.Calculator{calc}
	}
	return nil
}

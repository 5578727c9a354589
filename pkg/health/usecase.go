package health

import (
	"context"
	"errors"
	"fmt"
)

// Checker — проверка одной внешней зависимости (хранилище анализов).
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// CheckResult — состояние одной зависимости; Err пустой, если она доступна.
type CheckResult struct {
	Name string `json:"name"`
	Err  string `json:"error,omitempty"`
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Ready(ctx context.Context) ([]CheckResult, error)
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers. With no checkers the service is always ready.
func NewService(checkers ...Checker) ReadinessUseCase {
	return &service{checkers: checkers}
}

// Ready runs every checker; the error joins all failures.
func (s *service) Ready(ctx context.Context) ([]CheckResult, error) {
	results := make([]CheckResult, 0, len(s.checkers))
	var errs []error
	for _, ch := range s.checkers {
		res := CheckResult{Name: ch.Name()}
		if err := ch.Check(ctx); err != nil {
			res.Err = err.Error()
			errs = append(errs, fmt.Errorf("%s: %w", ch.Name(), err))
		}
		results = append(results, res)
	}
	return results, errors.Join(errs...)
}

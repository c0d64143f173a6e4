package health

import (
	"context"
	"errors"
	"fmt"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Ready(ctx context.Context) error
}

// CheckError names the checker that failed.
type CheckError struct {
	Checker string
	Err     error
}

func (e *CheckError) Error() string { return fmt.Sprintf("%s: %v", e.Checker, e.Err) }

func (e *CheckError) Unwrap() error { return e.Err }

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers. With no checkers the service is always ready.
func NewService(checkers ...Checker) ReadinessUseCase {
	return &service{checkers: checkers}
}

// Ready runs every checker and joins the failures, so one probe reports
// every unreachable store.
func (s *service) Ready(ctx context.Context) error {
	var errs []error
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			errs = append(errs, &CheckError{Checker: ch.Name(), Err: err})
		}
	}
	return errors.Join(errs...)
}

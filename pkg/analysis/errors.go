package analysis

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("analysis not found")
	ErrInsufficientText    = errors.New("insufficient text extracted from resume")
	ErrEmptyJobDescription = errors.New("job description is required")
)

// Stage — шаг конвейера анализа.
type Stage string

const (
	StageReceived   Stage = "received"
	StageExtracting Stage = "extracting"
	StageMatching   Stage = "matching"
	StageScoring    Stage = "scoring"
	StageMerged     Stage = "merged"
	StageStored     Stage = "stored"
	StageFailed     Stage = "failed"
)

// StageError reports the step at which a request moved to StageFailed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("analysis failed at %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

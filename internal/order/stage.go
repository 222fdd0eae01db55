package order

import "fmt"

// Stage identifies where in the submission pipeline a failure happened.
// The pipeline runs the stages strictly in order; any failure aborts the
// remaining ones.
type Stage string

const (
	StageParse    Stage = "parse"
	StageCustomer Stage = "customer"
	StageLines    Stage = "lines"
	StageCreate   Stage = "create"
	StageConfirm  Stage = "confirm"
)

// StageError tags an underlying failure with the pipeline stage it occurred
// in. The HTTP layer reports only the cause; the stage is for logs.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func fail(stage Stage, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}

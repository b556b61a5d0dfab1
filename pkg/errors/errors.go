// Package errors provides error handling and the warning system used across
// rsample. It defines structured error types for resampling configuration and
// evaluation failures, backed by cockroachdb/errors for stack traces.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// Default handler logs to standard error.
		log.Printf("rsample-warning: %v\n", w)
	}
	// zerolog sink, installed lazily to avoid an import cycle with pkg/log.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the warning handler for the whole library.
// Callers that consider a warning condition (such as an empty out-of-bag
// set) a hard error can intercept it here.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a zerolog-backed warning sink. pkg/log calls
// this during setup; it exists as an indirection to avoid a circular import.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning. When a zerolog sink is installed the warning goes
// there as a structured event, otherwise it falls back to the plain handler.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// EmptyAssessmentWarning is emitted when a bootstrap resample draws every
// row at least once, leaving its out-of-bag assessment set empty. This is a
// legitimate outcome for small datasets; the assessment set stays present
// and explicitly empty.
type EmptyAssessmentWarning struct {
	Label string
	Rows  int
}

func (w *EmptyAssessmentWarning) Error() string {
	return fmt.Sprintf("resample %s has an empty assessment set (all %d rows were drawn)", w.Label, w.Rows)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *EmptyAssessmentWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("split", w.Label).
		Int("rows", w.Rows).
		Str("type", "EmptyAssessmentWarning")
}

// NewEmptyAssessmentWarning creates a new EmptyAssessmentWarning.
func NewEmptyAssessmentWarning(label string, rows int) *EmptyAssessmentWarning {
	return &EmptyAssessmentWarning{Label: label, Rows: rows}
}

// StratumImbalanceWarning is emitted when stratified sampling cannot keep a
// stratum's proportions within one row of the target across splits.
type StratumImbalanceWarning struct {
	Column  string
	Level   string
	MaxSkew int
}

func (w *StratumImbalanceWarning) Error() string {
	return fmt.Sprintf("stratum %q of column %q is unevenly distributed across splits (max skew %d rows)", w.Level, w.Column, w.MaxSkew)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *StratumImbalanceWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("column", w.Column).
		Str("level", w.Level).
		Int("max_skew", w.MaxSkew).
		Str("type", "StratumImbalanceWarning")
}

// NewStratumImbalanceWarning creates a new StratumImbalanceWarning.
func NewStratumImbalanceWarning(column, level string, maxSkew int) *StratumImbalanceWarning {
	return &StratumImbalanceWarning{Column: column, Level: level, MaxSkew: maxSkew}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// ValidationError reports an invalid generator or driver parameter, such as
// a split proportion outside (0, 1) or a fold count larger than the dataset.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("rsample: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a new ValidationError with a stack trace.
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// DimensionError reports a length mismatch, for example when a result
// column being attached to a resample set has the wrong number of values.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("rsample: %s: length mismatch. Expected %d, got %d", e.Op, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "DimensionError")
}

// NewDimensionError creates a new DimensionError with a stack trace.
func NewDimensionError(op string, expected, got int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// StratumError reports a stratification problem: the column is missing,
// it is not discrete, or a stratum is too small for the requested scheme.
type StratumError struct {
	Column string
	Reason string
}

func (e *StratumError) Error() string {
	return fmt.Sprintf("rsample: stratification on column '%s' failed: %s", e.Column, e.Reason)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *StratumError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("column", e.Column).
		Str("reason", e.Reason).
		Str("type", "StratumError")
}

// NewStratumError creates a new StratumError with a stack trace.
func NewStratumError(column, reason string) error {
	err := &StratumError{Column: column, Reason: reason}
	return errors.WithStack(err)
}

// ValueError reports an argument whose value is unusable for the operation.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("rsample: %s: %s", e.Op, e.Message)
}

// NewValueError creates a new ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// EvaluationError wraps a failure of the user-supplied function for one
// split, carrying the split label so the failing resample can be located.
type EvaluationError struct {
	SplitLabel string
	Err        error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("rsample: evaluation failed for split %s: %v", e.SplitLabel, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *EvaluationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("split", e.SplitLabel).
		AnErr("cause", e.Err).
		Str("type", "EvaluationError")
}

// NewEvaluationError creates a new EvaluationError with a stack trace.
func NewEvaluationError(splitLabel string, err error) error {
	evalErr := &EvaluationError{SplitLabel: splitLabel, Err: err}
	return errors.WithStack(evalErr)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches the target error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As reports whether err can be assigned to the target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates an error with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// Join combines multiple errors into one.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// ===========================================================================
//
//	Common error variables
//
// ===========================================================================

var (
	// ErrEmptyData is returned when a dataset with zero rows is supplied.
	ErrEmptyData = New("empty data")

	// ErrColumnNotFound is returned when a named column does not exist.
	ErrColumnNotFound = New("column not found")
)

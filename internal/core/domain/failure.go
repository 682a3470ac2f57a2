package domain

import "errors"

// FailureKind tags the lifecycle phase a failure was raised in.
type FailureKind string

const (
	// FailureConstruction is raised while the build definition is created.
	FailureConstruction FailureKind = "construction"
	// FailureInjection is raised while parameter values are injected.
	FailureInjection FailureKind = "injection"
	// FailureResolution is raised while the executable target set is computed.
	FailureResolution FailureKind = "resolution"
	// FailureValidation is raised when targets do not meet their requirements.
	FailureValidation FailureKind = "validation"
	// FailureExecution is raised when target work fails.
	FailureExecution FailureKind = "execution"
)

// Failure is the single typed failure a lifecycle phase produces.
// Its message is the message of the underlying error.
type Failure struct {
	Kind FailureKind
	Err  error
}

// NewFailure tags err with the phase it was raised in. A nil err yields nil.
func NewFailure(kind FailureKind, err error) *Failure {
	if err == nil {
		return nil
	}
	return &Failure{Kind: kind, Err: err}
}

func (f *Failure) Error() string {
	return f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// InvocationError carries the failure of one target's work function.
// It adds no message of its own and is never reported in place of its cause.
type InvocationError struct {
	Target InternedString
	Err    error
}

func (e *InvocationError) Error() string {
	return e.Err.Error()
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// Flatten expands err into the leaf failures that must each be reported.
//
// Composites (errors exposing Unwrap() []error, such as errors.Join) are
// expanded recursively. Failure and InvocationError, which only carry a single
// inner error, are replaced by that inner error. Any other error is a leaf,
// even if it wraps further errors, because its message adds information.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}

	switch e := err.(type) {
	case *Failure:
		return Flatten(e.Err)
	case *InvocationError:
		return Flatten(e.Err)
	}

	if multi, ok := err.(interface{ Unwrap() []error }); ok {
		var leaves []error
		for _, child := range multi.Unwrap() {
			leaves = append(leaves, Flatten(child)...)
		}
		return leaves
	}

	return []error{err}
}

// KindOf returns the phase tag of err, if it carries one.
func KindOf(err error) (FailureKind, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind, true
	}
	return "", false
}

package runner

import "fmt"

// Returned when a test's signature is not something the runner can generate arguments from.
type UnsupportedSignatureError struct {
	Test      string
	Signature any
}

func (e *UnsupportedSignatureError) Error() string {
	return fmt.Sprintf("runner: test %q: unsupported signature %T", e.Test, e.Signature)
}

// Returned when checking a law raised an error, usually because the implementation panicked.
type LawError struct {
	Law string
	Err error
}

func (e *LawError) Error() string {
	return fmt.Sprintf("runner: law %q: %v", e.Law, e.Err)
}

func (e *LawError) Unwrap() error { return e.Err }

// Returned when a replayed law is not among the tests.
type UnknownLawError struct {
	Law string
}

func (e *UnknownLawError) Error() string {
	return fmt.Sprintf("runner: unable to replay law %q, no test has that name", e.Law)
}

// Aggregates the errors that occurred during a run
type runError struct {
	errorSlice []error
}

func (re runError) Error() string {
	return fmt.Sprintf("runner: %v errors occurred checking laws. \nError 1: %v", len(re.errorSlice), re.errorSlice[0])
}

func (re runError) Unwrap() []error { return re.errorSlice }

package tool

// ExecutionStatus is the binary outcome of one tool invocation. A run
// starts at Success and may move to Failure exactly once; nothing ever
// moves it back within the same run.
type ExecutionStatus int

const (
	Success ExecutionStatus = iota
	Failure
)

// String returns a human-readable label for the status.
func (s ExecutionStatus) String() string {
	if s == Failure {
		return "failure"
	}
	return "success"
}

// Code maps the status to its process exit code.
func (s ExecutionStatus) Code() int {
	if s == Failure {
		return 1
	}
	return 0
}

package domain

// ProcessResult is the captured outcome of an external process run
type ProcessResult struct {
	Stdout   string // Captured standard output
	Stderr   string // Captured standard error
	ExitCode *int   // Exit status, nil while running or when it could not be read
}

// Terminated reports whether the process produced a readable exit status
func (r ProcessResult) Terminated() bool {
	return r.ExitCode != nil
}

// Succeeded reports whether the process exited with status 0
func (r ProcessResult) Succeeded() bool {
	return r.ExitCode != nil && *r.ExitCode == 0
}

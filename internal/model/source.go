package model

// EquationFile is an equation file found on disk.
type EquationFile struct {
	Path Path
	Hash string
}

// LineError reports a line of an equation file that failed to parse.
type LineError struct {
	Line int // 1-based
	Text string
	Err  error
}

// CheckResult holds the outcome of parsing every line of one file.
type CheckResult struct {
	File   EquationFile
	Lines  int
	Errors []LineError
}

// OK reports whether every line of the file parsed.
func (r CheckResult) OK() bool {
	return len(r.Errors) == 0
}

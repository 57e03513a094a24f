package parser

import "fmt"

// Splitter splits raw command output into elements
type Splitter func(output string) []string

// ParseError is returned when command output does not have the expected shape
type ParseError struct {
	What   string // What was being looked for
	Output string // The output that was parsed
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("output does not contain %s: %s", e.What, e.Output)
}

package parser

import (
	"regexp"
	"strings"
)

var (
	newlineRuns = regexp.MustCompile(`\s*\n+\s*`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// SplitOutput is the default Splitter for wp-cli output: multi-line output is
// split on line breaks, single-line output on whitespace
func SplitOutput(output string) []string {
	output = strings.TrimSpace(output)
	if output == "" {
		return []string{}
	}

	if strings.Contains(output, "\n") {
		return newlineRuns.Split(output, -1)
	}
	return whitespace.Split(output, -1)
}

// TrimAll trims every element and drops the ones left empty
func TrimAll(elements []string) []string {
	trimmed := make([]string, 0, len(elements))
	for _, element := range elements {
		if element = strings.TrimSpace(element); element != "" {
			trimmed = append(trimmed, element)
		}
	}
	return trimmed
}

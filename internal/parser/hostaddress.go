package parser

import "regexp"

var inetPattern = regexp.MustCompile(`inet (?P<ip>[\d.]+)`)

// ParseHostAddress extracts the first IPv4 address following "inet " in the
// output of `ip -4 addr show <interface>`
func ParseHostAddress(output string) (string, error) {
	match := inetPattern.FindStringSubmatch(output)
	if len(match) < 2 || match[1] == "" {
		return "", &ParseError{What: "the pattern of an IP address", Output: output}
	}
	return match[1], nil
}

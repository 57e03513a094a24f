package wpcli

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/mattn/go-shellwords"
)

// DefaultBlockedKeys returns the configuration keys never passed to wp-cli as options
func DefaultBlockedKeys() map[string]struct{} {
	return map[string]struct{}{
		"throw":   {},
		"timeout": {},
		"debug":   {},
		"color":   {},
		"prompt":  {},
		"quiet":   {},
		"env":     {},
		"path":    {},
		"bin":     {},
	}
}

// DefaultOptions returns the options passed to wp-cli unless configured otherwise
func DefaultOptions() map[string]any {
	return map[string]any{"allow-root": true}
}

// Tokens turns a user command into wp-cli arguments. A single element is
// split with shell rules; a leading "wp" is dropped.
func Tokens(userCommand []string) ([]string, error) {
	tokens := userCommand
	if len(userCommand) == 1 {
		parsed, err := shellwords.Parse(userCommand[0])
		if err != nil {
			return nil, fmt.Errorf("parse wp-cli command %q: %w", userCommand[0], err)
		}
		tokens = parsed
	}

	if len(tokens) > 0 && tokens[0] == "wp" {
		tokens = tokens[1:]
	}
	return append([]string(nil), tokens...), nil
}

// InlineOptions returns the names of the --options present in tokens
func InlineOptions(tokens []string) map[string]struct{} {
	inline := map[string]struct{}{}
	for _, token := range tokens {
		if !strings.HasPrefix(token, "--") || token == "--" {
			continue
		}
		name, _, _ := strings.Cut(strings.TrimPrefix(token, "--"), "=")
		inline[name] = struct{}{}
	}
	return inline
}

// buildOptions serializes the configured options, skipping blocked keys and
// the ones the user command sets inline
func buildOptions(configured map[string]any, blocked, inline map[string]struct{}) []string {
	options := DefaultOptions()
	for key, value := range configured {
		options[kebab(key)] = value
	}

	var flags []string
	for _, key := range slices.Sorted(maps.Keys(options)) {
		if _, ok := blocked[key]; ok {
			continue
		}
		if _, ok := inline[key]; ok {
			continue
		}
		flags = append(flags, optionFlags(key, options[key])...)
	}
	return flags
}

func optionFlags(key string, value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case bool:
		if v {
			return []string{"--" + key}
		}
		return nil
	case string:
		if v == "" {
			return nil
		}
		return []string{"--" + key + "=" + v}
	case []string:
		flags := make([]string, 0, len(v))
		for _, item := range v {
			flags = append(flags, optionFlags(key, item)...)
		}
		return flags
	case []any:
		flags := make([]string, 0, len(v))
		for _, item := range v {
			flags = append(flags, optionFlags(key, item)...)
		}
		return flags
	default:
		return []string{fmt.Sprintf("--%s=%v", key, v)}
	}
}

// kebab turns camelCase configuration keys into wp-cli option names
func kebab(key string) string {
	var b strings.Builder
	for i, r := range key {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

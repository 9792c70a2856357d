// Package buildargs parses KEY=VALUE build argument strings passed on
// the command line into the form the docker build API expects.
package buildargs

import (
	"fmt"
	"sort"
	"strings"
)

// Parse converts repeated KEY=VALUE strings into a build-arg map.
// Keys must be non-empty and unique; values may be empty.
func Parse(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	args := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		key, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("build arg must be in KEY=VALUE format, got: %s", pair)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("build arg key cannot be empty in pair: %s", pair)
		}
		if _, dup := args[key]; dup {
			return nil, fmt.Errorf("duplicate build arg key: %s", key)
		}

		args[key] = value
	}

	if len(args) == 0 {
		return nil, nil
	}
	return args, nil
}

// Format renders a build-arg map back to sorted KEY=VALUE lines for
// verbose output.
func Format(args map[string]string) string {
	if len(args) == 0 {
		return ""
	}

	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s=%s", k, args[k]))
	}
	return sb.String()
}

package openapi

import (
	"fmt"
	"strings"
)

// Result carries the metadata extracted from a structurally valid
// specification. It is derived read-only from the parsed document.
type Result struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	SpecVersion string `json:"spec_version"`
	PathsCount  int    `json:"paths_count"`
	HasOpenAPI  bool   `json:"has_openapi"`
	HasSwagger  bool   `json:"has_swagger"`
}

// InvalidSpecError reports a structural violation in a specification
// document. It is terminal for that document: the file must be corrected,
// not resubmitted as-is.
type InvalidSpecError struct {
	Reason string
}

func (e *InvalidSpecError) Error() string {
	return fmt.Sprintf("invalid OpenAPI specification: %s", e.Reason)
}

func invalid(reason string) error {
	return &InvalidSpecError{Reason: reason}
}

// Validate checks a parsed document for the structure every OpenAPI
// specification must have. Checks run in a fixed order and the first
// violation is returned; only the required-fields check aggregates
// (missing names joined with ", " in the order info, paths).
func Validate(doc any) (*Result, error) {
	spec, ok := doc.(map[string]any)
	if !ok {
		return nil, invalid("specification must be a JSON object")
	}

	_, hasOpenAPI := spec["openapi"]
	_, hasSwagger := spec["swagger"]
	if !hasOpenAPI && !hasSwagger {
		return nil, invalid("missing 'openapi' or 'swagger' version field")
	}

	var missing []string
	for _, field := range []string{"info", "paths"} {
		if _, ok := spec[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, invalid("missing required fields: " + strings.Join(missing, ", "))
	}

	info, ok := spec["info"].(map[string]any)
	if !ok {
		return nil, invalid("'info' field must be an object")
	}
	if _, ok := info["title"]; !ok {
		return nil, invalid("missing required 'info.title' field")
	}
	if _, ok := info["version"]; !ok {
		return nil, invalid("missing required 'info.version' field")
	}

	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return nil, invalid("'paths' field must be an object")
	}

	// 'openapi' wins when both version fields are present.
	specVersion := spec["openapi"]
	if specVersion == nil {
		specVersion = spec["swagger"]
	}

	return &Result{
		Title:       stringify(info["title"]),
		Version:     stringify(info["version"]),
		SpecVersion: stringify(specVersion),
		PathsCount:  len(paths),
		HasOpenAPI:  hasOpenAPI,
		HasSwagger:  hasSwagger,
	}, nil
}

// ValidateFile loads and validates a specification file in one step.
func ValidateFile(path string) (*Result, Format, error) {
	doc, format, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	res, err := Validate(doc)
	if err != nil {
		return nil, format, err
	}
	return res, format, nil
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	// YAML can parse bare version numbers as floats or ints.
	return fmt.Sprintf("%v", v)
}

// Package openapi loads OpenAPI specification files and checks their
// structure. Validation here is structural only: it verifies the presence
// and shape of required fields, not schema semantics.
package openapi

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mocksmith/mocksmith-cli/util/common/errors"
	"github.com/mocksmith/mocksmith-cli/util/common/fileutil"
)

// Format identifies the serialization of a loaded specification file.
type Format string

const (
	FormatJSON Format = "JSON"
	FormatYAML Format = "YAML"
)

// Load reads an OpenAPI specification file and parses it into a generic
// document. Files ending in .yaml/.yml parse as YAML and .json as JSON;
// any other extension is sniffed, JSON first, then YAML.
func Load(path string) (any, Format, error) {
	data, err := fileutil.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	var (
		doc    any
		format Format
	)

	switch fileutil.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, "", errors.Wrap(err, "invalid file format")
		}
		format = FormatYAML
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, "", errors.Wrap(err, "invalid file format")
		}
		format = FormatJSON
	default:
		if err := json.Unmarshal(data, &doc); err == nil {
			format = FormatJSON
			break
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, "", fmt.Errorf("unable to parse file as JSON or YAML: %s", path)
		}
		format = FormatYAML
	}

	if doc == nil {
		return nil, "", fmt.Errorf("empty or invalid specification file: %s", path)
	}

	return doc, format, nil
}

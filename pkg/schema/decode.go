package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"

	"github.com/shashibeit/ui-theme-material/pkg/validator"
)

var strictJSON = sonic.Config{DisallowUnknownFields: true}.Froze()

// DecodeYAML parses a YAML document and builds its schema.
func DecodeYAML(data []byte, reg Registry) (validator.Schema, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	return doc.Schema(reg)
}

// DecodeJSON parses a JSON document and builds its schema.
func DecodeJSON(data []byte, reg Registry) (validator.Schema, error) {
	var doc Document
	if err := strictJSON.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	return doc.Schema(reg)
}

// LoadFile reads a .yaml, .yml or .json document.
func LoadFile(path string, reg Registry) (validator.Schema, error) {
	var decode func([]byte, Registry) (validator.Schema, error)
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "yaml", "yml":
		decode = DecodeYAML
	case "json":
		decode = DecodeJSON
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	schema, err := decode(data, reg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return schema, nil
}

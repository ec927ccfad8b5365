package i18n

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// Catalog maps a language code to its translations.
type Catalog map[string]map[string]any

// Parser decodes catalog file content.
type Parser interface {
	Parse(content []byte) (Catalog, error)
}

// ParserFunc adapts a function to Parser.
type ParserFunc func(content []byte) (Catalog, error)

func (f ParserFunc) Parse(content []byte) (Catalog, error) { return f(content) }

// YAMLParser decodes YAML catalogs.
var YAMLParser = ParserFunc(func(content []byte) (Catalog, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return catalogFrom(raw)
})

// JSONParser decodes JSON catalogs.
var JSONParser = ParserFunc(func(content []byte) (Catalog, error) {
	var raw map[string]any
	if err := sonic.Unmarshal(content, &raw); err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return catalogFrom(raw)
})

// ParserForFile picks a parser by file extension.
func ParserForFile(path string) (Parser, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "yaml", "yml":
		return YAMLParser, nil
	case "json":
		return JSONParser, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func catalogFrom(raw map[string]any) (Catalog, error) {
	out := make(Catalog, len(raw))
	for lang, val := range raw {
		m, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q holds %T", ErrInvalidCatalogRoot, lang, val)
		}
		out[lang] = m
	}
	return out, nil
}

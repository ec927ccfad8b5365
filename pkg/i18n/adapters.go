package i18n

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// TranslationAdapter loads a catalog.
type TranslationAdapter interface {
	Load(ctx context.Context) (Catalog, error)
}

// MapAdapter serves an in-memory catalog.
type MapAdapter struct {
	Data Catalog
}

func (a *MapAdapter) Load(_ context.Context) (Catalog, error) {
	if a.Data == nil {
		return Catalog{}, nil
	}
	return a.Data, nil
}

// FileAdapter reads a catalog from a YAML or JSON file.
type FileAdapter struct {
	Path   string
	Parser Parser
}

// NewFileAdapter picks the parser from the file extension.
func NewFileAdapter(path string) (*FileAdapter, error) {
	parser, err := ParserForFile(path)
	if err != nil {
		return nil, err
	}
	return &FileAdapter{Path: path, Parser: parser}, nil
}

func (a *FileAdapter) Load(ctx context.Context) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	catalog, err := a.Parser.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.Path, err)
	}
	return catalog, nil
}

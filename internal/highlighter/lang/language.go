// Package lang describes the languages highlighted with tree-sitter.
package lang

import (
	"fmt"
	"io/fs"

	sitter "github.com/smacker/go-tree-sitter"
)

// Language is a tree-sitter grammar with its highlight query.
type Language struct {
	// Name is the display name of the language
	Name string

	// TreeSitterLang is the tree-sitter language instance
	TreeSitterLang *sitter.Language

	// Extensions lists file extensions without the dot
	Extensions []string

	// QueryPath is the directory under queries/ holding highlights.scm
	QueryPath string
}

// Query reads the highlight query of l from queryFS.
func (l *Language) Query(queryFS fs.FS) ([]byte, error) {
	if l.QueryPath == "" {
		return nil, fmt.Errorf("no query path defined for language %s", l.Name)
	}
	queryPath := fmt.Sprintf("queries/%s/highlights.scm", l.QueryPath)
	query, err := fs.ReadFile(queryFS, queryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load query for language %s: %w", l.Name, err)
	}
	return query, nil
}

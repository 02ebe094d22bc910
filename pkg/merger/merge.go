// Package merger consolidates statements that import from the same module.
package merger

import (
	"github.com/1adybug/sort-imports/pkg/parser"
)

type mergeKey struct {
	path     string
	isExport bool
}

// MergeImports folds statements sharing (path, export-kind) into the first
// occurrence, preserving statement order. Side-effect statements and
// statements holding a namespace specifier never combine with anything, even
// same-path duplicates, and keep their positions.
//
// Specifier lists concatenate in statement order; duplicates by (name, alias)
// keep the first occurrence and inherit the duplicate's comments. Leading
// comments of merged statements concatenate in encounter order. Only the
// first statement's trailing comment stays attached; later ones move to
// RemovedTrailingComments so they can be re-emitted as standalone lines.
func MergeImports(statements []*parser.ImportStatement) []*parser.ImportStatement {
	var out []*parser.ImportStatement
	merged := make(map[mergeKey]*parser.ImportStatement)

	for _, stmt := range statements {
		if !stmt.Mergeable() {
			out = append(out, stmt)
			continue
		}
		key := mergeKey{path: stmt.Path, isExport: stmt.IsExport}
		target, ok := merged[key]
		if !ok {
			dup := stmt.Clone()
			merged[key] = dup
			out = append(out, dup)
			continue
		}
		mergeInto(target, stmt)
	}
	return out
}

func mergeInto(target, stmt *parser.ImportStatement) {
	for _, c := range stmt.Contents {
		if existing := findContent(target.Contents, c); existing != nil {
			existing.LeadingComments = append(existing.LeadingComments, c.LeadingComments...)
			existing.TrailingComments = append(existing.TrailingComments, c.TrailingComments...)
			continue
		}
		cc := *c
		target.Contents = append(target.Contents, &cc)
	}

	target.LeadingComments = append(target.LeadingComments, stmt.LeadingComments...)
	if stmt.TrailingComment != "" {
		target.RemovedTrailingComments = append(target.RemovedTrailingComments, stmt.TrailingComment)
	}
	target.RemovedTrailingComments = append(target.RemovedTrailingComments, stmt.RemovedTrailingComments...)
}

func findContent(contents []*parser.ImportContent, c *parser.ImportContent) *parser.ImportContent {
	for _, existing := range contents {
		if existing.Name == c.Name && existing.Alias == c.Alias {
			return existing
		}
	}
	return nil
}

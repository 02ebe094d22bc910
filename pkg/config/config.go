// Package config assembles the strategy bundle driving one transform.
// Custom classification, ordering, and separator logic are injected as
// functions built by the caller rather than encoded into string-keyed
// configuration; the serializable subset lives in Settings.
package config

import (
	"strings"

	"github.com/1adybug/sort-imports/pkg/formatter"
	"github.com/1adybug/sort-imports/pkg/sorter"
)

// Config bundles the pluggable strategies for one transform. It is built
// once per invocation and must not be mutated while a transform runs. A nil
// strategy selects the built-in default; a nil SortImportContent additionally
// keeps default and namespace specifiers pinned ahead of named ones.
type Config struct {
	Classify            sorter.ClassifyFunc
	SortGroup           sorter.GroupCompareFunc
	SortImportStatement sorter.StatementCompareFunc
	SortImportContent   sorter.ContentCompareFunc
	Separator           formatter.SeparatorFunc
	SortSideEffect      bool
	RemoveUnusedImports bool
}

// Default returns the built-in configuration: path-shape classification,
// lexical group order, side-effect statements as partition boundaries, no
// separator, no unused-import removal.
func Default() Config {
	return Config{}
}

// GroupOrderComparator orders groups by their position in order. Groups not
// listed sort after all listed ones, lexically among themselves.
func GroupOrderComparator(order []string) sorter.GroupCompareFunc {
	index := make(map[string]int, len(order))
	for i, name := range order {
		index[name] = i
	}
	rank := func(g *sorter.Group) int {
		if i, ok := index[g.Name]; ok {
			return i
		}
		return len(order)
	}
	return func(a, b *sorter.Group) int {
		ra, rb := rank(a), rank(b)
		if ra != rb {
			return ra - rb
		}
		return strings.Compare(a.Name, b.Name)
	}
}

package sorter

import (
	"sort"
	"strings"

	"github.com/1adybug/sort-imports/pkg/builtin"
	"github.com/1adybug/sort-imports/pkg/parser"
)

// DefaultAliasPrefixes are the path prefixes the default classifier treats
// as project aliases
var DefaultAliasPrefixes = []string{"@/", "~/", "#/"}

// NewPathClassifier returns the path-shape classifier: "./" and "../" paths
// are relative, alias-prefixed and absolute paths are aliases, everything
// else is an external module.
func NewPathClassifier(aliasPrefixes []string) ClassifyFunc {
	return func(stmt *parser.ImportStatement) string {
		path := stmt.Path
		if strings.HasPrefix(path, "./") || strings.HasPrefix(path, "../") {
			return GroupRelative
		}
		for _, prefix := range aliasPrefixes {
			if strings.HasPrefix(path, prefix) {
				return GroupAlias
			}
		}
		if strings.HasPrefix(path, "/") {
			return GroupAlias
		}
		return GroupModule
	}
}

// NewBuiltinClassifier behaves like NewPathClassifier but buckets Node.js
// built-in modules into their own group
func NewBuiltinClassifier(aliasPrefixes []string) ClassifyFunc {
	base := NewPathClassifier(aliasPrefixes)
	return func(stmt *parser.ImportStatement) string {
		if builtin.IsBuiltinModule(stmt.Path) {
			return GroupBuiltin
		}
		return base(stmt)
	}
}

// DefaultClassify is the built-in path-shape classifier
var DefaultClassify = NewPathClassifier(DefaultAliasPrefixes)

// DefaultSortGroup orders groups lexically by name
func DefaultSortGroup(a, b *Group) int {
	return strings.Compare(a.Name, b.Name)
}

// classification priority for the default statement comparator
var defaultPriority = map[string]int{
	GroupBuiltin:  0,
	GroupModule:   1,
	GroupAlias:    2,
	GroupRelative: 3,
}

// DefaultSortImportStatement orders statements by classification priority
// (module before alias before relative), then lexically by path
func DefaultSortImportStatement(a, b *parser.ImportStatement) int {
	pa := defaultPriority[DefaultClassify(a)]
	pb := defaultPriority[DefaultClassify(b)]
	if pa != pb {
		return pa - pb
	}
	return strings.Compare(a.Path, b.Path)
}

// DefaultSortImportContent places type-only specifiers before value
// specifiers and orders the type-only ones lexically by effective name.
// Value specifiers keep their encounter order: merged statements
// concatenate specifier lists in statement order, and re-sorting values
// lexically would make a second pass over the pipeline's own output drift.
func DefaultSortImportContent(a, b *parser.ImportContent) int {
	if a.Type != b.Type {
		if a.Type == parser.TypeContent {
			return -1
		}
		return 1
	}
	if a.Type == parser.TypeContent {
		return strings.Compare(a.EffectiveName(), b.EffectiveName())
	}
	return 0
}

// GroupImports partitions statements by classify, preserving first-encounter
// order of groups. A classifier that panics falls back to the default
// classifier for that statement; a broken strategy must not abort the
// transform.
func GroupImports(statements []*parser.ImportStatement, classify ClassifyFunc) []*Group {
	if classify == nil {
		classify = DefaultClassify
	}
	index := make(map[string]*Group)
	var groups []*Group
	for _, stmt := range statements {
		name := classifySafe(classify, stmt)
		group, ok := index[name]
		if !ok {
			group = &Group{Name: name, IsSideEffect: true}
			index[name] = group
			groups = append(groups, group)
		}
		group.Statements = append(group.Statements, stmt)
		if !stmt.IsSideEffect {
			group.IsSideEffect = false
		}
	}
	return groups
}

func classifySafe(classify ClassifyFunc, stmt *parser.ImportStatement) (name string) {
	defer func() {
		if recover() != nil {
			name = DefaultClassify(stmt)
		}
	}()
	return classify(stmt)
}

// SortGroups orders groups with cmp, stably
func SortGroups(groups []*Group, cmp GroupCompareFunc) {
	if cmp == nil {
		cmp = DefaultSortGroup
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return compareGroupsSafe(cmp, groups[i], groups[j]) < 0
	})
}

func compareGroupsSafe(cmp GroupCompareFunc, a, b *Group) (r int) {
	defer func() {
		if recover() != nil {
			r = DefaultSortGroup(a, b)
		}
	}()
	return cmp(a, b)
}

// SortImportStatements orders statements with cmp, stably
func SortImportStatements(statements []*parser.ImportStatement, cmp StatementCompareFunc) {
	if cmp == nil {
		cmp = DefaultSortImportStatement
	}
	sort.SliceStable(statements, func(i, j int) bool {
		return compareStatementsSafe(cmp, statements[i], statements[j]) < 0
	})
}

func compareStatementsSafe(cmp StatementCompareFunc, a, b *parser.ImportStatement) (r int) {
	defer func() {
		if recover() != nil {
			r = DefaultSortImportStatement(a, b)
		}
	}()
	return cmp(a, b)
}

// SortImportContents orders a statement's specifiers. With a nil comparator
// the default ordering applies and default/namespace specifiers stay pinned
// ahead of all named specifiers. A caller-supplied comparator disables
// pinning entirely and controls the full order, default and namespace
// placement included.
func SortImportContents(contents []*parser.ImportContent, cmp ContentCompareFunc) {
	pinned := cmp == nil
	if cmp == nil {
		cmp = DefaultSortImportContent
	}
	sort.SliceStable(contents, func(i, j int) bool {
		a, b := contents[i], contents[j]
		if pinned {
			ap := a.IsDefault() || a.IsNamespace()
			bp := b.IsDefault() || b.IsNamespace()
			if ap != bp {
				return ap
			}
			if ap {
				// pinned specifiers keep their relative order
				return false
			}
		}
		return compareContentsSafe(cmp, a, b) < 0
	})
}

func compareContentsSafe(cmp ContentCompareFunc, a, b *parser.ImportContent) (r int) {
	defer func() {
		if recover() != nil {
			r = DefaultSortImportContent(a, b)
		}
	}()
	return cmp(a, b)
}

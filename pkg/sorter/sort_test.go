package sorter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/1adybug/sort-imports/pkg/parser"
)

func stmt(path string) *parser.ImportStatement {
	return &parser.ImportStatement{Path: path, Contents: []*parser.ImportContent{{Name: "x"}}}
}

func TestDefaultClassify(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		path  string
		group string
	}{
		{"react", GroupModule},
		{"lodash/debounce", GroupModule},
		{"node:fs", GroupModule},
		{"fs", GroupModule},
		{"@scope/pkg", GroupModule},
		{"@/components/Button", GroupAlias},
		{"~/lib/api", GroupAlias},
		{"#/hooks", GroupAlias},
		{"/absolute/path", GroupAlias},
		{"./sibling", GroupRelative},
		{"../parent", GroupRelative},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req.Equal(tt.group, DefaultClassify(stmt(tt.path)))
		})
	}
}

func TestNewBuiltinClassifier(t *testing.T) {
	req := require.New(t)
	classify := NewBuiltinClassifier(DefaultAliasPrefixes)

	req.Equal(GroupBuiltin, classify(stmt("fs")))
	req.Equal(GroupBuiltin, classify(stmt("fs/promises")))
	req.Equal(GroupBuiltin, classify(stmt("node:anything")))
	req.Equal(GroupModule, classify(stmt("react")))
	req.Equal(GroupRelative, classify(stmt("./fs")))
}

func TestNewPathClassifier_customPrefixes(t *testing.T) {
	req := require.New(t)
	classify := NewPathClassifier([]string{"$lib/"})

	req.Equal(GroupAlias, classify(stmt("$lib/util")))
	// default prefixes no longer apply
	req.Equal(GroupModule, classify(stmt("@/components")))
}

func TestGroupImports(t *testing.T) {
	req := require.New(t)

	t.Run("first-encounter order", func(t *testing.T) {
		groups := GroupImports([]*parser.ImportStatement{
			stmt("./a"), stmt("react"), stmt("./b"), stmt("@/x"),
		}, nil)
		req.Len(groups, 3)
		req.Equal(GroupRelative, groups[0].Name)
		req.Equal(GroupModule, groups[1].Name)
		req.Equal(GroupAlias, groups[2].Name)
		req.Len(groups[0].Statements, 2)
	})

	t.Run("side-effect flag set only when all statements are side effects", func(t *testing.T) {
		se := &parser.ImportStatement{Path: "./a.css", IsSideEffect: true}
		groups := GroupImports([]*parser.ImportStatement{se, stmt("./b")}, nil)
		req.Len(groups, 1)
		req.False(groups[0].IsSideEffect)

		groups = GroupImports([]*parser.ImportStatement{se}, nil)
		req.True(groups[0].IsSideEffect)
	})

	t.Run("panicking classifier falls back per statement", func(t *testing.T) {
		classify := func(s *parser.ImportStatement) string {
			if s.Path == "react" {
				panic("boom")
			}
			return "custom"
		}
		groups := GroupImports([]*parser.ImportStatement{stmt("react"), stmt("./a")}, classify)
		req.Len(groups, 2)
		req.Equal(GroupModule, groups[0].Name)
		req.Equal("custom", groups[1].Name)
	})
}

func TestSortGroups(t *testing.T) {
	req := require.New(t)

	t.Run("default lexical order", func(t *testing.T) {
		groups := []*Group{{Name: GroupRelative}, {Name: GroupAlias}, {Name: GroupModule}}
		SortGroups(groups, nil)
		req.Equal(GroupAlias, groups[0].Name)
		req.Equal(GroupModule, groups[1].Name)
		req.Equal(GroupRelative, groups[2].Name)
	})

	t.Run("panicking comparator falls back", func(t *testing.T) {
		groups := []*Group{{Name: GroupRelative}, {Name: GroupModule}}
		SortGroups(groups, func(a, b *Group) int { panic("boom") })
		req.Equal(GroupModule, groups[0].Name)
	})
}

func TestSortImportStatements(t *testing.T) {
	req := require.New(t)

	stmts := []*parser.ImportStatement{
		stmt("./b"), stmt("zlib"), stmt("@/c"), stmt("./a"), stmt("react"),
	}
	SortImportStatements(stmts, nil)

	paths := make([]string, len(stmts))
	for i, s := range stmts {
		paths[i] = s.Path
	}
	req.Equal([]string{"react", "zlib", "@/c", "./a", "./b"}, paths)
}

func TestSortImportContents(t *testing.T) {
	req := require.New(t)

	names := func(contents []*parser.ImportContent) []string {
		out := make([]string, len(contents))
		for i, c := range contents {
			out[i] = c.EffectiveName()
		}
		return out
	}

	t.Run("default pins head specifiers and sorts types", func(t *testing.T) {
		contents := []*parser.ImportContent{
			{Name: "z"},
			{Name: "ReactNode", Type: parser.TypeContent},
			{Name: "default", Alias: "React"},
			{Name: "FC", Type: parser.TypeContent},
		}
		SortImportContents(contents, nil)
		req.Equal([]string{"React", "FC", "ReactNode", "z"}, names(contents))
	})

	t.Run("value specifiers keep encounter order", func(t *testing.T) {
		contents := []*parser.ImportContent{
			{Name: "useState"},
			{Name: "useEffect"},
			{Name: "useCallback"},
		}
		SortImportContents(contents, nil)
		req.Equal([]string{"useState", "useEffect", "useCallback"}, names(contents))
	})

	t.Run("custom comparator controls the full order", func(t *testing.T) {
		contents := []*parser.ImportContent{
			{Name: "a"},
			{Name: "default", Alias: "Z"},
			{Name: "b"},
		}
		reverse := func(x, y *parser.ImportContent) int {
			switch {
			case x.EffectiveName() > y.EffectiveName():
				return -1
			case x.EffectiveName() < y.EffectiveName():
				return 1
			}
			return 0
		}
		SortImportContents(contents, reverse)
		// no pinning with a custom comparator; the default sorts by its alias
		req.Equal([]string{"b", "a", "Z"}, names(contents))
	})

	t.Run("panicking comparator falls back", func(t *testing.T) {
		contents := []*parser.ImportContent{
			{Name: "b"},
			{Name: "A", Type: parser.TypeContent},
		}
		SortImportContents(contents, func(a, b *parser.ImportContent) int { panic("boom") })
		req.Equal([]string{"A", "b"}, names(contents))
	})
}

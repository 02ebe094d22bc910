package formatter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/1adybug/sort-imports/pkg/parser"
	"github.com/1adybug/sort-imports/pkg/sorter"
)

func TestFormatStatement(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name string
		stmt *parser.ImportStatement
		want string
	}{
		{
			name: "side-effect import",
			stmt: &parser.ImportStatement{Path: "./global.css", IsSideEffect: true},
			want: `import "./global.css";`,
		},
		{
			name: "export star",
			stmt: &parser.ImportStatement{Path: "./api", IsExport: true, IsSideEffect: true},
			want: `export * from "./api";`,
		},
		{
			name: "default import",
			stmt: &parser.ImportStatement{
				Path:     "react",
				Contents: []*parser.ImportContent{{Name: "default", Alias: "React"}},
			},
			want: `import React from "react";`,
		},
		{
			name: "namespace import",
			stmt: &parser.ImportStatement{
				Path:     "mod",
				Contents: []*parser.ImportContent{{Name: "*", Alias: "ns"}},
			},
			want: `import * as ns from "mod";`,
		},
		{
			name: "default plus named",
			stmt: &parser.ImportStatement{
				Path: "react",
				Contents: []*parser.ImportContent{
					{Name: "default", Alias: "React"},
					{Name: "useState"},
					{Name: "useEffect"},
				},
			},
			want: `import React, { useState, useEffect } from "react";`,
		},
		{
			name: "alias rendering",
			stmt: &parser.ImportStatement{
				Path:     "./m",
				Contents: []*parser.ImportContent{{Name: "a", Alias: "b"}},
			},
			want: `import { a as b } from "./m";`,
		},
		{
			name: "all-type named promotes the clause",
			stmt: &parser.ImportStatement{
				Path: "react",
				Contents: []*parser.ImportContent{
					{Name: "FC", Type: parser.TypeContent},
					{Name: "ReactNode", Type: parser.TypeContent},
				},
			},
			want: `import type { FC, ReactNode } from "react";`,
		},
		{
			name: "type default promotes the clause",
			stmt: &parser.ImportStatement{
				Path:     "./t",
				Contents: []*parser.ImportContent{{Name: "default", Alias: "T", Type: parser.TypeContent}},
			},
			want: `import type T from "./t";`,
		},
		{
			name: "type default with named stays inline",
			stmt: &parser.ImportStatement{
				Path: "react",
				Contents: []*parser.ImportContent{
					{Name: "default", Alias: "React", Type: parser.TypeContent},
					{Name: "FC", Type: parser.TypeContent},
				},
			},
			want: `import React, { type FC } from "react";`,
		},
		{
			name: "mixed type and value stays inline",
			stmt: &parser.ImportStatement{
				Path: "react",
				Contents: []*parser.ImportContent{
					{Name: "FC", Type: parser.TypeContent},
					{Name: "useState"},
				},
			},
			want: `import { type FC, useState } from "react";`,
		},
		{
			name: "export type promotion",
			stmt: &parser.ImportStatement{
				Path:     "./t",
				IsExport: true,
				Contents: []*parser.ImportContent{{Name: "T", Type: parser.TypeContent}},
			},
			want: `export type { T } from "./t";`,
		},
		{
			name: "default re-export stays braced",
			stmt: &parser.ImportStatement{
				Path:     "./m",
				IsExport: true,
				Contents: []*parser.ImportContent{{Name: "default", Alias: "X"}},
			},
			want: `export { default as X } from "./m";`,
		},
		{
			name: "bare default re-export",
			stmt: &parser.ImportStatement{
				Path:     "./m",
				IsExport: true,
				Contents: []*parser.ImportContent{{Name: "default"}},
			},
			want: `export { default } from "./m";`,
		},
		{
			name: "second default renders as a named specifier",
			stmt: &parser.ImportStatement{
				Path: "m",
				Contents: []*parser.ImportContent{
					{Name: "default", Alias: "a"},
					{Name: "default", Alias: "b"},
					{Name: "x"},
				},
			},
			want: `import a, { default as b, x } from "m";`,
		},
		{
			name: "export star as namespace",
			stmt: &parser.ImportStatement{
				Path:     "./api",
				IsExport: true,
				Contents: []*parser.ImportContent{{Name: "*", Alias: "api"}},
			},
			want: `export * as api from "./api";`,
		},
		{
			name: "empty braces survive",
			stmt: &parser.ImportStatement{Path: "./m", IsExport: true},
			want: `export {} from "./m";`,
		},
		{
			name: "string specifier name quoted",
			stmt: &parser.ImportStatement{
				Path:     "./m",
				Contents: []*parser.ImportContent{{Name: "a-b", Alias: "ab"}},
			},
			want: `import { "a-b" as ab } from "./m";`,
		},
		{
			name: "path with quote escaped",
			stmt: &parser.ImportStatement{Path: `./we"ird`, IsSideEffect: true},
			want: `import "./we\"ird";`,
		},
		{
			name: "leading and trailing comments",
			stmt: &parser.ImportStatement{
				Path:            "./m",
				Contents:        []*parser.ImportContent{{Name: "a"}},
				LeadingComments: []string{"// lead"},
				TrailingComment: "// trail",
			},
			want: "// lead\nimport { a } from \"./m\"; // trail",
		},
		{
			name: "blank gap before leading comments",
			stmt: &parser.ImportStatement{
				Path:             "./m",
				Contents:         []*parser.ImportContent{{Name: "a"}},
				LeadingComments:  []string{"// lead"},
				BlankLinesBefore: 1,
			},
			want: "// lead\n\nimport { a } from \"./m\";",
		},
		{
			name: "blank gap without comments is dropped",
			stmt: &parser.ImportStatement{
				Path:             "./m",
				Contents:         []*parser.ImportContent{{Name: "a"}},
				BlankLinesBefore: 2,
			},
			want: `import { a } from "./m";`,
		},
		{
			name: "removed trailing comments follow the statement",
			stmt: &parser.ImportStatement{
				Path:                    "./m",
				Contents:                []*parser.ImportContent{{Name: "a"}},
				RemovedTrailingComments: []string{"// moved"},
			},
			want: "import { a } from \"./m\";\n// moved",
		},
		{
			name: "specifier comments force multiline",
			stmt: &parser.ImportStatement{
				Path: "./m",
				Contents: []*parser.ImportContent{
					{Name: "default", Alias: "M"},
					{Name: "a", LeadingComments: []string{"// about a"}},
					{Name: "b", TrailingComments: []string{"// about b"}},
				},
			},
			want: "import M, {\n  // about a\n  a,\n  b, // about b\n} from \"./m\";",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.want, FormatStatement(tt.stmt))
		})
	}
}

func TestFormatGroups(t *testing.T) {
	req := require.New(t)

	makeGroups := func() []*sorter.Group {
		return []*sorter.Group{
			{Name: sorter.GroupModule, Statements: []*parser.ImportStatement{
				{Path: "react", Contents: []*parser.ImportContent{{Name: "default", Alias: "React"}}},
			}},
			{Name: sorter.GroupRelative, Statements: []*parser.ImportStatement{
				{Path: "./a", Contents: []*parser.ImportContent{{Name: "a"}}},
				{Path: "./b", Contents: []*parser.ImportContent{{Name: "b"}}},
			}},
		}
	}

	t.Run("no separator", func(t *testing.T) {
		want := "import React from \"react\";\n" +
			"import { a } from \"./a\";\n" +
			"import { b } from \"./b\";"
		req.Equal(want, FormatGroups(makeGroups(), nil))
	})

	t.Run("literal separator", func(t *testing.T) {
		want := "// deps\n" +
			"import React from \"react\";\n" +
			"\n" +
			"// deps\n" +
			"import { a } from \"./a\";\n" +
			"import { b } from \"./b\";"
		req.Equal(want, FormatGroups(makeGroups(), LiteralSeparator("// deps")))
	})

	t.Run("separator comment from a previous run is stripped", func(t *testing.T) {
		groups := makeGroups()
		groups[0].Statements[0].LeadingComments = []string{"// deps"}
		want := "// deps\n" +
			"import React from \"react\";\n" +
			"\n" +
			"// deps\n" +
			"import { a } from \"./a\";\n" +
			"import { b } from \"./b\";"
		req.Equal(want, FormatGroups(groups, LiteralSeparator("// deps")))
	})

	t.Run("empty groups are skipped", func(t *testing.T) {
		groups := []*sorter.Group{
			{Name: sorter.GroupModule},
			{Name: sorter.GroupRelative, Statements: []*parser.ImportStatement{
				{Path: "./a", Contents: []*parser.ImportContent{{Name: "a"}}},
			}},
		}
		req.Equal("// deps\nimport { a } from \"./a\";", FormatGroups(groups, LiteralSeparator("// deps")))
	})
}

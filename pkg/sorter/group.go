package sorter

import (
	"github.com/1adybug/sort-imports/pkg/parser"
)

// Built-in group names produced by the default classifiers
const (
	GroupModule   = "module"
	GroupAlias    = "alias"
	GroupRelative = "relative"
	GroupBuiltin  = "builtin"
)

// Group is a named bucket of statements sharing a classification key. Groups
// are created fresh for every transform and have no identity beyond it.
type Group struct {
	Name         string
	IsSideEffect bool // true iff every member statement is side-effect
	Statements   []*parser.ImportStatement
}

// ClassifyFunc maps a statement to its group name
type ClassifyFunc func(*parser.ImportStatement) string

// GroupCompareFunc orders two groups; negative means a sorts before b
type GroupCompareFunc func(a, b *Group) int

// StatementCompareFunc orders two statements within a group
type StatementCompareFunc func(a, b *parser.ImportStatement) int

// ContentCompareFunc orders two specifiers within a statement
type ContentCompareFunc func(a, b *parser.ImportContent) int

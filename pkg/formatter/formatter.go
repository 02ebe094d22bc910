// Package formatter serializes consolidated import statements back to
// JavaScript/TypeScript source text.
package formatter

import (
	"strings"

	"github.com/1adybug/sort-imports/pkg/parser"
	"github.com/1adybug/sort-imports/pkg/sorter"
)

// SeparatorFunc resolves the separator comment emitted before a group.
// Returning ok=false omits the separator (and its blank line) entirely.
type SeparatorFunc func(group *sorter.Group, index int) (text string, ok bool)

// LiteralSeparator emits the same separator text before every group
func LiteralSeparator(text string) SeparatorFunc {
	return func(*sorter.Group, int) (string, bool) {
		return text, true
	}
}

const specifierIndent = "  "

// FormatStatement renders one statement, its owned comments included
func FormatStatement(stmt *parser.ImportStatement) string {
	return strings.Join(FormatStatementLines(stmt), "\n")
}

// FormatStatementLines renders one statement as output lines: leading
// comments, the blank-line gap, the statement itself (one or several lines),
// and any merge-removed trailing comments as standalone lines after it.
func FormatStatementLines(stmt *parser.ImportStatement) []string {
	var lines []string
	lines = append(lines, stmt.LeadingComments...)
	for i := 0; i < stmt.BlankLinesBefore && len(lines) > 0; i++ {
		lines = append(lines, "")
	}

	body := statementLines(stmt)
	if stmt.TrailingComment != "" {
		body[len(body)-1] += " " + stmt.TrailingComment
	}
	lines = append(lines, body...)
	lines = append(lines, stmt.RemovedTrailingComments...)
	return lines
}

func statementLines(stmt *parser.ImportStatement) []string {
	keyword := "import"
	if stmt.IsExport {
		keyword = "export"
	}

	if stmt.IsSideEffect {
		if stmt.IsExport {
			return []string{"export * from " + quote(stmt.Path) + ";"}
		}
		return []string{"import " + quote(stmt.Path) + ";"}
	}

	// Only an import's first default specifier may render as a bare head
	// identifier. Export clauses have no head position, and a second default
	// (a duplicate-alias merge) must stay braced as `default as <alias>`.
	var head []string
	var named []*parser.ImportContent
	headDefault := false
	for _, c := range stmt.Contents {
		switch {
		case c.IsDefault() && !stmt.IsExport && !headDefault:
			headDefault = true
			head = append(head, c.Alias)
		case c.IsNamespace():
			head = append(head, "* as "+c.Alias)
		default:
			named = append(named, c)
		}
	}

	// Promote to a whole-clause type statement when every specifier is
	// type-only, unless a default or namespace specifier sits alongside
	// named ones; that combination cannot carry a clause-level type keyword.
	wholeType := len(stmt.Contents) > 0
	for _, c := range stmt.Contents {
		if c.Type != parser.TypeContent {
			wholeType = false
			break
		}
	}
	if len(head) > 0 && len(named) > 0 {
		wholeType = false
	}

	if wholeType {
		keyword += " type"
	}

	multiline := false
	for _, c := range named {
		if c.HasComments() {
			multiline = true
			break
		}
	}

	from := " from " + quote(stmt.Path) + ";"

	if multiline {
		open := keyword + " "
		if len(head) > 0 {
			open += strings.Join(head, ", ") + ", "
		}
		lines := []string{open + "{"}
		for _, c := range named {
			for _, comment := range c.LeadingComments {
				lines = append(lines, specifierIndent+comment)
			}
			line := specifierIndent + specifierText(c, wholeType) + ","
			if len(c.TrailingComments) > 0 {
				line += " " + strings.Join(c.TrailingComments, " ")
			}
			lines = append(lines, line)
		}
		lines = append(lines, "}"+from)
		return lines
	}

	var clause []string
	clause = append(clause, head...)
	if len(named) > 0 || len(head) == 0 {
		items := make([]string, 0, len(named))
		for _, c := range named {
			items = append(items, specifierText(c, wholeType))
		}
		if len(items) == 0 {
			clause = append(clause, "{}")
		} else {
			clause = append(clause, "{ "+strings.Join(items, ", ")+" }")
		}
	}
	return []string{keyword + " " + strings.Join(clause, ", ") + from}
}

// specifierText renders one named specifier; the per-item type prefix is
// stripped when the whole clause already carries the type keyword.
func specifierText(c *parser.ImportContent, wholeType bool) string {
	var sb strings.Builder
	if c.Type == parser.TypeContent && !wholeType {
		sb.WriteString("type ")
	}
	sb.WriteString(identOrString(c.Name))
	if c.Alias != "" {
		sb.WriteString(" as ")
		sb.WriteString(c.Alias)
	}
	return sb.String()
}

// FormatGroups renders ordered groups to a block of text. With a separator
// configured, each group is preceded by a blank line and the resolved
// separator text; the blank line is dropped at the very start of the block.
// Statements within a group follow one another with no extra blank line.
func FormatGroups(groups []*sorter.Group, separator SeparatorFunc) string {
	var lines []string
	for idx, group := range groups {
		if len(group.Statements) == 0 {
			continue
		}
		if separator != nil {
			if text, ok := separator(group, idx); ok {
				stripSeparatorComment(group.Statements[0], text)
				if len(lines) > 0 {
					lines = append(lines, "")
				}
				lines = append(lines, text)
			}
		}
		for _, stmt := range group.Statements {
			lines = append(lines, FormatStatementLines(stmt)...)
		}
	}
	return strings.Join(lines, "\n")
}

// stripSeparatorComment drops a leading comment identical to the separator
// the formatter is about to emit again. Without this, a second run over the
// pipeline's own output would duplicate the separator line.
func stripSeparatorComment(stmt *parser.ImportStatement, text string) {
	if len(stmt.LeadingComments) > 0 && stmt.LeadingComments[0] == text {
		stmt.LeadingComments = stmt.LeadingComments[1:]
		if len(stmt.LeadingComments) == 0 {
			stmt.BlankLinesBefore = 0
		}
	}
}

func quote(path string) string {
	escaped := strings.ReplaceAll(path, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}

func identOrString(name string) string {
	for i := 0; i < len(name); i++ {
		b := name[i]
		ident := b == '_' || b == '$' ||
			(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
			(i > 0 && b >= '0' && b <= '9')
		if !ident {
			return quote(name)
		}
	}
	return name
}

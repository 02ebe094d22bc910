// Package analyzer determines which identifier names are referenced by the
// code following a file's import block. The resulting used-identifier set
// drives optional unused-import removal.
//
// The scan deliberately over-approximates: an identifier that cannot be
// proven to be a pure binding site counts as used. Over-approximation keeps
// an import that might be referenced; it never deletes one that is.
package analyzer

import (
	"fmt"

	"github.com/1adybug/sort-imports/pkg/errors"
	"github.com/1adybug/sort-imports/pkg/parser"
)

// declarationKeywords introduce a binding; the identifier immediately after
// them is a declaration site, not a reference.
var declarationKeywords = map[string]bool{
	"const":     true,
	"let":       true,
	"var":       true,
	"function":  true,
	"class":     true,
	"interface": true,
	"enum":      true,
	"namespace": true,
	"type":      true,
}

// reservedWords never name an imported binding
var reservedWords = map[string]bool{
	"abstract": true, "any": true, "as": true, "async": true, "await": true,
	"boolean": true, "break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "declare": true,
	"default": true, "delete": true, "do": true, "else": true, "enum": true,
	"export": true, "extends": true, "false": true, "finally": true,
	"for": true, "from": true, "function": true, "if": true, "implements": true,
	"import": true, "in": true, "instanceof": true, "interface": true,
	"is": true, "keyof": true, "let": true, "namespace": true, "never": true,
	"new": true, "null": true, "number": true, "object": true, "of": true,
	"package": true, "private": true, "protected": true, "public": true,
	"readonly": true, "return": true, "satisfies": true, "static": true,
	"string": true, "super": true, "switch": true, "symbol": true,
	"this": true, "throw": true, "true": true, "try": true, "type": true,
	"typeof": true, "undefined": true, "unknown": true, "var": true,
	"void": true, "while": true, "with": true, "yield": true,
}

// AnalyzeUsed scans the code after the import block and returns the set of
// identifier names referenced by it. JSX tag names and qualified type names
// contribute their leftmost segment; property accesses after '.' do not
// count. An error means the caller must skip unused-import removal entirely
// rather than treat the file as using nothing.
func AnalyzeUsed(code string) (used map[string]bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			used = nil
			err = fmt.Errorf("%s: %v", errors.ErrMsgUsageAnalysisFailed, r)
		}
	}()
	used = make(map[string]bool)
	scanIdentifiers([]byte(code), used)
	return used, nil
}

func scanIdentifiers(src []byte, used map[string]bool) {
	n := len(src)
	i := 0
	// previous significant byte, 0 at start of input
	var prev byte
	// identifier after one of the declaration keywords is a binding site
	afterDecl := false

	for i < n {
		b := src[i]
		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			i++
		case b == '/' && i+1 < n && src[i+1] == '/':
			for i < n && src[i] != '\n' {
				i++
			}
		case b == '/' && i+1 < n && src[i+1] == '*':
			i += 2
			for i+1 < n && !(src[i] == '*' && src[i+1] == '/') {
				i++
			}
			i += 2
		case b == '\'' || b == '"':
			i = skipStringLiteral(src, i)
			prev = b
		case b == '`':
			i = scanTemplate(src, i, used)
			prev = b
		case isIdentStart(b):
			start := i
			for i < n && isIdentChar(src[i]) {
				i++
			}
			name := string(src[start:i])
			switch {
			case prev == '.':
				// property or qualified segment; only the leftmost counts
			case afterDecl:
				// declaration site
			case reservedWords[name]:
			default:
				used[name] = true
			}
			afterDecl = declarationKeywords[name] && prev != '.'
			prev = 'a'
			continue
		default:
			if b != '.' || i+1 >= n || src[i+1] != '.' {
				prev = b
			} else {
				// spread "..." must not mark the next identifier as a property
				prev = 0
				for i < n && src[i] == '.' {
					i++
				}
				afterDecl = false
				continue
			}
			afterDecl = false
			i++
		}
	}
}

// scanTemplate skips a template literal but scans ${...} interpolations as
// code, so identifiers inside them still count as used.
func scanTemplate(src []byte, i int, used map[string]bool) int {
	n := len(src)
	i++ // opening backtick
	for i < n {
		switch {
		case src[i] == '\\' && i+1 < n:
			i += 2
		case src[i] == '`':
			return i + 1
		case src[i] == '$' && i+1 < n && src[i+1] == '{':
			start := i + 2
			depth := 1
			j := start
			for j < n && depth > 0 {
				switch src[j] {
				case '{':
					depth++
				case '}':
					depth--
				case '\'', '"':
					j = skipStringLiteral(src, j) - 1
				case '`':
					j = scanTemplate(src, j, used) - 1
				}
				j++
			}
			// an unterminated interpolation runs to end of input; only a
			// closed one has a brace to trim
			end := j
			if depth == 0 {
				end = j - 1
			}
			scanIdentifiers(src[start:end], used)
			i = j
		default:
			i++
		}
	}
	return i
}

func skipStringLiteral(src []byte, i int) int {
	quote := src[i]
	i++
	for i < len(src) {
		if src[i] == '\\' && i+1 < len(src) {
			i += 2
			continue
		}
		if src[i] == quote || src[i] == '\n' {
			return i + 1
		}
		i++
	}
	return i
}

func isIdentStart(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentChar(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

// FilterUnusedImports returns a copy of the statement holding only the
// specifiers whose effective local name appears in used. Side-effect and
// export-from statements pass through untouched: their visible effect is the
// module load or re-export itself, so "unused" does not apply to them. A
// statement whose specifier list becomes empty is dropped entirely by the
// caller, including its module-load side effect.
func FilterUnusedImports(stmt *parser.ImportStatement, used map[string]bool) *parser.ImportStatement {
	if stmt.IsSideEffect || stmt.IsExport {
		return stmt
	}
	out := stmt.Clone()
	kept := out.Contents[:0]
	for _, c := range out.Contents {
		if used[c.EffectiveName()] {
			kept = append(kept, c)
		}
	}
	out.Contents = kept
	return out
}

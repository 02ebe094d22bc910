package parser

import (
	"strings"
)

// ParseImports scans the maximal leading run of import declarations and
// export-from declarations in source and returns them in source order.
// The first statement that is neither kind ends the scan; imports appearing
// later in the file are never touched. Malformed syntax does not abort the
// scan: the best-available partial statement list is returned, and zero
// statements means the caller should leave the source unchanged.
func ParseImports(source string) []*ImportStatement {
	s := &scanner{src: []byte(source)}
	s.skipPreamble()

	var stmts []*ImportStatement
	for {
		save := s.pos
		comments, blankAfter := s.scanTrivia()
		if s.pos >= len(s.src) {
			// Comments after the last statement stay where they are.
			s.pos = save
			break
		}

		stmt, ok := s.parseStatement()
		if !ok {
			s.pos = save
			break
		}

		owned := comments
		gap := blankAfter
		if len(stmts) == 0 {
			// A comment block separated from the very first import by a
			// blank line is the file header and must not move.
			owned, gap = ownedForFirst(comments, blankAfter)
		}
		if len(owned) > 0 {
			lead := make([]string, 0, len(owned)+len(stmt.LeadingComments))
			for _, c := range owned {
				lead = append(lead, c.text)
			}
			stmt.LeadingComments = append(lead, stmt.LeadingComments...)
			stmt.Start = owned[0].start
		}
		stmt.BlankLinesBefore = gap
		stmts = append(stmts, stmt)
	}
	return stmts
}

// ownedComment is a comment collected before a statement, with the number of
// blank lines separating it from the previous comment.
type ownedComment struct {
	text       string
	start      int
	blankAbove int
}

// ownedForFirst applies the file-header rule: the first statement owns only
// the trailing contiguous run of comments, and nothing at all when a blank
// line separates that run from the statement.
func ownedForFirst(comments []ownedComment, blankAfter int) ([]ownedComment, int) {
	if len(comments) == 0 || blankAfter > 0 {
		return nil, 0
	}
	i := len(comments) - 1
	for i > 0 && comments[i].blankAbove == 0 {
		i--
	}
	return comments[i:], 0
}

type scanner struct {
	src []byte
	pos int
}

func isLineSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

func isIdentStart(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentChar(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

// wordAt reports whether the identifier word w starts exactly at offset i
func (s *scanner) wordAt(i int, w string) bool {
	if i < 0 || i+len(w) > len(s.src) {
		return false
	}
	if string(s.src[i:i+len(w)]) != w {
		return false
	}
	end := i + len(w)
	return end >= len(s.src) || !isIdentChar(s.src[end])
}

func (s *scanner) lineCommentAt(i int) bool {
	return i+1 < len(s.src) && s.src[i] == '/' && s.src[i+1] == '/'
}

func (s *scanner) blockCommentAt(i int) bool {
	return i+1 < len(s.src) && s.src[i] == '/' && s.src[i+1] == '*'
}

// readLineComment returns the comment text and the offset of the terminating
// newline (or end of input).
func (s *scanner) readLineComment(i int) (string, int) {
	j := i
	for j < len(s.src) && s.src[j] != '\n' {
		j++
	}
	return strings.TrimRight(string(s.src[i:j]), " \t\r"), j
}

// readBlockComment returns the comment text including delimiters and the
// offset just past the closing delimiter.
func (s *scanner) readBlockComment(i int) (string, int, bool) {
	j := i + 2
	for j+1 < len(s.src) {
		if s.src[j] == '*' && s.src[j+1] == '/' {
			return string(s.src[i : j+2]), j + 2, true
		}
		j++
	}
	return "", len(s.src), false
}

func (s *scanner) readIdent(i int) (string, int) {
	if i >= len(s.src) || !isIdentStart(s.src[i]) {
		return "", i
	}
	j := i
	for j < len(s.src) && isIdentChar(s.src[j]) {
		j++
	}
	return string(s.src[i:j]), j
}

// readString reads a single- or double-quoted string literal at i
func (s *scanner) readString(i int) (string, int, bool) {
	if i >= len(s.src) || (s.src[i] != '"' && s.src[i] != '\'') {
		return "", i, false
	}
	quote := s.src[i]
	j := i + 1
	start := j
	for j < len(s.src) {
		if s.src[j] == '\\' && j+1 < len(s.src) {
			j += 2
			continue
		}
		if s.src[j] == quote {
			return string(s.src[start:j]), j + 1, true
		}
		if s.src[j] == '\n' {
			break
		}
		j++
	}
	return "", i, false
}

// skipPreamble advances past a shebang line and any directive prologue
// ("use strict", "use client", ...) so the import block below is still found.
func (s *scanner) skipPreamble() {
	if s.pos == 0 && len(s.src) >= 2 && s.src[0] == '#' && s.src[1] == '!' {
		for s.pos < len(s.src) && s.src[s.pos] != '\n' {
			s.pos++
		}
	}
	for {
		save := s.pos
		for s.pos < len(s.src) && (isLineSpace(s.src[s.pos]) || s.src[s.pos] == '\n') {
			s.pos++
		}
		if s.pos >= len(s.src) || (s.src[s.pos] != '"' && s.src[s.pos] != '\'') {
			s.pos = save
			return
		}
		if _, next, ok := s.readString(s.pos); ok {
			s.pos = next
			for s.pos < len(s.src) && isLineSpace(s.src[s.pos]) {
				s.pos++
			}
			if s.pos < len(s.src) && s.src[s.pos] == ';' {
				s.pos++
			}
			continue
		}
		s.pos = save
		return
	}
}

// scanTrivia consumes whitespace and comment lines before a statement and
// returns the comments plus the blank-line count between the last comment
// and the statement.
func (s *scanner) scanTrivia() ([]ownedComment, int) {
	var comments []ownedComment
	newlines := 0
	for s.pos < len(s.src) {
		b := s.src[s.pos]
		switch {
		case isLineSpace(b):
			s.pos++
		case b == '\n':
			newlines++
			s.pos++
		case s.lineCommentAt(s.pos):
			text, next := s.readLineComment(s.pos)
			comments = append(comments, ownedComment{text: text, start: s.pos, blankAbove: blankGap(newlines, len(comments))})
			s.pos = next
			newlines = 0
		case s.blockCommentAt(s.pos):
			text, next, ok := s.readBlockComment(s.pos)
			if !ok {
				return comments, blankGap(newlines, len(comments))
			}
			comments = append(comments, ownedComment{text: text, start: s.pos, blankAbove: blankGap(newlines, len(comments))})
			s.pos = next
			newlines = 0
		default:
			gap := 0
			if len(comments) > 0 && newlines > 1 {
				gap = newlines - 1
			}
			return comments, gap
		}
	}
	return comments, 0
}

func blankGap(newlines, priorComments int) int {
	if priorComments == 0 {
		return 0
	}
	if newlines > 1 {
		return newlines - 1
	}
	return 0
}

// skipInner skips whitespace inside a statement, hoisting any comment it
// crosses into dst so no comment is ever dropped.
func (s *scanner) skipInner(dst *[]string) {
	for s.pos < len(s.src) {
		b := s.src[s.pos]
		switch {
		case isLineSpace(b) || b == '\n':
			s.pos++
		case s.lineCommentAt(s.pos):
			text, next := s.readLineComment(s.pos)
			*dst = append(*dst, text)
			s.pos = next
		case s.blockCommentAt(s.pos):
			text, next, ok := s.readBlockComment(s.pos)
			if !ok {
				s.pos = len(s.src)
				return
			}
			*dst = append(*dst, text)
			s.pos = next
		default:
			return
		}
	}
}

func (s *scanner) parseStatement() (*ImportStatement, bool) {
	switch {
	case s.wordAt(s.pos, "import"):
		return s.parseImport()
	case s.wordAt(s.pos, "export"):
		return s.parseExport()
	}
	return nil, false
}

func (s *scanner) parseImport() (*ImportStatement, bool) {
	stmt := &ImportStatement{Start: s.pos}
	s.pos += len("import")
	if s.pos >= len(s.src) {
		return nil, false
	}
	b := s.src[s.pos]
	if b == '(' || b == '.' {
		// dynamic import() or import.meta: an expression, not a declaration
		return nil, false
	}
	if !(isLineSpace(b) || b == '\n' || b == '{' || b == '"' || b == '\'' || b == '*') {
		return nil, false
	}
	s.skipInner(&stmt.LeadingComments)

	typeWhole := false
	if s.wordAt(s.pos, "type") {
		save := s.pos
		lead := len(stmt.LeadingComments)
		s.pos += len("type")
		s.skipInner(&stmt.LeadingComments)
		// `import type from "x"` and `import type, {...}` bind the default
		// as an identifier literally named "type"
		if s.pos < len(s.src) && (s.wordAt(s.pos, "from") || s.src[s.pos] == ',') {
			s.pos = save
			stmt.LeadingComments = stmt.LeadingComments[:lead]
		} else {
			typeWhole = true
		}
	}

	contentType := VariableContent
	if typeWhole {
		contentType = TypeContent
	}

	if s.pos >= len(s.src) {
		return nil, false
	}

	switch s.src[s.pos] {
	case '"', '\'':
		// side-effect import: no clause at all
		path, next, ok := s.readString(s.pos)
		if !ok {
			return nil, false
		}
		s.pos = next
		stmt.Path = path
		stmt.IsSideEffect = true
		return s.finishStatement(stmt)
	case '*':
		ns, ok := s.parseNamespace(stmt, contentType)
		if !ok || ns == nil {
			return nil, false
		}
		stmt.Contents = append(stmt.Contents, ns)
	case '{':
		contents, ok := s.parseNamedList(typeWhole)
		if !ok {
			return nil, false
		}
		stmt.Contents = append(stmt.Contents, contents...)
	default:
		name, next := s.readIdent(s.pos)
		if name == "" {
			return nil, false
		}
		s.pos = next
		stmt.Contents = append(stmt.Contents, &ImportContent{
			Name:  DefaultSpecifier,
			Alias: name,
			Type:  contentType,
		})
		s.skipInner(&stmt.LeadingComments)
		if s.pos < len(s.src) && s.src[s.pos] == ',' {
			s.pos++
			s.skipInner(&stmt.LeadingComments)
			if s.pos >= len(s.src) {
				return nil, false
			}
			switch s.src[s.pos] {
			case '*':
				ns, ok := s.parseNamespace(stmt, contentType)
				if !ok || ns == nil {
					return nil, false
				}
				stmt.Contents = append(stmt.Contents, ns)
			case '{':
				contents, ok := s.parseNamedList(typeWhole)
				if !ok {
					return nil, false
				}
				stmt.Contents = append(stmt.Contents, contents...)
			default:
				return nil, false
			}
		}
	}

	s.skipInner(&stmt.LeadingComments)
	if !s.wordAt(s.pos, "from") {
		return nil, false
	}
	s.pos += len("from")
	s.skipInner(&stmt.LeadingComments)
	path, next, ok := s.readString(s.pos)
	if !ok {
		return nil, false
	}
	s.pos = next
	stmt.Path = path
	return s.finishStatement(stmt)
}

func (s *scanner) parseExport() (*ImportStatement, bool) {
	stmt := &ImportStatement{Start: s.pos, IsExport: true}
	s.pos += len("export")
	if s.pos >= len(s.src) {
		return nil, false
	}
	b := s.src[s.pos]
	if !(isLineSpace(b) || b == '\n' || b == '{' || b == '*') {
		return nil, false
	}
	s.skipInner(&stmt.LeadingComments)

	typeWhole := false
	if s.wordAt(s.pos, "type") {
		save := s.pos
		s.pos += len("type")
		s.skipInner(&stmt.LeadingComments)
		if s.pos < len(s.src) && (s.src[s.pos] == '{' || s.src[s.pos] == '*') {
			typeWhole = true
		} else {
			// `export type X = ...` is a local declaration, not a re-export
			s.pos = save
			return nil, false
		}
	}

	contentType := VariableContent
	if typeWhole {
		contentType = TypeContent
	}

	if s.pos >= len(s.src) {
		return nil, false
	}

	switch s.src[s.pos] {
	case '*':
		s.pos++
		s.skipInner(&stmt.LeadingComments)
		if s.wordAt(s.pos, "as") {
			s.pos += len("as")
			s.skipInner(&stmt.LeadingComments)
			alias, next := s.readIdent(s.pos)
			if alias == "" {
				return nil, false
			}
			s.pos = next
			stmt.Contents = append(stmt.Contents, &ImportContent{
				Name:  NamespaceSpecifier,
				Alias: alias,
				Type:  contentType,
			})
		} else {
			if typeWhole {
				// `export type * from "x"` binds nothing, so the statement
				// record has nowhere to keep the clause-level type marker.
				// Leave it untouched rather than rewrite it as a value
				// re-export.
				return nil, false
			}
			stmt.IsSideEffect = true
		}
	case '{':
		contents, ok := s.parseNamedList(typeWhole)
		if !ok {
			return nil, false
		}
		stmt.Contents = append(stmt.Contents, contents...)
	default:
		// export const / export default / export function: end of block
		return nil, false
	}

	s.skipInner(&stmt.LeadingComments)
	if !s.wordAt(s.pos, "from") {
		// `export { a, b }` without a source is a local export
		return nil, false
	}
	s.pos += len("from")
	s.skipInner(&stmt.LeadingComments)
	path, next, ok := s.readString(s.pos)
	if !ok {
		return nil, false
	}
	s.pos = next
	stmt.Path = path
	return s.finishStatement(stmt)
}

// parseNamespace parses `* as Name` with the scanner at '*'
func (s *scanner) parseNamespace(stmt *ImportStatement, contentType ContentType) (*ImportContent, bool) {
	s.pos++
	s.skipInner(&stmt.LeadingComments)
	if !s.wordAt(s.pos, "as") {
		return nil, false
	}
	s.pos += len("as")
	s.skipInner(&stmt.LeadingComments)
	alias, next := s.readIdent(s.pos)
	if alias == "" {
		return nil, false
	}
	s.pos = next
	return &ImportContent{Name: NamespaceSpecifier, Alias: alias, Type: contentType}, true
}

// parseNamedList parses `{ a, b as c, type D }` with the scanner at '{'.
// Comments on their own line attach to the following specifier as leading
// comments; comments on a specifier's line attach to it as trailing comments.
func (s *scanner) parseNamedList(typeWhole bool) ([]*ImportContent, bool) {
	var contents []*ImportContent
	var pendingLead []string
	var last *ImportContent
	newlineSinceLast := true

	s.pos++ // '{'
	for s.pos < len(s.src) {
		b := s.src[s.pos]
		switch {
		case isLineSpace(b):
			s.pos++
		case b == '\n':
			newlineSinceLast = true
			s.pos++
		case s.lineCommentAt(s.pos):
			text, next := s.readLineComment(s.pos)
			if last != nil && !newlineSinceLast {
				last.TrailingComments = append(last.TrailingComments, text)
			} else {
				pendingLead = append(pendingLead, text)
			}
			s.pos = next
		case s.blockCommentAt(s.pos):
			text, next, ok := s.readBlockComment(s.pos)
			if !ok {
				return nil, false
			}
			if last != nil && !newlineSinceLast {
				last.TrailingComments = append(last.TrailingComments, text)
			} else {
				pendingLead = append(pendingLead, text)
			}
			s.pos = next
		case b == ',':
			s.pos++
		case b == '}':
			s.pos++
			if len(pendingLead) > 0 && last != nil {
				// comments above the closing brace have no specifier below
				// them; keep them with the last specifier
				last.TrailingComments = append(last.TrailingComments, pendingLead...)
			}
			return contents, true
		default:
			content, ok := s.parseSpecifier(typeWhole)
			if !ok {
				return nil, false
			}
			content.LeadingComments = append(pendingLead, content.LeadingComments...)
			pendingLead = nil
			contents = append(contents, content)
			last = content
			newlineSinceLast = false
		}
	}
	return nil, false
}

// parseSpecifier parses one named specifier: ident, string name, alias via
// `as`, optional inline `type` modifier.
func (s *scanner) parseSpecifier(typeWhole bool) (*ImportContent, bool) {
	content := &ImportContent{Type: VariableContent}
	if typeWhole {
		content.Type = TypeContent
	}

	if s.wordAt(s.pos, "type") {
		save := s.pos
		lead := len(content.LeadingComments)
		s.pos += len("type")
		s.skipInner(&content.LeadingComments)
		if s.pos >= len(s.src) || s.src[s.pos] == ',' || s.src[s.pos] == '}' || s.wordAt(s.pos, "as") {
			// `{ type }` or `{ type as X }`: an identifier literally named "type"
			s.pos = save
			content.LeadingComments = content.LeadingComments[:lead]
		} else {
			content.Type = TypeContent
		}
	}

	if s.pos < len(s.src) && (s.src[s.pos] == '"' || s.src[s.pos] == '\'') {
		name, next, ok := s.readString(s.pos)
		if !ok {
			return nil, false
		}
		content.Name = name
		s.pos = next
	} else {
		name, next := s.readIdent(s.pos)
		if name == "" {
			return nil, false
		}
		content.Name = name
		s.pos = next
	}

	s.skipInner(&content.LeadingComments)
	if s.wordAt(s.pos, "as") {
		s.pos += len("as")
		s.skipInner(&content.LeadingComments)
		alias, next := s.readIdent(s.pos)
		if alias == "" {
			return nil, false
		}
		s.pos = next
		if alias != content.Name {
			content.Alias = alias
		}
	}
	return content, true
}

// finishStatement consumes the optional semicolon and any comments sharing
// the statement's last source line, then records the end offset.
func (s *scanner) finishStatement(stmt *ImportStatement) (*ImportStatement, bool) {
	end := s.pos
	semi := false
	var trailing []string
	for s.pos < len(s.src) {
		b := s.src[s.pos]
		switch {
		case isLineSpace(b):
			s.pos++
		case b == ';' && !semi:
			semi = true
			s.pos++
			end = s.pos
		case s.lineCommentAt(s.pos):
			text, next := s.readLineComment(s.pos)
			trailing = append(trailing, text)
			s.pos = next
			end = s.pos
		case s.blockCommentAt(s.pos):
			text, next, ok := s.readBlockComment(s.pos)
			if !ok || strings.Contains(text, "\n") {
				// a multi-line block comment does not share the last line
				stmt.TrailingComment = strings.Join(trailing, " ")
				stmt.End = end
				return stmt, true
			}
			trailing = append(trailing, text)
			s.pos = next
			end = s.pos
		case s.wordAt(s.pos, "assert") || s.wordAt(s.pos, "with"):
			// import assertions are not rewritable; end the block before
			// this statement
			return nil, false
		default:
			stmt.TrailingComment = strings.Join(trailing, " ")
			stmt.End = end
			return stmt, true
		}
	}
	stmt.TrailingComment = strings.Join(trailing, " ")
	stmt.End = end
	return stmt, true
}

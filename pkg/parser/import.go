package parser

// Reserved specifier names. Neither is a legal identifier in
// JavaScript/TypeScript import/export positions, so they cannot collide
// with a real origin name.
const (
	DefaultSpecifier   = "default"
	NamespaceSpecifier = "*"
)

// ContentType marks whether a specifier binds a value or a type
type ContentType int

const (
	VariableContent ContentType = iota
	TypeContent
)

// ImportContent represents a single specifier inside an import/export statement
type ImportContent struct {
	Name             string      // origin name, or "default"/"*" for default and namespace specifiers
	Alias            string      // local bound name, empty when identical to Name
	Type             ContentType // type-only or value specifier
	LeadingComments  []string    // comments on their own lines before the specifier
	TrailingComments []string    // comments on the specifier's line, after it
}

// EffectiveName returns the name the specifier binds locally
func (c *ImportContent) EffectiveName() string {
	if c.Alias != "" {
		return c.Alias
	}
	return c.Name
}

// IsDefault reports whether the specifier is the module's default binding
func (c *ImportContent) IsDefault() bool {
	return c.Name == DefaultSpecifier
}

// IsNamespace reports whether the specifier is a namespace binding
func (c *ImportContent) IsNamespace() bool {
	return c.Name == NamespaceSpecifier
}

// HasComments reports whether the specifier carries any comment
func (c *ImportContent) HasComments() bool {
	return len(c.LeadingComments) > 0 || len(c.TrailingComments) > 0
}

// ImportStatement represents one import or export-from declaration
type ImportStatement struct {
	Path         string // module specifier string
	IsExport     bool   // true for export {...} from / export * from
	IsSideEffect bool   // true when the statement binds nothing

	Contents []*ImportContent

	LeadingComments []string // owned comment lines before the statement
	TrailingComment string   // comment sharing the statement's last source line

	// RemovedTrailingComments holds trailing comments of statements folded
	// into this one by merging. They are re-emitted as standalone lines
	// after the statement.
	RemovedTrailingComments []string

	// BlankLinesBefore counts blank lines between the last leading comment
	// and the statement itself.
	BlankLinesBefore int

	Start int // byte offset of the earliest owned comment or the statement
	End   int // byte offset just past the statement's owned trailing comment
}

// HasNamespace reports whether any specifier is a namespace binding
func (s *ImportStatement) HasNamespace() bool {
	for _, c := range s.Contents {
		if c.IsNamespace() {
			return true
		}
	}
	return false
}

// Mergeable reports whether the statement may be consolidated with another
// statement sharing its path and kind. Side-effect statements and statements
// holding a namespace specifier never combine with anything.
func (s *ImportStatement) Mergeable() bool {
	return !s.IsSideEffect && !s.HasNamespace()
}

// Clone returns a shallow-content copy safe for per-stage mutation
func (s *ImportStatement) Clone() *ImportStatement {
	dup := *s
	dup.Contents = make([]*ImportContent, len(s.Contents))
	for i, c := range s.Contents {
		cc := *c
		dup.Contents[i] = &cc
	}
	dup.LeadingComments = append([]string(nil), s.LeadingComments...)
	dup.RemovedTrailingComments = append([]string(nil), s.RemovedTrailingComments...)
	return &dup
}

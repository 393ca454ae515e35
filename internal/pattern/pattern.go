// Package pattern holds the identifier scans run over the orphan set.
// Each scan is a compiled expression so its exact matching rule stays
// visible in one string.
package pattern

import "fmt"

// Pattern is a named, pre-compiled expression.
type Pattern struct {
	name string
	src  string
	expr Expr
}

// Compile parses expr once; evaluation never re-parses.
func Compile(name, expr string) (*Pattern, error) {
	ast, err := Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("pattern %s: parse %q: %w", name, expr, err)
	}
	return &Pattern{name: name, src: expr, expr: ast}, nil
}

// MustCompile is like Compile but panics on a malformed expression.
func MustCompile(name, expr string) *Pattern {
	p, err := Compile(name, expr)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Pattern) Name() string   { return p.name }
func (p *Pattern) String() string { return p.src }

// Match evaluates the pattern against a full node view.
func (p *Pattern) Match(s Subject) (bool, error) {
	return Evaluate(p.expr, s)
}

// MatchID evaluates the pattern against an identifier alone.
// Fields other than id resolve to the empty string.
func (p *Pattern) MatchID(id string) bool {
	ok, err := p.Match(Subject{ID: id})
	return err == nil && ok
}

var (
	Config = MustCompile("config", `id contains "config"`)

	ReactSpecific = MustCompile("react",
		`id contains "frontend" AND (id contains "component" OR id contains "hook" OR id contains "state")`)

	Entity = MustCompile("entity", `id contains "entity"`)
)

// IsConfig reports whether id contains "config" anywhere.
func IsConfig(id string) bool { return Config.MatchID(id) }

// IsReactSpecific reports whether id contains "frontend" and one of
// "component", "hook" or "state".
func IsReactSpecific(id string) bool { return ReactSpecific.MatchID(id) }

// IsEntity reports whether id contains "entity" anywhere.
func IsEntity(id string) bool { return Entity.MatchID(id) }

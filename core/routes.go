package core

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Access classifies a route for the request authenticator's caller.
type Access int

const (
	// AccessProtected routes require an authenticated identity.
	AccessProtected Access = iota
	// AccessPublic routes are served without authentication.
	AccessPublic
)

func (a Access) String() string {
	if a == AccessPublic {
		return "public"
	}
	return "protected"
}

// RouteRule maps a path pattern to an access level. Patterns use glob
// syntax with '/' as the separator, e.g. "/api/auth/*" or "/health".
type RouteRule struct {
	Pattern string
	Access  Access
}

type compiledRule struct {
	rule    RouteRule
	matcher glob.Glob
}

// RouteTable is an explicit, inspectable mapping from route patterns to
// access levels. Lookups evaluate rules in registration order, first match
// wins; paths matching no rule are protected.
type RouteTable struct {
	rules []compiledRule
}

// NewRouteTable compiles the given rules into a table.
func NewRouteTable(rules []RouteRule) (*RouteTable, error) {
	t := &RouteTable{rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		m, err := glob.Compile(r.Pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("compile route pattern %q: %w", r.Pattern, err)
		}
		t.rules = append(t.rules, compiledRule{rule: r, matcher: m})
	}
	return t, nil
}

// Lookup returns the access level for path.
func (t *RouteTable) Lookup(path string) Access {
	for _, r := range t.rules {
		if r.matcher.Match(path) {
			return r.rule.Access
		}
	}
	return AccessProtected
}

// Rules returns the table's rules in evaluation order.
func (t *RouteTable) Rules() []RouteRule {
	out := make([]RouteRule, 0, len(t.rules))
	for _, r := range t.rules {
		out = append(out, r.rule)
	}
	return out
}

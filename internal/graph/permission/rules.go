// Package permission gates schema fields with declarative rules evaluated
// before the wrapped resolver runs.
package permission

import (
	"errors"

	"github.com/graphql-go/graphql"
	"tweet-app-go/internal/auth"
)

var ErrNotAuthorized = errors.New("not authorized")

// Rule decides whether a field resolution may proceed. A nil return allows;
// any error denies and is surfaced in the response's error list.
type Rule func(p graphql.ResolveParams) error

func Allow(graphql.ResolveParams) error {
	return nil
}

// IsAuthenticated denies anonymous callers. A credential that was presented
// but failed verification surfaces its own error.
func IsAuthenticated(p graphql.ResolveParams) error {
	if _, err := auth.RequireUserID(p.Context); err != nil {
		if errors.Is(err, auth.ErrUnauthenticated) {
			return ErrNotAuthorized
		}
		return err
	}
	return nil
}

// Table maps "Type.field" to the rule guarding it.
type Table map[string]Rule

// Get falls back to Allow for fields without an explicit rule.
func (t Table) Get(typeName, fieldName string) Rule {
	if rule, ok := t[typeName+"."+fieldName]; ok {
		return rule
	}
	return Allow
}

// Default lists every guarded root field. Resolvers that need identity also
// check it themselves, so a missing entry here cannot expose a mutation.
func Default() Table {
	return Table{
		"Query.me":               IsAuthenticated,
		"Mutation.createProfile": IsAuthenticated,
		"Mutation.updateProfile": IsAuthenticated,
		"Mutation.createTweet":   IsAuthenticated,
	}
}

// Wrap composes a rule with a resolver at schema-build time.
func Wrap(rule Rule, resolve graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		if err := rule(p); err != nil {
			return nil, err
		}
		return resolve(p)
	}
}

package ecs

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

//go:generate go-enum --marshal

// ClauseKind identifies the role a FilterClause plays in Context.Matches.
//
// ENUM(all_of, any_of, none_of, none)
type ClauseKind uint8

//go:generate go-enum --marshal

// AccessMode declares whether a system reads or writes the components
// named by a FilterClause. It is informational only — the core does not
// enforce it — except that it collapses to a single value when computing
// Context identity (access flags collapse read|write to write for
// this purpose).
//
// ENUM(read, write)
type AccessMode uint8

// FilterClause is one clause of a filter signature: a clause-kind, the
// access mode the declaring system intends, and the set of component ids
// the clause is over.
type FilterClause struct {
	Kind       ClauseKind
	Access     AccessMode
	Components []ComponentID
}

// FilterClauseDecl is how a host declares a clause before it has been
// resolved against a Registry: Types may include interface types (e.g.
// a framework marker interface), which are expanded to every statically
// registered implementation's id.
type FilterClauseDecl struct {
	Kind   ClauseKind
	Access AccessMode
	Types  []reflect.Type
}

// Filter is an ordered list of clauses. A ClauseKindNone clause at any position
// marks the owning Context as matching no entity ever — used when a
// system participates only for ordering or to force a unique Context.
type Filter []FilterClause

var componentInterfaceType = reflect.TypeOf((*Component)(nil)).Elem()

// BuildFilter resolves decls against reg, expanding any interface type to
// every statically registered implementation's id (via
// Registry.ComponentsUnder) and any concrete type directly via
// Registry.IDOfType.
func BuildFilter(reg *Registry, decls []FilterClauseDecl) Filter {
	f := make(Filter, 0, len(decls))
	for _, d := range decls {
		if d.Kind == ClauseKindNone {
			f = append(f, FilterClause{Kind: ClauseKindNone})
			continue
		}

		ids := expandTypes(reg, d.Types)
		f = append(f, FilterClause{Kind: d.Kind, Access: d.Access, Components: ids})
	}
	return f
}

func expandTypes(reg *Registry, types []reflect.Type) []ComponentID {
	seen := make(map[ComponentID]struct{})
	for _, t := range types {
		if t == nil {
			continue
		}
		if t.Kind() == reflect.Interface && t != componentInterfaceType {
			for _, sc := range reg.ComponentsUnder(t) {
				seen[sc.ID] = struct{}{}
			}
			continue
		}
		seen[reg.IDOfType(t)] = struct{}{}
	}

	ids := make([]ComponentID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// IsNever reports whether f contains a "none" clause, making its Context
// match no entity regardless of component state.
func (f Filter) IsNever() bool {
	for _, c := range f {
		if c.Kind == ClauseKindNone {
			return true
		}
	}
	return false
}

// Matches implements the does_match algorithm:
//  1. any none_of component present on e -> reject.
//  2. any all_of component absent from e -> reject.
//  3. if any_of clauses exist, at least one of their components must be
//     present; otherwise accept.
func (f Filter) Matches(e *Entity) bool {
	if f.IsNever() {
		return false
	}

	hasAnyOfClause := false
	anyOfSatisfied := false

	for _, clause := range f {
		switch clause.Kind {
		case ClauseKindNoneOf:
			for _, id := range clause.Components {
				if e.Has(id) {
					return false
				}
			}
		case ClauseKindAllOf:
			for _, id := range clause.Components {
				if !e.Has(id) {
					return false
				}
			}
		case ClauseKindAnyOf:
			hasAnyOfClause = true
			for _, id := range clause.Components {
				if e.Has(id) {
					anyOfSatisfied = true
					break
				}
			}
		}
	}

	if hasAnyOfClause && !anyOfSatisfied {
		return false
	}
	return true
}

// Signature derives the ContextID two filters must share to be served by
// the same Context: clause list order, per-clause sorted component-id
// multiset, and access (collapsed to a single bucket) must all match.
func (f Filter) Signature() ContextID {
	var b strings.Builder
	for i, clause := range f {
		if i > 0 {
			b.WriteByte('|')
		}
		// Access is intentionally omitted from the signature: read and
		// write collapse to the same identity bucket.
		ids := make([]string, len(clause.Components))
		for j, id := range clause.Components {
			ids[j] = fmt.Sprintf("%d", id)
		}
		fmt.Fprintf(&b, "%s:%s", clause.Kind, strings.Join(ids, ","))
	}
	return ContextID(b.String())
}

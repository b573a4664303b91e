// Package struf provides the runtime side of generated struct filters.
//
// Struf generates a companion filter type for a struct so that callers can
// express "field A is one of these values and field B is one of those values"
// without writing the boilerplate by hand. Mark a struct with the
// //struf:filter directive and tag the fields to filter by:
//
//	//struf:filter
//	type User struct {
//		Name string `filter:""`
//		Role Role   `filter:""`
//		Team string `filter:"plural=Teams"`
//		Bio  string // not filterable
//	}
//
// Then run the struf command. It writes struf_gen.go for each package that has
// marked structs:
//
//	//go:generate go run github.com/nmoutschen/struf/cmd/struf
//
// The generated filter accepts values per field and matches User values:
//
//	// generated: (simplified)
//	type UserFilter struct {
//		Names struf.Set[string]
//		Roles struf.Set[Role]
//		Teams struf.Set[string]
//	}
//	func NewUserFilter() *UserFilter
//	func (User) Filter() *UserFilter
//	func (f *UserFilter) WithName(name string) *UserFilter
//	func (f *UserFilter) WithNames(names ...string) *UserFilter
//	...
//	func (f *UserFilter) Matches(item *User) bool
//
//	admins := User{}.Filter().WithRole(RoleAdmin).WithTeams("infra", "web")
//	admins.Matches(&u) // u.Role == RoleAdmin && (u.Team == "infra" || u.Team == "web")
//
// # Semantics
//
// A field whose set is empty imposes no constraint, so an empty filter matches
// every value. Values within one field are alternatives. Constraints on
// different fields must all hold. Fields are checked in declaration order.
//
// # Naming
//
// The filter type is the struct name followed by "Filter". Each filterable
// field gets a member named by its plural, which is the field name followed by
// "s" unless the tag gives one with plural=NAME. The builders are "With" plus
// the field name and "With" plus the plural, both with the first letter
// upper-cased. The default plural is a plain suffix, so irregular plurals need
// an explicit plural option.
//
// # Generics
//
// Type parameters of the struct are carried over to the filter type. A type
// parameter stored in a set must be comparable; if the struct's own constraint
// is weaker, the filter type strengthens it. In that case the Filter method
// cannot be declared on the struct and only the New...Filter function is
// generated.
//
// Filterable fields must be strictly comparable. Interface fields are rejected
// because a set cannot hash a dynamic value such as a slice.
package struf

import (
	"iter"
	"maps"
)

// Filterer is implemented by structs that have a generated filter. Filter
// returns an empty filter which matches every value.
type Filterer[F any] interface {
	Filter() F
}

// Matcher reports whether a value of T satisfies a filter. Generated filters
// implement Matcher for their struct.
type Matcher[T any] interface {
	Matches(item *T) bool
}

// Set holds the accepted values of one filterable field. The zero value is an
// empty set ready to use through [Set.Insert].
type Set[T comparable] map[T]struct{}

// Insert adds values to the set. It allocates the set if it is nil.
func (s *Set[T]) Insert(vs ...T) {
	if *s == nil {
		*s = make(Set[T], len(vs))
	}
	for _, v := range vs {
		(*s)[v] = struct{}{}
	}
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of distinct values in the set.
func (s Set[T]) Len() int { return len(s) }

// Accepts reports whether v passes the set as a filter constraint: an empty
// set accepts anything, otherwise v must be a member.
func (s Set[T]) Accepts(v T) bool {
	return len(s) == 0 || s.Has(v)
}

// All iterates the values in the set in no particular order.
func (s Set[T]) All() iter.Seq[T] {
	return maps.Keys(s)
}

// Select returns the items matched by m, keeping their order. It returns nil if
// nothing matches.
func Select[T any](items []T, m Matcher[T]) []T {
	var out []T
	for i := range items {
		if m.Matches(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

// Where yields the values of seq matched by m.
func Where[T any](seq iter.Seq[T], m Matcher[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !m.Matches(&v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

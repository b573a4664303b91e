package typeinfo

import (
	"go/types"
	"slices"
)

// Comparable reports whether values of t can be compared with == and used as
// map keys. Type parameters are comparable when their constraint makes them
// so, or when assume reports true for them. assume may be nil.
//
// Unlike [types.Comparable], it can answer "would this be comparable if these
// type parameters were constrained by comparable?".
func Comparable(t types.Type, assume func(*types.TypeParam) bool) bool {
	return isComparable(t, assume, false, nil)
}

// StrictlyComparable is like [Comparable] but rejects interfaces, and structs
// and arrays holding interfaces. Comparing or hashing such values panics at run
// time when a dynamic value is not comparable.
func StrictlyComparable(t types.Type, assume func(*types.TypeParam) bool) bool {
	return isComparable(t, assume, true, nil)
}

func isComparable(t types.Type, assume func(*types.TypeParam) bool, strict bool, seen []*types.Named) bool {
	switch t := types.Unalias(t).(type) {
	case *types.TypeParam:
		if assume != nil && assume(t) {
			return true
		}
		return types.Comparable(t)
	case *types.Basic:
		return t.Kind() != types.Invalid && t.Kind() != types.UntypedNil
	case *types.Pointer, *types.Chan:
		return true
	case *types.Interface:
		return !strict
	case *types.Array:
		return isComparable(t.Elem(), assume, strict, seen)
	case *types.Struct:
		for f := range t.Fields() {
			if !isComparable(f.Type(), assume, strict, seen) {
				return false
			}
		}
		return true
	case *types.Named:
		if slices.Contains(seen, t) {
			// A valid type cannot contain itself by value.
			return true
		}
		return isComparable(t.Underlying(), assume, strict, append(seen, t))
	}
	// Slices, maps, functions, and tuples
	return false
}

// ValueTypeParams returns the type parameters whose comparability decides
// the comparability of t: ones reachable through struct fields, array
// elements, and type arguments of named types, but not through pointers,
// channels, or interfaces. Each type parameter appears once, in the order of
// appearance.
func ValueTypeParams(t types.Type) []*types.TypeParam {
	var tparams []*types.TypeParam
	var seen []*types.Named

	var walk func(types.Type)
	walk = func(t types.Type) {
		switch t := types.Unalias(t).(type) {
		case *types.TypeParam:
			if !slices.Contains(tparams, t) {
				tparams = append(tparams, t)
			}
		case *types.Array:
			walk(t.Elem())
		case *types.Struct:
			for f := range t.Fields() {
				walk(f.Type())
			}
		case *types.Named:
			if slices.Contains(seen, t) {
				return
			}
			seen = append(seen, t)
			walk(t.Underlying())
		}
	}
	walk(t)
	return tparams
}

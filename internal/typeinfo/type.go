package typeinfo

import "go/types"

// Type describes a type information. It holds information of [types.Type] that
// is necessary from the perspective of filter generation.
type Type struct {
	T types.Type

	Basic     *types.Basic
	Interface *types.Interface
	Named     *types.Named
}

func (t Type) String() string { return t.T.String() }

func (t Type) IsInterface() bool { return t.Interface != nil }
func (t Type) IsNamed() bool     { return t.Named != nil }

// IsInvalid reports whether the type could not be resolved by the type
// checker, typically because of an undefined identifier.
func (t Type) IsInvalid() bool {
	return t.Basic != nil && t.Basic.Kind() == types.Invalid
}

// TypeOf inspects the given type and returns a new [Type]. Aliases are
// resolved. Kinds that do not matter for filters, such as structs or slices,
// only carry T.
func TypeOf(t types.Type) Type {
	switch tt := types.Unalias(t).(type) {
	case *types.Basic:
		return Type{T: t, Basic: tt}
	case *types.Interface:
		return Type{T: t, Interface: tt}
	case *types.Named:
		info := TypeOf(tt.Underlying())
		info.T = t
		info.Named = tt
		return info
	}
	return Type{T: t}
}

// Member finds a field or a method named name which is reachable from a value
// of the type, including promoted ones and methods with pointer receivers. It
// returns nil and false if there is none. Unexported names are looked up in
// pkg.
func (t Type) Member(pkg *types.Package, name string) (types.Object, bool) {
	obj, _, _ := types.LookupFieldOrMethod(t.T, true, pkg, name)
	if obj == nil {
		return nil, false
	}
	return obj, true
}

// TypeParams returns the type parameters declared by the named type.
func (t Type) TypeParams() []*types.TypeParam {
	if !t.IsNamed() {
		return nil
	}

	var tparams []*types.TypeParam
	for tparam := range t.Named.TypeParams().TypeParams() {
		tparams = append(tparams, tparam)
	}
	return tparams
}

// IsGeneric reports whether the type is generic or has any generic type
// parameters. Even though the type has type parameters, if all type arguments
// are concrete types, it returns false.
func (t Type) IsGeneric() bool {
	return isGeneric(t.T)
}

func isGeneric(t types.Type) bool {
	switch t := types.Unalias(t).(type) {
	case *types.Named:
		if t.TypeParams().Len() == 0 {
			// No type parameters
			// e.g., Foo
			return false
		}

		targs := t.TypeArgs()
		if targs.Len() == 0 {
			// Have type parameters but no arguments
			// e.g., Foo[T]
			return true
		}

		for targ := range targs.Types() {
			if isGeneric(targ) {
				// Some type argument is generic
				// e.g., Foo[int, T]
				return true
			}
		}
	case *types.Pointer:
		return isGeneric(t.Elem())
	case *types.Slice:
		return isGeneric(t.Elem())
	case *types.Array:
		return isGeneric(t.Elem())
	case *types.Map:
		return isGeneric(t.Key()) || isGeneric(t.Elem())
	case *types.Struct:
		for f := range t.Fields() {
			if isGeneric(f.Type()) {
				return true
			}
		}
	case *types.TypeParam:
		return true
	}
	return false
}

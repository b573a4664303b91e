package parse

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"slices"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/tools/go/packages"

	"github.com/nmoutschen/struf/internal/codefmt"
	"github.com/nmoutschen/struf/internal/naming"
	"github.com/nmoutschen/struf/internal/typeinfo"
)

// Record is a struct type marked by the filter directive. It is the schema that
// the filter is generated from.
type Record struct {
	pkg *packages.Package

	Obj    *types.TypeName
	Named  *types.Named
	Struct *types.Struct

	// Directive is the position of the "//struf:filter" comment.
	Directive token.Pos

	// TypeParams are the type parameters of the record in declaration order.
	TypeParams []*TypeParam

	// Fields are the filterable fields in declaration order.
	Fields []*Field

	// FilterName is the name of the filter type, e.g., "UserFilter".
	FilterName string

	// FactoryName is the name of the function that creates an empty filter,
	// e.g., "NewUserFilter".
	FactoryName string
}

func (r *Record) Pkg() *packages.Package { return r.pkg }
func (r *Record) Pos() token.Pos         { return r.Obj.Pos() }
func (r *Record) Object() types.Object   { return r.Obj }
func (r *Record) Name() string           { return r.Obj.Name() }

// Filterer reports whether the Filter method can be declared on the record. A
// method cannot add constraints to the type parameters of its receiver, so a
// record whose filter strengthens any type parameter only gets the factory
// function.
func (r *Record) Filterer() bool {
	for _, tparam := range r.TypeParams {
		if tparam.Strengthen {
			return false
		}
	}
	return true
}

// TypeParam is a type parameter of a record.
type TypeParam struct {
	*types.TypeParam

	// Strengthen indicates that a filterable field stores the type parameter
	// in a set but the record's constraint does not make it comparable. The
	// filter type requires comparable in addition to the original constraint.
	Strengthen bool
}

// Field is a filterable field of a record.
type Field struct {
	Var *types.Var

	// Plural is the explicit plural from the tag or the default plural.
	Plural string

	// Member is the name of the set in the filter type.
	Member string

	// With and WithPlural are the names of the single-value and bulk builder
	// methods.
	With       string
	WithPlural string
}

func (f *Field) Name() string         { return f.Var.Name() }
func (f *Field) Pos() token.Pos       { return f.Var.Pos() }
func (f *Field) Type() types.Type     { return f.Var.Type() }
func (f *Field) Object() types.Object { return f.Var }

// ParseRecords finds type declarations marked by the filter directive and
// parses them into records. It collects all errors instead of stopping at the
// first error. Records are returned in the order of declaration.
func (p *Parser) ParseRecords() ([]*Record, error) {
	var records []*Record
	var errs error

	// Package level names generated by the records so far, mapped to the
	// record which generates each.
	decls := linkedhashmap.New()

	for _, file := range p.SourceFiles() {
		typeSpecs(file, func(spec *ast.TypeSpec, doc *ast.CommentGroup) {
			var found []directive
			for _, dir := range directives(doc) {
				if dir.name == "filter" {
					found = append(found, dir)
				}
			}
			if len(found) == 0 {
				return
			}

			for _, dir := range found {
				p.consumed[dir.Slash] = true
			}
			if len(found) > 1 {
				errs = errors.Join(errs, codefmt.Errorf(p, found[1], "duplicate %s directive", FilterDirective))
				return
			}

			dir := found[0]
			if dir.args != "" {
				errs = errors.Join(errs, codefmt.Errorf(p, dir, "unexpected arguments to %s: %s", FilterDirective, dir.args))
				return
			}

			record, err := p.parseRecord(spec, dir)
			if err != nil {
				errs = errors.Join(errs, err)
				return
			}
			if err := p.claimDecls(decls, record); err != nil {
				errs = errors.Join(errs, err)
				return
			}
			records = append(records, record)
		})
	}

	return records, errs
}

// parseRecord parses a type spec marked by the filter directive.
func (p *Parser) parseRecord(spec *ast.TypeSpec, dir directive) (*Record, error) {
	obj, ok := p.pkg.TypesInfo.Defs[spec.Name].(*types.TypeName)
	if !ok {
		return nil, codefmt.Errorf(p, spec.Name, "cannot resolve type %s", spec.Name.Name)
	}

	if spec.Assign.IsValid() {
		return nil, codefmt.Errorf(p, spec.Name, "cannot generate filter for alias %s", obj.Name())
	}

	named, ok := types.Unalias(obj.Type()).(*types.Named)
	if !ok {
		return nil, codefmt.Errorf(p, spec.Name, "cannot generate filter for %s: not a defined type", obj.Name()) // unreachable
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, codefmt.Errorf(p, spec.Name, "cannot generate filter for %s: %t is not a struct type", obj.Name(), named.Underlying())
	}

	r := &Record{
		pkg:         p.pkg,
		Obj:         obj,
		Named:       named,
		Struct:      st,
		Directive:   dir.Slash,
		FilterName:  obj.Name() + "Filter",
		FactoryName: naming.Factory(obj.Name()),
	}

	errs := p.checkDeclared(r)

	fields, strengthen, err := p.parseFields(r)
	errs = errors.Join(errs, err)
	r.Fields = fields

	for _, tparam := range typeinfo.TypeOf(named).TypeParams() {
		r.TypeParams = append(r.TypeParams, &TypeParam{
			TypeParam:  tparam,
			Strengthen: strengthen[tparam],
		})
	}

	if errs != nil {
		return nil, errs
	}
	return r, nil
}

// parseFields collects filterable fields of the record. It also returns which
// type parameters must be strengthened by comparable.
func (p *Parser) parseFields(r *Record) ([]*Field, map[*types.TypeParam]bool, error) {
	var fields []*Field
	var errs error
	strengthen := make(map[*types.TypeParam]bool)

	// Every member and method of the filter type must have a unique name. The
	// map holds the field that claimed each name, in order. The Matches method
	// is claimed by nobody.
	claims := linkedhashmap.New()
	claims.Put("Matches", (*Field)(nil))

	for i := 0; i < r.Struct.NumFields(); i++ {
		v := r.Struct.Field(i)

		value, ok := lookupTag(r.Struct.Tag(i))
		if !ok {
			continue
		}

		if v.Name() == "_" {
			errs = errors.Join(errs, codefmt.Errorf(p, v, "cannot filter by blank field"))
			continue
		}

		tag, err := parseTag(value)
		if err != nil {
			errs = errors.Join(errs, codefmt.Errorf(p, v, "invalid filter tag on %s.%s: %s", r.Name(), v.Name(), err.Error()))
			continue
		}

		f := &Field{Var: v, Plural: tag.Plural}
		if f.Plural == "" {
			f.Plural = naming.Plural(v.Name())
		}
		f.Member = f.Plural
		f.With = naming.With(v.Name())
		f.WithPlural = naming.With(f.Plural)

		if err := p.claimNames(claims, f); err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		tparams, err := p.checkFieldType(f)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		for _, tparam := range tparams {
			strengthen[tparam] = true
		}

		fields = append(fields, f)
	}

	return fields, strengthen, errs
}

// claimNames claims the generated names of a field. It fails if a name is
// already claimed.
func (p *Parser) claimNames(claims *linkedhashmap.Map, f *Field) error {
	hint := fmt.Sprintf(" (set another plural with `%s:\"plural=...\"`)", TagKey)

	for _, name := range []string{f.Member, f.With, f.WithPlural} {
		prev, ok := claims.Get(name)
		if !ok {
			claims.Put(name, f)
			continue
		}

		switch prev := prev.(*Field); prev {
		case nil:
			return codefmt.Errorf(p, f, "filter name %s of field %s conflicts with method Matches%s", name, f.Name(), hint)
		case f:
			return codefmt.Errorf(p, f, "filter name %s of field %s is generated twice; plural %s collides with the field name", name, f.Name(), f.Plural)
		default:
			return codefmt.Errorf(p, f, "filter name %s of field %s conflicts with field %s%s", name, f.Name(), prev.Name(), hint)
		}
	}
	return nil
}

// claimDecls claims the package level names generated for the record. It fails
// if another record generates one of them already.
func (p *Parser) claimDecls(decls *linkedhashmap.Map, r *Record) error {
	var errs error
	for _, name := range []string{r.FilterName, r.FactoryName} {
		prev, ok := decls.Get(name)
		if !ok {
			decls.Put(name, r)
			continue
		}

		other := prev.(*Record)
		errs = errors.Join(errs, codefmt.Errorf(p, r, "cannot generate %s for %s: %s is also generated for %s at %b", name, r.Name(), name, other.Name(), other.Pos()))
	}
	return errs
}

// checkFieldType checks that values of the field type can be stored in a set
// without panicking. It returns type parameters of the record that must be
// strengthened by comparable to make it possible.
func (p *Parser) checkFieldType(f *Field) ([]*types.TypeParam, error) {
	t := f.Type()
	if typeinfo.TypeOf(t).IsInvalid() {
		return nil, codefmt.Errorf(p, f, "cannot filter by %s: invalid type", f.Name())
	}

	if typeinfo.StrictlyComparable(t, nil) {
		return nil, nil
	}

	var tparams []*types.TypeParam
	for _, tparam := range typeinfo.ValueTypeParams(t) {
		if !types.Comparable(tparam) {
			tparams = append(tparams, tparam)
		}
	}

	assume := func(tparam *types.TypeParam) bool {
		return slices.Contains(tparams, tparam)
	}
	switch {
	case typeinfo.StrictlyComparable(t, assume):
		return tparams, nil
	case typeinfo.Comparable(t, assume):
		// Interfaces hash their dynamic values, which may be slices or maps.
		return nil, codefmt.Errorf(p, f, "cannot filter by %s: %t is not strictly comparable", f.Name(), t)
	}
	return nil, codefmt.Errorf(p, f, "cannot filter by %s: %t is not comparable", f.Name(), t)
}

// checkDeclared checks that the names to generate for the record are free.
// Declarations in files generated by struf do not count because they are going
// to be replaced.
func (p *Parser) checkDeclared(r *Record) error {
	var errs error

	scope := p.pkg.Types.Scope()
	for _, name := range []string{r.FilterName, r.FactoryName} {
		other := scope.Lookup(name)
		if other == nil || p.isGeneratedPos(other.Pos()) {
			continue
		}
		errs = errors.Join(errs, codefmt.Errorf(p, r, "cannot generate %s for %s: %s is already declared at %b", name, r.Name(), name, other.Pos()))
	}

	if other, ok := typeinfo.TypeOf(r.Named).Member(p.pkg.Types, "Filter"); ok && !p.isGeneratedPos(other.Pos()) {
		errs = errors.Join(errs, codefmt.Errorf(p, r, "cannot generate %s.Filter: %s already has Filter at %b", r.Name(), r.Name(), other.Pos()))
	}

	return errs
}

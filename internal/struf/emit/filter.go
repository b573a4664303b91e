// Package emit writes the Go code of filter types. It never fails: every
// problem must have been reported while parsing records.
package emit

import (
	"strings"

	"github.com/nmoutschen/struf/internal/codefmt"
	"github.com/nmoutschen/struf/internal/naming"
	"github.com/nmoutschen/struf/internal/struf/parse"
	"github.com/nmoutschen/struf/internal/typeinfo"
)

// Filter writes the filter type of a record and its methods.
type Filter struct {
	r *parse.Record

	// struf qualifies identifiers of the runtime package, e.g., "struf.". It is
	// empty when the code is generated into the runtime package itself.
	struf string

	// tparams are the names of the type parameters in the generated code. They
	// are the names of the record's type parameters, except blank ones which
	// cannot be referred.
	tparams []string
}

// New creates a [Filter] for the record. strufName is the name of the
// imported runtime package, or empty if there is no need to import it.
func New(r *parse.Record, strufName string) *Filter {
	qual := ""
	if strufName != "" {
		qual = strufName + "."
	}

	ns := codefmt.NewNS(nil)
	for _, tparam := range r.TypeParams {
		if name := tparam.Obj().Name(); name != "_" {
			ns.Reserve(name)
		}
	}

	var tparams []string
	for _, tparam := range r.TypeParams {
		name := tparam.Obj().Name()
		if name == "_" {
			name = ns.Name("T")
		}
		tparams = append(tparams, name)
	}

	return &Filter{r: r, struf: qual, tparams: tparams}
}

// Record returns the record which the filter is generated for.
func (f *Filter) Record() *parse.Record { return f.r }

// typeArgs returns "[A, B]" for a generic record, or "" otherwise.
func (f *Filter) typeArgs() string {
	if len(f.tparams) == 0 {
		return ""
	}
	return "[" + strings.Join(f.tparams, ", ") + "]"
}

// typeParams returns "[A comparable, B any]" for a generic record, or ""
// otherwise. The constraints are strengthened by comparable if needed.
func (f *Filter) typeParams(w *codefmt.Writer) string {
	if len(f.tparams) == 0 {
		return ""
	}

	params := make([]string, len(f.tparams))
	for i, tparam := range f.r.TypeParams {
		params[i] = f.tparams[i] + " " + constraint(w, tparam)
	}
	return "[" + strings.Join(params, ", ") + "]"
}

// constraint formats the constraint of the type parameter.
//
//	any        => comparable
//	fmt.Stringer => interface{ comparable; fmt.Stringer }
func constraint(w *codefmt.Writer, tparam *parse.TypeParam) string {
	c := tparam.Constraint()
	if !tparam.Strengthen {
		return w.Sprintf("%t", c)
	}
	if ti := typeinfo.TypeOf(c); ti.IsInterface() && !ti.IsNamed() && ti.Interface.Empty() {
		return "comparable"
	}
	return w.Sprintf("interface{ comparable; %t }", c)
}

// filterType returns the name of the filter type with type arguments, e.g.,
// "BoxFilter[K, V]".
func (f *Filter) filterType() string { return f.r.FilterName + f.typeArgs() }

// recordType returns the name of the record type with type arguments, e.g.,
// "Box[K, V]".
func (f *Filter) recordType() string { return f.r.Name() + f.typeArgs() }

// locals returns a writer with a fresh namespace for a method or function of
// the filter type. The type parameter names are reserved.
func (f *Filter) locals(w *codefmt.Writer) *codefmt.Writer {
	w = w.WithNS(codefmt.NewNS(nil))
	for _, name := range f.tparams {
		w.Reserve(name)
	}
	return w
}

// WriteDefineCode writes the declarations of the filter type and all of its
// methods in this order: the type, the factory function, the Filter method of
// the record, the interface assertions, the builder methods, and the Matches
// method.
func (f *Filter) WriteDefineCode(w *codefmt.Writer) {
	f.writeType(w)
	f.writeFactory(w)
	if f.r.Filterer() {
		f.writeFilterer(w)
	}
	if !typeinfo.TypeOf(f.r.Named).IsGeneric() {
		f.writeAssertions(w)
	}
	for _, field := range f.r.Fields {
		f.writeBuilders(w, field)
	}
	f.writeMatches(w)
}

func (f *Filter) writeType(w *codefmt.Writer) {
	r := f.r
	w.Printf("// %s filters %s values. A value matches when every non-empty set in\n", r.FilterName, r.Name())
	w.Printf("// the filter contains the corresponding field of the value. The zero value\n")
	w.Printf("// matches everything.\n")
	w.Printf("type %s%s struct {\n", r.FilterName, f.typeParams(w))
	for _, field := range r.Fields {
		w.Printf("%s %sSet[%t]\n", field.Member, f.struf, field.Type())
	}
	w.Printf("}\n\n")
}

func (f *Filter) writeFactory(w *codefmt.Writer) {
	r := f.r
	w.Printf("// %s returns an empty %s which matches every %s.\n", r.FactoryName, r.FilterName, r.Name())
	w.Printf("func %s%s() *%s {\n", r.FactoryName, f.typeParams(w), f.filterType())
	w.Printf("return &%s{}\n", f.filterType())
	w.Printf("}\n\n")
}

// writeFilterer writes the Filter method which makes the record implement the
// Filterer interface of the runtime package.
func (f *Filter) writeFilterer(w *codefmt.Writer) {
	r := f.r
	w.Printf("// Filter returns an empty %s which matches every %s.\n", r.FilterName, r.Name())
	w.Printf("func (%s) Filter() *%s {\n", f.recordType(), f.filterType())
	w.Printf("return %s%s()\n", r.FactoryName, f.typeArgs())
	w.Printf("}\n\n")
}

func (f *Filter) writeAssertions(w *codefmt.Writer) {
	r := f.r
	w.Printf("var (\n")
	if r.Filterer() {
		w.Printf("_ %sFilterer[*%s] = %s{}\n", f.struf, r.FilterName, r.Name())
	}
	w.Printf("_ %sMatcher[%s] = (*%s)(nil)\n", f.struf, r.Name(), r.FilterName)
	w.Printf(")\n\n")
}

// writeBuilders writes the single-value and bulk builder methods for a field.
func (f *Filter) writeBuilders(w *codefmt.Writer, field *parse.Field) {
	w = f.locals(w)
	recv := w.Name("f")
	one := w.Name(naming.Local(field.Name()))
	many := w.Name(naming.Local(field.Plural))

	w.Printf("// %s adds %s to the accepted values of %s.\n", field.With, one, field.Name())
	w.Printf("func (%s *%s) %s(%s %t) *%s {\n", recv, f.filterType(), field.With, one, field.Type(), f.filterType())
	w.Printf("%s.%s.Insert(%s)\n", recv, field.Member, one)
	w.Printf("return %s\n", recv)
	w.Printf("}\n\n")

	w.Printf("// %s adds %s to the accepted values of %s.\n", field.WithPlural, many, field.Name())
	w.Printf("func (%s *%s) %s(%s ...%t) *%s {\n", recv, f.filterType(), field.WithPlural, many, field.Type(), f.filterType())
	w.Printf("%s.%s.Insert(%s...)\n", recv, field.Member, many)
	w.Printf("return %s\n", recv)
	w.Printf("}\n\n")
}

// writeMatches writes the predicate. Fields are checked in declaration order
// and the first rejecting field stops the check.
func (f *Filter) writeMatches(w *codefmt.Writer) {
	r := f.r
	w = f.locals(w)
	recv := w.Name("f")
	item := w.Name("item")

	w.Printf("// Matches reports whether %s satisfies every constraint of the filter. A\n", item)
	w.Printf("// nil filter matches everything.\n")
	w.Printf("func (%s *%s) Matches(%s *%s) bool {\n", recv, f.filterType(), item, f.recordType())
	w.Printf("if %s == nil {\n", recv)
	w.Printf("return true\n")
	w.Printf("}\n")
	for _, field := range r.Fields {
		w.Printf("if !%s.%s.Accepts(%s.%s) {\n", recv, field.Member, item, field.Name())
		w.Printf("return false\n")
		w.Printf("}\n")
	}
	w.Printf("return true\n")
	w.Printf("}\n\n")
}

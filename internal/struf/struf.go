package strufinternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"golang.org/x/tools/go/packages"

	"github.com/nmoutschen/struf/internal/codefmt"
	"github.com/nmoutschen/struf/internal/struf/emit"
	"github.com/nmoutschen/struf/internal/struf/parse"
)

// Struf generates filter code for the target package. Call [Build] and then
// [Generate] to get the generated code. All potential errors are returned by
// [Build]. Once [Build] succeeds, [Generate] never fails.
type Struf struct {
	p      *parse.Parser
	logger *log.Logger
	buf    *bytes.Buffer
	w      *codefmt.Writer

	filters []*emit.Filter
}

// New creates a new [Struf] for the given package. If the package does not
// satisfy the requirements, an error is returned. The package must have its
// Syntax, Types and TypesInfo. logger may be nil.
func New(pkg *packages.Package, logger *log.Logger) (*Struf, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}

	var buf bytes.Buffer
	return &Struf{
		p:      parser,
		logger: logger.With("pkg", pkg.PkgPath),
		buf:    &buf,
		w:      codefmt.NewWriter(&buf, pkg),
	}, nil
}

// Build prepares code generation by parsing records. All potential errors are
// returned by this method. It must be called before [Generate].
func (s *Struf) Build() error {
	records, errs := s.p.ParseRecords()
	errs = errors.Join(errs, s.p.Validate())
	if errs != nil {
		return errs
	}
	if len(records) == 0 {
		// No filter definitions found
		return nil
	}

	strufName := s.importRuntime(records)
	for _, r := range records {
		if !r.Filterer() {
			s.logger.Warn(fmt.Sprintf("%s.Filter is not generated; use %s instead", r.Name(), r.FactoryName),
				"pos", codefmt.FormatPos(r, r.Pos()),
				"reason", "filterable fields need comparable type parameters")
		}
		s.logger.Debug("record", "name", r.Name(), "fields", len(r.Fields))
		s.filters = append(s.filters, emit.New(r, strufName))
	}
	return nil
}

// importRuntime imports the runtime package under a name which none of the
// type parameters of the records shadows. It returns an empty string if the
// target package is the runtime package itself.
func (s *Struf) importRuntime(records []*parse.Record) string {
	if s.p.Pkg().PkgPath == parse.RuntimePath {
		return ""
	}

	var tparams []string
	for _, r := range records {
		for _, tparam := range r.TypeParams {
			tparams = append(tparams, tparam.Obj().Name())
		}
	}

	for name := range codefmt.DisambiguateName("struf") {
		if !slices.Contains(tparams, name) {
			return s.w.Import(parse.RuntimePath, name)
		}
	}
	panic("unreachable")
}

// Generate generates filter code for the package. It must be called after
// [Build] succeeds. It returns nil if the package has no records.
func (s *Struf) Generate() []byte {
	if len(s.filters) == 0 {
		return nil
	}

	for _, f := range s.filters {
		f.WriteDefineCode(s.w)
	}
	return s.frameCode()
}

func (s *Struf) frameCode() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !struf\n\n")
	fmt.Fprintf(&buf, "%s\n\n", parse.GeneratedComment(Version))
	fmt.Fprintf(&buf, "package %s\n", s.p.Pkg().Name)

	if len(s.w.Imports()) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for alias, imp := range s.w.Imports() {
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, s.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	fmtCode, err := format.Source(code)
	if err != nil {
		s.logger.Debug("failed to format generated code", "err", err)
		return code
	}
	return fmtCode
}

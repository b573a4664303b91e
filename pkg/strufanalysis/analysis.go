// Package strufanalysis provides an analyzer which reports struf errors, such
// as malformed filter tags or fields which cannot be filtered, without
// generating code.
package strufanalysis

import (
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/nmoutschen/struf/internal/codefmt"
	strufinternal "github.com/nmoutschen/struf/internal/struf"
)

// Analyzer validates records marked by "//struf:filter" in the package.
var Analyzer = &analysis.Analyzer{
	Name: "struf",
	Doc:  "linter for struf records",
	Run:  run,

	// Code usually refers to filter types before they are generated.
	RunDespiteErrors: true,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}
	for _, file := range pass.Files {
		if strings.HasSuffix(pass.Fset.File(file.FileStart).Name(), "_test.go") {
			// Records in non-test files are reported by the package itself.
			pkg.ForTest = pass.Pkg.Path()
			break
		}
	}

	s, err := strufinternal.New(pkg, nil)
	if err != nil {
		return nil, err
	}

	for _, codeErr := range codefmt.CodeErrors(s.Build()) {
		pass.Report(analysis.Diagnostic{
			Pos:     codeErr.Pos(),
			End:     codeErr.End(),
			Message: codeErr.Unwrap().Error(),
		})
	}
	return nil, nil
}

// golangcilintstruf package provides a plugin for golangci-lint to integrate
// the struf analyzer. To build a custom golangci-lint binary with this plugin,
// use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-struf binary that reports malformed struf
// records while linting your Go code.
package golangcilintstruf

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/nmoutschen/struf/pkg/strufanalysis"
)

func init() {
	register.Plugin("struf", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return StrufLinter{}, nil
}

type StrufLinter struct{}

func (StrufLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{strufanalysis.Analyzer}, nil
}

func (StrufLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}

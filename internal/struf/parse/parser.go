package parse

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/tools/go/packages"
)

const (
	// RuntimePath is the import path of the runtime package that generated
	// code refers.
	RuntimePath = "github.com/nmoutschen/struf"

	// DirectivePrefix starts every struf directive comment.
	DirectivePrefix = "//struf:"

	// FilterDirective marks a struct type to generate a filter for.
	FilterDirective = DirectivePrefix + "filter"

	// TagKey is the struct tag key that marks filterable fields.
	TagKey = "filter"

	generatedPrefix = "// Code generated by " + RuntimePath
	generatedSuffix = ". DO NOT EDIT."
)

// GeneratedComment returns the comment which marks a file generated by struf.
// The version may be empty.
//
//	GeneratedComment("v1.0.0") => "// Code generated by github.com/nmoutschen/struf@v1.0.0. DO NOT EDIT."
func GeneratedComment(version string) string {
	if version != "" {
		return generatedPrefix + "@" + version + generatedSuffix
	}
	return generatedPrefix + generatedSuffix
}

// Parser parses an AST of the underlying package to collect structs marked by
// the filter directive.
type Parser struct {
	pkg *packages.Package

	// generated is the set of files generated by struf. They are ignored
	// because they are going to be regenerated.
	generated map[*token.File]bool

	// consumed is the set of directives attached to type declarations.
	consumed map[token.Pos]bool
}

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}

	p := &Parser{
		pkg:       pkg,
		generated: make(map[*token.File]bool),
		consumed:  make(map[token.Pos]bool),
	}
	for _, file := range pkg.Syntax {
		if isGenerated(file) {
			p.generated[pkg.Fset.File(file.FileStart)] = true
		}
	}
	return p, nil
}

// SourceFiles returns the syntax of the package except files generated by
// struf. For a test variant of a package, only test files are returned because
// the other files are handled by the package itself.
func (p *Parser) SourceFiles() []*ast.File {
	test := p.pkg.ForTest != ""

	files := make([]*ast.File, 0, len(p.pkg.Syntax))
	for _, file := range p.pkg.Syntax {
		tf := p.pkg.Fset.File(file.FileStart)
		if p.generated[tf] {
			continue
		}
		if test && !strings.HasSuffix(tf.Name(), "_test.go") {
			continue
		}
		files = append(files, file)
	}
	return files
}

// isGeneratedPos reports whether the position is in a file generated by struf.
func (p *Parser) isGeneratedPos(pos token.Pos) bool {
	if !pos.IsValid() {
		return false
	}
	return p.generated[p.pkg.Fset.File(pos)]
}

// isGenerated reports whether the file was generated by struf. Only comments
// before the package clause are checked.
func isGenerated(file *ast.File) bool {
	for _, group := range file.Comments {
		if group.Pos() > file.Package {
			break
		}
		for _, c := range group.List {
			rest, ok := strings.CutPrefix(c.Text, generatedPrefix)
			if !ok || !strings.HasSuffix(rest, generatedSuffix) {
				continue
			}
			if rest == generatedSuffix || strings.HasPrefix(rest, "@") {
				return true
			}
		}
	}
	return false
}

// directive is a "//struf:..." comment.
type directive struct {
	*ast.Comment

	// name is the word after "//struf:", e.g., "filter".
	name string

	// args is the rest of the comment after the name, trimmed.
	args string
}

// parseDirective parses a comment as a struf directive. It returns false if the
// comment is not a struf directive.
func parseDirective(c *ast.Comment) (directive, bool) {
	rest, ok := strings.CutPrefix(c.Text, DirectivePrefix)
	if !ok {
		return directive{}, false
	}
	name, args, _ := strings.Cut(rest, " ")
	return directive{Comment: c, name: name, args: strings.TrimSpace(args)}, true
}

// directives returns struf directives in the comment group in order.
func directives(group *ast.CommentGroup) []directive {
	if group == nil {
		return nil
	}

	var dirs []directive
	for _, c := range group.List {
		if dir, ok := parseDirective(c); ok {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// typeSpecDoc returns the doc comment of a type spec. For a type declaration
// without parentheses, the parser attaches the doc comment to the declaration
// rather than the spec.
//
//	//struf:filter
//	type T struct{} // doc of the GenDecl
//
//	type (
//		//struf:filter
//		T struct{} // doc of the TypeSpec
//	)
func typeSpecDoc(decl *ast.GenDecl, spec *ast.TypeSpec) *ast.CommentGroup {
	if spec.Doc != nil {
		return spec.Doc
	}
	if !decl.Lparen.IsValid() {
		return decl.Doc
	}
	return nil
}

// typeSpecs iterates type specs in the file with their doc comments.
func typeSpecs(file *ast.File, fn func(spec *ast.TypeSpec, doc *ast.CommentGroup)) {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			spec := spec.(*ast.TypeSpec)
			fn(spec, typeSpecDoc(gen, spec))
		}
	}
}

package parse

import (
	"errors"
	"go/ast"
	"go/token"

	"github.com/nmoutschen/struf/internal/codefmt"
)

// Validate checks struf directives which are not attached to a type
// declaration at package level. It must be called after [Parser.ParseRecords]
// because it relies on which directives have been consumed by records. It
// collects all errors instead of stopping at the first error.
func (p *Parser) Validate() error {
	var errs error
	for _, file := range p.SourceFiles() {
		docs := docOwners(file)

		for _, group := range file.Comments {
			for _, c := range group.List {
				dir, ok := parseDirective(c)
				if !ok {
					continue
				}

				if dir.name != "filter" {
					errs = errors.Join(errs, codefmt.Errorf(p, dir, "unknown directive %s%s", DirectivePrefix, dir.name))
					continue
				}
				if p.consumed[c.Slash] {
					continue
				}

				switch owner := docs[group].(type) {
				case *ast.TypeSpec:
					errs = errors.Join(errs, codefmt.Errorf(p, dir, "cannot generate filter for local type %s", owner.Name.Name))
				case *ast.FuncDecl:
					errs = errors.Join(errs, codefmt.Errorf(p, dir, "misplaced %s on func %s; it must be in the doc comment of a struct type", FilterDirective, owner.Name.Name))
				case *ast.Field:
					errs = errors.Join(errs, codefmt.Errorf(p, dir, "misplaced %s on field; use a `%s:\"\"` struct tag to make a field filterable", FilterDirective, TagKey))
				default:
					errs = errors.Join(errs, codefmt.Errorf(p, dir, "misplaced %s; it must be in the doc comment of a struct type", FilterDirective))
				}
			}
		}
	}
	return errs
}

// docOwners maps doc comments in the file to the nodes which own them, except
// package level type declarations. Type specs in the map are local types.
func docOwners(file *ast.File) map[*ast.CommentGroup]ast.Node {
	owners := make(map[*ast.CommentGroup]ast.Node)
	ast.Inspect(file, func(node ast.Node) bool {
		switch node := node.(type) {
		case *ast.FuncDecl:
			if node.Doc != nil {
				owners[node.Doc] = node
			}
		case *ast.Field:
			if node.Doc != nil {
				owners[node.Doc] = node
			}
		case *ast.DeclStmt:
			// Local declarations inside a function body.
			gen, ok := node.Decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				return true
			}
			for _, spec := range gen.Specs {
				spec := spec.(*ast.TypeSpec)
				if doc := typeSpecDoc(gen, spec); doc != nil {
					owners[doc] = spec
				}
			}
		}
		return true
	})
	return owners
}

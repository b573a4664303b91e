package strufinternal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/tools/go/packages"

	"github.com/nmoutschen/struf/internal/codefmt"
)

var Version string

// Main is the main entry point for struf. It is used by the command-line tool
// directly.
//
// ctx is the context for loading packages. If the loading is too slow, ctx can
// cancel the operation. logger receives progress messages and warnings. wd is
// the path of the working directory. env is the environment variables to use
// when running the tool. tags is the build tags to use when loading packages.
// tests indicates whether to include test files. outFile is the name of the
// output file to generate in each package. And patterns are the package
// patterns to process.
//
// It returns a map of output file paths to their contents. If any error occurs,
// it returns a non-nil error.
func Main(ctx context.Context, logger *log.Logger, wd string, env []string, tags string, tests bool, outFile string, patterns []string) (map[string][]byte, error) {
	pkgs, err := load(ctx, logger, wd, env, tags, tests, patterns)
	if err != nil {
		return nil, err
	}

	outs := make(map[string][]byte)
	var errs error

	for _, pkg := range pkgs {
		if strings.HasSuffix(pkg.ID, ".test") || len(pkg.GoFiles) == 0 {
			// Synthesized test main package
			continue
		}

		s, err := New(pkg, logger)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		if err := s.Build(); err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		code := s.Generate()
		if len(code) == 0 {
			logger.Debug("no records", "pkg", pkg.ID)
			continue
		}

		outDir := filepath.Dir(pkg.GoFiles[0])
		if rel, err := filepath.Rel(wd, outDir); err == nil {
			outDir = rel
		}
		out := filepath.Join(outDir, outFileFor(pkg, outFile))
		outs[out] = code
	}
	if errs != nil {
		// errs already contains comprehensive error messages. So we don't need
		// to attach another error message.
		return nil, reorderErrors(errs)
	}

	return outs, nil
}

// outFileFor returns the output file name for the package. Records in test
// files are generated into a test file so that they do not leak into the
// package.
//
//	struf_gen.go        package p
//	struf_gen_test.go   package p, test files
//	struf_gen_x_test.go package p_test
func outFileFor(pkg *packages.Package, outFile string) string {
	if pkg.ForTest == "" {
		return outFile
	}

	base := strings.TrimSuffix(outFile, ".go")
	if strings.HasSuffix(pkg.Name, "_test") {
		return base + "_x_test.go"
	}
	return base + "_test.go"
}

// load loads packages. Type errors are tolerated because code in the package
// usually refers to filter types that are not generated yet.
func load(ctx context.Context, logger *log.Logger, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:       packages.NeedDeps | packages.NeedFiles | packages.NeedImports | packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedForTest,
		Context:    ctx,
		Dir:        wd,
		Env:        env,
		BuildFlags: []string{"-tags=struf"},
		Tests:      tests,
		Logf: func(format string, args ...any) {
			logger.Debug(fmt.Sprintf(format, args...))
		},
	}
	if tags != "" {
		cfg.BuildFlags[0] += "," + tags
	}

	// Load the packages based on the provided patterns.
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	// Check for errors in the loaded packages.
	var errs error
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			if err.Kind == packages.TypeError {
				logger.Debug("ignoring type error", "pkg", pkg.ID, "err", err.Msg, "pos", err.Pos)
				continue
			}

			if err.Pos == "" {
				errs = errors.Join(errs, errors.New(err.Msg))
				continue
			}

			path, rowcol, _ := strings.Cut(err.Pos, ":")
			if rel, relErr := filepath.Rel(wd, path); relErr == nil {
				err.Pos = rel + ":" + rowcol
			}
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return nil, errs
	}

	return pkgs, nil
}

func reorderErrors(errs error) error {
	if errs == nil {
		return nil
	}

	list := codefmt.Flatten(errs)

	// Sort errors by message and drop duplicates reported by test variants
	sort.Slice(list, func(i, j int) bool {
		return list[i].Error() < list[j].Error()
	})
	list = slices.CompactFunc(list, func(a, b error) bool {
		return a.Error() == b.Error()
	})
	return errors.Join(list...)
}

package codefmt_test

import (
	"errors"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/tools/go/packages"

	"github.com/nmoutschen/struf/internal/codefmt"
)

type pkger struct{}

func (pkger) Pkg() *packages.Package {
	var pkg packages.Package
	pkg.Fset = token.NewFileSet()
	pkg.Fset.AddFile("test.go", -1, 100).AddLine(10)
	return &pkg
}

type poser struct{ pos int }

func (p poser) Pos() token.Pos { return token.Pos(p.pos) }

func TestErrorfNilNil(t *testing.T) {
	err := codefmt.Errorf(nil, nil, "simple error")
	assert.Equal(t, "simple error", err.Error())
}

func TestErrorfPos(t *testing.T) {
	err := codefmt.Errorf(pkger{}, poser{1}, "error")
	assert.Equal(t, "test.go:1:1: error", err.Error())
}

func TestErrorfSecondLine(t *testing.T) {
	err := codefmt.Errorf(pkger{}, poser{13}, "error")
	assert.Equal(t, "test.go:2:3: error", err.Error())
}

func TestErrorfW(t *testing.T) {
	assert.Panics(t, func() {
		_ = codefmt.Errorf(pkger{}, poser{1}, "error: %w", assert.AnError)
	})
}

func TestFlatten(t *testing.T) {
	a := errors.New("a")
	b := errors.New("b")
	c := errors.New("c")

	errs := errors.Join(a, errors.Join(b, nil), c)
	assert.Equal(t, []error{a, c, b}, codefmt.Flatten(errs))
}

func TestFlattenNil(t *testing.T) {
	assert.Nil(t, codefmt.Flatten(nil))
}

func TestCodeErrors(t *testing.T) {
	a := codefmt.Errorf(pkger{}, poser{1}, "a")
	b := errors.New("b")
	c := codefmt.Errorf(pkger{}, poser{2}, "c")

	got := codefmt.CodeErrors(errors.Join(a, b, c))
	if assert.Len(t, got, 2) {
		assert.Equal(t, token.Pos(1), got[0].Pos())
		assert.Equal(t, "c", got[1].Unwrap().Error())
	}
}

// The MIT License (MIT)
//
// Copyright (c) 2026 The Fowl Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package infer

import (
	"errors"
	"testing"

	"github.com/fowl-lang/infer/types"
)

func TestUnifyListTypes(t *testing.T) {
	ctx := NewContext()

	tv := types.NewVar("t0", 0)
	if err := ctx.unify(&types.List{Elem: tv}, &types.List{Elem: types.Int}); err != nil {
		t.Fatal(err)
	}
	if types.RealType(tv) != types.Type(types.Int) {
		t.Fatalf("element: %s", types.TypeString(tv))
	}
}

func TestUnifySharedCell(t *testing.T) {
	ctx := NewContext()

	a := types.NewVar("t0", 0)
	b := types.VarOf(a.Cell())
	if err := ctx.unify(a, b); err != nil {
		t.Fatal(err)
	}
	if a.Cell().IsLink() {
		t.Fatal("unifying a variable with itself must not produce a link")
	}
}

func TestUnifySameNamedCells(t *testing.T) {
	ctx := NewContext()

	a := types.NewVar("t0", 0)
	b := types.NewVar("t0", 0)
	err := ctx.unify(a, b)
	var cannotUnify *CannotUnifyError
	if !errors.As(err, &cannotUnify) {
		t.Fatalf("distinct cells sharing a name must not unify, got %v", err)
	}
}

func TestUnifyLowersLevels(t *testing.T) {
	ctx := NewContext()

	outer := types.NewVar("t0", 1)
	inner := types.NewVar("t1", 5)
	arrow := &types.Arrow{Args: []types.Type{inner}, Return: types.Int}
	if err := ctx.unify(outer, arrow); err != nil {
		t.Fatal(err)
	}
	if inner.Cell().Level() != 1 {
		t.Fatalf("level: %d", inner.Cell().Level())
	}
	if types.RealType(outer) != types.Type(arrow) {
		t.Fatalf("outer: %s", types.TypeString(outer))
	}
}

func TestUnifyArrowArity(t *testing.T) {
	ctx := NewContext()

	binary := &types.Arrow{Args: []types.Type{types.Int, types.Int}, Return: types.Int}
	unary := &types.Arrow{Args: []types.Type{types.Int}, Return: types.Int}
	err := ctx.unify(binary, unary)
	var arity *MismatchedArityError
	if !errors.As(err, &arity) {
		t.Fatalf("error: %v", err)
	}
	if arity.Want != 2 || arity.Got != 1 {
		t.Fatalf("arity: want %d, got %d", arity.Want, arity.Got)
	}
}

func TestUnifyClauseTypes(t *testing.T) {
	ctx := NewContext()

	tv := types.NewVar("t0", 0)
	a := &types.Clause{Pattern: tv, Result: types.Atom}
	b := &types.Clause{Pattern: types.Int, Result: types.Atom}
	if err := ctx.unify(a, b); err != nil {
		t.Fatal(err)
	}
	if types.RealType(tv) != types.Type(types.Int) {
		t.Fatalf("pattern: %s", types.TypeString(tv))
	}
}

func TestUnifyConstMismatch(t *testing.T) {
	ctx := NewContext()

	err := ctx.unify(types.Int, types.Atom)
	var cannotUnify *CannotUnifyError
	if !errors.As(err, &cannotUnify) {
		t.Fatalf("error: %v", err)
	}
}

func TestCopyPreservesVariableIdentity(t *testing.T) {
	ctx := NewContext()

	tv := types.NewVar("t0", 0)
	arrow := &types.Arrow{Args: []types.Type{tv, tv}, Return: tv}
	copied, ok := types.Copy(arrow).(*types.Arrow)
	if !ok || copied == arrow {
		t.Fatal("copy must produce a fresh arrow")
	}

	// Constraining one occurrence in the copy constrains the variable.
	if err := ctx.unify(copied.Args[0], types.Int); err != nil {
		t.Fatal(err)
	}
	if types.RealType(copied.Args[1]) != types.Type(types.Int) {
		t.Fatalf("copy lost sharing: %s", types.TypeString(copied.Args[1]))
	}
	if types.RealType(tv) != types.Type(types.Int) {
		t.Fatalf("canonical cell: %s", types.TypeString(tv))
	}
}

func TestGeneralizeRespectsLevels(t *testing.T) {
	inner := types.NewVar("t0", 1)
	outer := types.NewVar("t1", 0)
	arrow := &types.Arrow{Args: []types.Type{inner, outer}, Return: types.Int}

	generalized := Generalize(0, arrow).(*types.Arrow)
	if !generalized.HasGenericVars {
		t.Fatal("expected generic variables after generalization")
	}
	if _, ok := generalized.Args[0].(*types.QVar); !ok {
		t.Fatalf("inner variable must be quantified, got %s", types.TypeString(generalized.Args[0]))
	}
	if _, ok := types.RealType(generalized.Args[1]).(*types.Var); !ok {
		t.Fatalf("outer variable must stay unifiable, got %s", types.TypeString(generalized.Args[1]))
	}
}

func TestInstantiateSharesFreshVariables(t *testing.T) {
	ctx := NewContext()

	scheme := &types.Arrow{
		Args:           []types.Type{&types.QVar{Name: "a"}, &types.QVar{Name: "a"}},
		Return:         &types.QVar{Name: "a"},
		HasGenericVars: true,
	}
	inst := ctx.instantiate(0, scheme).(*types.Arrow)
	if inst == scheme {
		t.Fatal("instantiation must not return the scheme itself")
	}
	if inst.Args[0] != inst.Args[1] || inst.Args[0] != inst.Return {
		t.Fatal("occurrences of one quantified variable must share one fresh cell")
	}
	if ctx.counter != 1 {
		t.Fatalf("counter: %d", ctx.counter)
	}
	if scheme.Args[0].(*types.QVar).Name != "a" {
		t.Fatal("the scheme must be left untouched")
	}
}

func TestInstantiateGroundScheme(t *testing.T) {
	ctx := NewContext()

	ground := &types.Arrow{Args: []types.Type{types.Int}, Return: types.Int}
	if inst := ctx.instantiate(0, ground); inst != types.Type(ground) {
		t.Fatal("ground schemes are returned unchanged")
	}
}

func TestResolveEliminatesCells(t *testing.T) {
	ctx := NewContext()

	tv := types.NewVar("t0", 0)
	if err := ctx.unify(tv, &types.List{Elem: types.Int}); err != nil {
		t.Fatal(err)
	}
	resolved := types.Resolve(tv)
	if typeString := types.TypeString(resolved); typeString != "List[Int]" {
		t.Fatalf("type: %s", typeString)
	}
	if _, ok := resolved.(*types.List); !ok {
		t.Fatalf("resolve must substitute cell contents, got %s", resolved.TypeName())
	}

	unbound := types.Resolve(types.NewVar("t9", 0))
	if qv, ok := unbound.(*types.QVar); !ok || qv.Name != "t9" {
		t.Fatalf("unbound cells surface as quantified variables, got %s", types.TypeString(unbound))
	}
}

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
	"github.com/fowl-lang/infer/types"
)

// occursAdjustLevels walks t looking for the named variable. Finding it
// means unification would construct an infinite type. Every other unbound
// cell reached has its level lowered to at most level, so a variable linked
// into an inner scope cannot outlive the scope it escaped from.
func (ti *InferenceContext) occursAdjustLevels(name string, level int, t types.Type) error {
	switch t := t.(type) {
	case *types.Var:
		c := t.Cell()
		if c.IsLink() {
			return ti.occursAdjustLevels(name, level, c.Link())
		}
		if c.Name() == name {
			return &CircularTypeError{Name: name}
		}
		if c.Level() > level {
			c.SetLevel(level)
		}
		return nil

	case *types.List:
		return ti.occursAdjustLevels(name, level, t.Elem)

	case *types.Arrow:
		for _, arg := range t.Args {
			if err := ti.occursAdjustLevels(name, level, arg); err != nil {
				return err
			}
		}
		return ti.occursAdjustLevels(name, level, t.Return)

	case *types.Clause:
		if err := ti.occursAdjustLevels(name, level, t.Pattern); err != nil {
			return err
		}
		if t.Guard != nil {
			if err := ti.occursAdjustLevels(name, level, t.Guard); err != nil {
				return err
			}
		}
		return ti.occursAdjustLevels(name, level, t.Result)

	default: // Const, QVar
		return nil
	}
}

// unify destructively rewrites variable cells so that a and b represent the
// same type.
func (ti *InferenceContext) unify(a, b types.Type) error {
	a, b = types.RealType(a), types.RealType(b)
	if a == b {
		return nil
	}

	// unify type variables:

	avar, _ := a.(*types.Var)
	bvar, _ := b.(*types.Var)
	switch {
	case avar == nil && bvar != nil:
		return ti.unify(b, a)

	case avar != nil:
		if bvar != nil {
			if avar.Cell() == bvar.Cell() {
				return nil
			}
			// Distinct cells must never share a name.
			if avar.Cell().Name() == bvar.Cell().Name() {
				return &CannotUnifyError{Left: a, Right: b}
			}
		}
		if err := ti.occursAdjustLevels(avar.Cell().Name(), avar.Cell().Level(), b); err != nil {
			return err
		}
		avar.Cell().SetLink(b)
		return nil
	}

	// unify types:

	switch a := a.(type) {
	case *types.Const:
		if b, ok := b.(*types.Const); ok && a.Name == b.Name {
			return nil
		}

	case *types.List:
		if b, ok := b.(*types.List); ok {
			return ti.unify(a.Elem, b.Elem)
		}

	case *types.Arrow:
		b, ok := b.(*types.Arrow)
		if !ok {
			break
		}
		if len(a.Args) != len(b.Args) {
			return &MismatchedArityError{Want: len(a.Args), Got: len(b.Args)}
		}
		for i := range a.Args {
			if err := ti.unify(a.Args[i], b.Args[i]); err != nil {
				return err
			}
		}
		return ti.unify(a.Return, b.Return)

	case *types.Clause:
		if b, ok := b.(*types.Clause); ok {
			if err := ti.unify(a.Pattern, b.Pattern); err != nil {
				return err
			}
			return ti.unify(a.Result, b.Result)
		}
	}

	return &CannotUnifyError{Left: a, Right: b}
}

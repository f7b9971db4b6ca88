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

// Generalize produces a type scheme for t by quantifying every reachable
// unbound variable whose level exceeds level. Variables at or below level
// are still unifiable with the surrounding context and are left alone.
// Links are followed transparently; cells are rewritten in place.
func Generalize(level int, t types.Type) types.Type {
	genericCount := 0
	return generalizeRecursive(level, t, &genericCount)
}

func generalizeRecursive(level int, t types.Type, genericCount *int) types.Type {
	switch t := t.(type) {
	case *types.Var:
		c := t.Cell()
		if c.IsLink() {
			return generalizeRecursive(level, c.Link(), genericCount)
		}
		if c.Level() > level {
			*genericCount++
			c.SetLink(&types.QVar{Name: c.Name()})
			return c.Link()
		}
		return t

	case *types.QVar:
		*genericCount++
		return t

	case *types.List:
		gcount := *genericCount
		t.Elem = generalizeRecursive(level, t.Elem, genericCount)
		if *genericCount > gcount {
			t.HasGenericVars = true
		}
		return t

	case *types.Arrow:
		gcount := *genericCount
		for i, arg := range t.Args {
			t.Args[i] = generalizeRecursive(level, arg, genericCount)
		}
		t.Return = generalizeRecursive(level, t.Return, genericCount)
		if *genericCount > gcount {
			t.HasGenericVars = true
		}
		return t

	case *types.Clause:
		gcount := *genericCount
		t.Pattern = generalizeRecursive(level, t.Pattern, genericCount)
		if t.Guard != nil {
			t.Guard = generalizeRecursive(level, t.Guard, genericCount)
		}
		t.Result = generalizeRecursive(level, t.Result, genericCount)
		if *genericCount > gcount {
			t.HasGenericVars = true
		}
		return t
	}

	return t
}

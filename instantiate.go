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

// instantiate refreshes a scheme into a monotype at the given level. Every
// occurrence of one quantified variable is replaced by the same fresh
// unbound cell; the per-call lookup cache is the mechanism. Links are
// followed transparently and non-generic types are returned unchanged.
//
// Callers must clear the instantiation cache between schemes.
func (ti *InferenceContext) instantiate(level int, t types.Type) types.Type {
	if !t.IsGeneric() {
		return t
	}

	switch t := t.(type) {
	case *types.Var:
		if t.Cell().IsLink() {
			return ti.instantiate(level, t.Cell().Link())
		}
		return t

	case *types.QVar:
		if tv, ok := ti.instLookup[t.Name]; ok {
			return tv
		}
		tv := ti.fresh(level)
		ti.instLookup[t.Name] = tv
		return tv

	case *types.List:
		return &types.List{Elem: ti.instantiate(level, t.Elem)}

	case *types.Arrow:
		args := make([]types.Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = ti.instantiate(level, arg)
		}
		return &types.Arrow{Args: args, Return: ti.instantiate(level, t.Return)}

	case *types.Clause:
		var guard types.Type
		if t.Guard != nil {
			guard = ti.instantiate(level, t.Guard)
		}
		return &types.Clause{
			Pattern: ti.instantiate(level, t.Pattern),
			Guard:   guard,
			Result:  ti.instantiate(level, t.Result),
		}
	}

	return t
}

func (ti *InferenceContext) clearInstLookup() {
	for name := range ti.instLookup {
		delete(ti.instLookup, name)
	}
}

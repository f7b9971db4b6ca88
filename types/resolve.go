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

package types

// Resolve substitutes every variable cell reachable from t, following link
// chains, to produce a pure algebraic type tree free of indirection. A cell
// which is still unbound surfaces as a quantified variable carrying the
// cell's name.
func Resolve(t Type) Type {
	switch t := t.(type) {
	case *Const:
		return t

	case *QVar:
		return t

	case *List:
		return &List{Elem: Resolve(t.Elem)}

	case *Arrow:
		args := make([]Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = Resolve(arg)
		}
		return &Arrow{Args: args, Return: Resolve(t.Return)}

	case *Clause:
		var guard Type
		if t.Guard != nil {
			guard = Resolve(t.Guard)
		}
		return &Clause{Pattern: Resolve(t.Pattern), Guard: guard, Result: Resolve(t.Result)}

	case *Var:
		if t.cell.IsLink() {
			return Resolve(t.cell.Link())
		}
		return &QVar{Name: t.cell.Name()}
	}
	return t
}

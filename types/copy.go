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

// Copy returns a deep copy of t.
//
// Structural constructors, constants and quantified variables are copied
// structurally. Linked cells are re-created behind fresh cells wrapping
// copies of their contents. Each distinct unbound variable maps to a single
// fresh cell which forwards to the variable's canonical cell, so every
// occurrence of one variable keeps sharing one mutable cell; the name-keyed
// map is the mechanism.
func Copy(t Type) Type { return copyType(t, make(map[string]*Cell)) }

func copyType(t Type, vars map[string]*Cell) Type {
	switch t := t.(type) {
	case *Const:
		return t

	case *QVar:
		return t

	case *List:
		return &List{Elem: copyType(t.Elem, vars), HasGenericVars: t.HasGenericVars}

	case *Arrow:
		args := make([]Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = copyType(arg, vars)
		}
		return &Arrow{Args: args, Return: copyType(t.Return, vars), HasGenericVars: t.HasGenericVars}

	case *Clause:
		var guard Type
		if t.Guard != nil {
			guard = copyType(t.Guard, vars)
		}
		return &Clause{
			Pattern:        copyType(t.Pattern, vars),
			Guard:          guard,
			Result:         copyType(t.Result, vars),
			HasGenericVars: t.HasGenericVars,
		}

	case *Var:
		if t.cell.IsLink() {
			return VarOf(NewLinkCell(copyType(t.cell.Link(), vars)))
		}
		if cell, ok := vars[t.cell.Name()]; ok {
			return VarOf(cell)
		}
		cell := NewLinkCell(t)
		vars[t.cell.Name()] = cell
		return VarOf(cell)
	}
	return t
}

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
	"strconv"

	"github.com/fowl-lang/infer/types"
)

// CannotUnifyError reports a structural mismatch between two types.
type CannotUnifyError struct {
	Left, Right types.Type
}

func (e *CannotUnifyError) Error() string {
	return "Failed to unify " + types.TypeString(e.Left) + " with " + types.TypeString(e.Right)
}

// MismatchedArityError reports unification of arrows with differing
// parameter counts.
type MismatchedArityError struct {
	Want, Got int
}

func (e *MismatchedArityError) Error() string {
	return "Cannot unify arrows with differing arity (" +
		strconv.Itoa(e.Want) + " and " + strconv.Itoa(e.Got) + ")"
}

// CircularTypeError reports an occurs-check failure: unifying the named
// variable would construct an infinite type.
type CircularTypeError struct {
	Name string
}

func (e *CircularTypeError) Error() string {
	return "Implicitly recursive type through type-variable " + e.Name
}

// UnboundVariableError reports a reference to a name with no binding in the
// type-environment.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return "Variable " + e.Name + " not found"
}

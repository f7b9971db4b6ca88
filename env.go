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
	"github.com/benbjohnson/immutable"

	"github.com/fowl-lang/infer/types"
)

// Env is a type-environment containing mappings from identifiers to type
// schemes, together with the counter used to mint fresh type-variable names.
//
// Bindings are persistent: Bind returns a derived environment and leaves the
// receiver untouched, so environments may be threaded by value through a
// recursive walk without inner scopes leaking bindings to outer callers.
type Env struct {
	// NextVar is the next unused integer suffix for fresh type-variable names.
	NextVar int

	bindings *immutable.SortedMap
}

// NewEnv creates a type-environment seeded with the built-in functions of
// the source language.
func NewEnv() *Env {
	intOp := &types.Arrow{Args: []types.Type{types.Int, types.Int}, Return: types.Int}
	floatOp := &types.Arrow{Args: []types.Type{types.Float, types.Float}, Return: types.Float}
	b := immutable.NewSortedMap(nil)
	for _, name := range []string{"+", "-", "*", "/"} {
		b = b.Set(name, intOp)
	}
	for _, name := range []string{"+.", "-.", "*.", "/."} {
		b = b.Set(name, floatOp)
	}
	return &Env{bindings: b}
}

// Lookup returns the scheme bound to name. The most recent binding for a
// name wins.
func (e *Env) Lookup(name string) (types.Type, bool) {
	t, ok := e.bindings.Get(name)
	if !ok {
		return nil, false
	}
	return t.(types.Type), true
}

// Bind returns a derived environment with name bound to t, replacing any
// previous binding for name.
func (e *Env) Bind(name string, t types.Type) *Env {
	return &Env{NextVar: e.NextVar, bindings: e.bindings.Set(name, t)}
}

// Declare returns a derived environment with name bound to t as a closed
// scheme: every unbound variable reachable from t is quantified.
func (e *Env) Declare(name string, t types.Type) *Env {
	return e.Bind(name, Generalize(-1, t))
}

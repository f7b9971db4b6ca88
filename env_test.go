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
	"testing"

	"github.com/fowl-lang/infer/types"
)

func TestBuiltinSeed(t *testing.T) {
	env := NewEnv()

	for _, name := range []string{"+", "-", "*", "/"} {
		ty, ok := env.Lookup(name)
		if !ok {
			t.Fatalf("missing builtin %s", name)
		}
		if typeString := types.TypeString(ty); typeString != "(Int, Int) -> Int" {
			t.Fatalf("%s: %s", name, typeString)
		}
	}
	for _, name := range []string{"+.", "-.", "*.", "/."} {
		ty, ok := env.Lookup(name)
		if !ok {
			t.Fatalf("missing builtin %s", name)
		}
		if typeString := types.TypeString(ty); typeString != "(Float, Float) -> Float" {
			t.Fatalf("%s: %s", name, typeString)
		}
	}
}

func TestShadowing(t *testing.T) {
	env := NewEnv().Bind("x", types.Int).Bind("x", types.Atom)

	ty, ok := env.Lookup("x")
	if !ok {
		t.Fatal("missing binding for x")
	}
	if ty != types.Type(types.Atom) {
		t.Fatalf("most recent binding must win, got %s", types.TypeString(ty))
	}
}

func TestBindIsPersistent(t *testing.T) {
	base := NewEnv()
	derived := base.Bind("x", types.Int)

	if _, ok := base.Lookup("x"); ok {
		t.Fatal("binding leaked into the base environment")
	}
	if _, ok := derived.Lookup("x"); !ok {
		t.Fatal("missing binding in the derived environment")
	}
	if _, ok := derived.Lookup("+"); !ok {
		t.Fatal("derived environments inherit the builtin seed")
	}
}

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

package infer_test

import (
	"testing"

	. "github.com/fowl-lang/infer"
	. "github.com/fowl-lang/infer/construct"
)

func BenchmarkHigherOrderLet(b *testing.B) {
	env := NewEnv()
	ctx := NewContext()

	twoTimes := Fun("two_times", []string{"f", "x"},
		Apply(Sym("f"), Apply(Sym("f"), Sym("x"))))
	intDouble := Fun("int_double", []string{"i"},
		Apply(Op("+"), Sym("i"), Sym("i")))
	expr := Fun("double_app", []string{"int"},
		LetFun(twoTimes,
			LetFun(intDouble,
				Apply(Sym("two_times"), Sym("int_double"), Sym("int")))))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ty, err := ctx.Infer(expr, env)
		if err != nil || ty == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMatch(b *testing.B) {
	env := NewEnv()
	ctx := NewContext()

	expr := Fun("f", []string{"x"},
		Match(Apply(Op("+"), Sym("x"), Int(1)),
			Clause(Int(1), Atom("x_was_zero")),
			Clause(Int(2), Atom("x_was_one")),
			Clause(Wild(), Atom("x_was_more_than_one"))))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ty, err := ctx.Infer(expr, env)
		if err != nil || ty == nil {
			b.Fatal(err)
		}
	}
}

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

// infer assigns principal types to expressions of the Fowl source language.
//
// The type-system is Hindley-Milner with level-based generalization in the
// style popularized by Didier Rémy and Oleg Kiselyov. Unification is
// destructive, over mutable type-variable cells; let-bound values are
// generalized eagerly at binding boundaries and schemes are refreshed with
// new variables at each use. The arrow type carries an explicit parameter
// arity, following Tom Primozic's OCaml implementations.
//
// Expressions are consumed as abstract syntax trees produced by an external
// parser (see the ast package). Inference either returns a fully-resolved
// type, free of cell indirection, or an error. Type errors are one of the
// error kinds declared in this package; a malformed tree (an empty
// expression, a match without clauses, an unnamed function binding, an
// unexpected argument or expression node) is reported as a plain error.
//
// Supported expression forms:
//
//   * Integer, float, atom, string and boolean literals
//   * References to bound names and built-in functions
//   * Application with explicit arity
//   * Pattern matches with symbol, wildcard and literal patterns
//   * Function definitions
//   * Polymorphic let-bindings of values and functions
//
// Links:
//
// Efficient Generalization with Levels (Oleg Kiselyov): http://okmij.org/ftp/ML/generalization.html#levels
//
// algorithm_w (OCaml implementation, Tom Primozic): https://github.com/tomprimozic/type-systems/tree/master/algorithm_w
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
package infer

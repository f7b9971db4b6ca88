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

// Package construct provides convenience constructors for types and
// expressions, useful within tests and tools which build syntax trees by
// hand.
package construct

import (
	"github.com/fowl-lang/infer/ast"
	"github.com/fowl-lang/infer/types"
)

// Types

// Function type: `(Int, Int) -> Int`
func TArrow(args []types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: args, Return: ret}
}

// Function type: `Int -> Int`
func TArrow1(arg types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: []types.Type{arg}, Return: ret}
}

// Function type: `(Int, Int) -> Int`
func TArrow2(arg1, arg2 types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: []types.Type{arg1, arg2}, Return: ret}
}

// Homogeneous list type: `List[Int]`
func TList(elem types.Type) *types.List {
	return &types.List{Elem: elem}
}

// The type of a single pattern-match arm.
func TClause(pattern, result types.Type) *types.Clause {
	return &types.Clause{Pattern: pattern, Result: result}
}

// Quantified variable, for building closed schemes by hand.
func TQVar(name string) *types.QVar {
	return &types.QVar{Name: name}
}

// Expressions

// Integer literal: `42`
func Int(value int64) *ast.IntLit {
	return &ast.IntLit{Value: value}
}

// Float literal: `4.2`
func Float(value float64) *ast.FloatLit {
	return &ast.FloatLit{Value: value}
}

// Atom literal: `'ok`
func Atom(value string) *ast.AtomLit {
	return &ast.AtomLit{Value: value}
}

// String literal: `"s"`
func Str(value string) *ast.StringLit {
	return &ast.StringLit{Value: value}
}

// Boolean literal: `true`
func Bool(value bool) *ast.BoolLit {
	return &ast.BoolLit{Value: value}
}

// Reference to a bound name
func Sym(name string) *ast.Symbol {
	return &ast.Symbol{Name: name}
}

// Wildcard pattern: `_`
func Wild() *ast.Wildcard {
	return &ast.Wildcard{}
}

// Unit placeholder: `()`
func Unit() *ast.Unit {
	return &ast.Unit{}
}

// Pre-resolved built-in operator reference
func Op(name string) *ast.Builtin {
	return &ast.Builtin{Name: name, Arity: 2, Module: "fowl", Function: name}
}

// Application: `f(x, y)`
func Apply(f ast.Expr, args ...ast.Expr) *ast.Apply {
	return &ast.Apply{Func: f, Args: args}
}

// Match expression: `match v with | p -> r | ...`
func Match(value ast.Expr, clauses ...*ast.Clause) *ast.Match {
	return &ast.Match{Value: value, Clauses: clauses}
}

// Pattern-match arm: `| p -> r`
func Clause(pattern, result ast.Expr) *ast.Clause {
	return &ast.Clause{Pattern: pattern, Result: result}
}

// Guarded pattern-match arm: `| p when g -> r`
func GuardedClause(pattern, guard, result ast.Expr) *ast.Clause {
	return &ast.Clause{Pattern: pattern, Guard: guard, Result: result}
}

// Named function definition: `fun x y -> body`
func Fun(name string, args []string, body ast.Expr) *ast.FunDef {
	def := &ast.FunDef{Body: body}
	if name != "" {
		def.Name = Sym(name)
	}
	for _, arg := range args {
		def.Args = append(def.Args, Sym(arg))
	}
	return def
}

// Anonymous function of one argument: `fun x -> body`
func Fun1(arg string, body ast.Expr) *ast.FunDef {
	return Fun("", []string{arg}, body)
}

// Anonymous function of two arguments: `fun x y -> body`
func Fun2(arg1, arg2 string, body ast.Expr) *ast.FunDef {
	return Fun("", []string{arg1, arg2}, body)
}

// Function binding: `let f = fun x -> v in body`
func LetFun(def *ast.FunDef, body ast.Expr) *ast.FunBinding {
	return &ast.FunBinding{Def: def, Body: body}
}

// Value binding: `let x = v in body`
func Let(name string, value, body ast.Expr) *ast.VarBinding {
	return &ast.VarBinding{Name: Sym(name), Value: value, Body: body}
}

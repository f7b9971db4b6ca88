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

// Package ast declares the abstract expression shapes consumed from the Fowl
// parser. The parser and lexer live outside this module; inference only
// depends on the node kinds declared here.
package ast

// Expr is the base for all expressions.
type Expr interface {
	// ExprName returns the name of the syntax-type of the expression.
	ExprName() string
}

var (
	_ Expr = (*IntLit)(nil)
	_ Expr = (*FloatLit)(nil)
	_ Expr = (*AtomLit)(nil)
	_ Expr = (*StringLit)(nil)
	_ Expr = (*BoolLit)(nil)
	_ Expr = (*Symbol)(nil)
	_ Expr = (*Wildcard)(nil)
	_ Expr = (*Unit)(nil)
	_ Expr = (*Builtin)(nil)
	_ Expr = (*Apply)(nil)
	_ Expr = (*Match)(nil)
	_ Expr = (*Clause)(nil)
	_ Expr = (*FunDef)(nil)
	_ Expr = (*FunBinding)(nil)
	_ Expr = (*VarBinding)(nil)
)

// Integer literal: `42`
type IntLit struct {
	Line  int
	Value int64
}

// Float literal: `4.2`
type FloatLit struct {
	Line  int
	Value float64
}

// Atom literal: `'ok`
type AtomLit struct {
	Line  int
	Value string
}

// String literal: `"s"`
type StringLit struct {
	Line  int
	Value string
}

// Boolean literal: `true`
type BoolLit struct {
	Line  int
	Value bool
}

// Symbol is a reference to a bound name.
type Symbol struct {
	Line int
	Name string
}

// Wildcard pattern: `_`
type Wildcard struct {
	Line int
}

// Unit placeholder: `()`
type Unit struct {
	Line int
}

// Builtin is a pre-resolved reference to a built-in function. Only Name is
// consumed during inference; Module and Function record the builtin's origin.
type Builtin struct {
	Name     string
	Arity    int
	Module   string
	Function string
}

// Application: `f(x, y)`
type Apply struct {
	Line int
	Func Expr
	Args []Expr
}

// Match expression: `match v with | p -> r | ...`
type Match struct {
	Line    int
	Value   Expr
	Clauses []*Clause
}

// Clause is a single pattern-match arm. Guard is nil when the arm carries no
// guard expression.
type Clause struct {
	Line    int
	Pattern Expr
	Guard   Expr
	Result  Expr
}

// Function definition: `fun x y -> body`. Name is nil for anonymous
// functions; arguments are symbols or the unit placeholder.
type FunDef struct {
	Line int
	Name *Symbol
	Args []Expr
	Body Expr
}

// Function binding: `let f = fun x -> v in body`
type FunBinding struct {
	Line int
	Def  *FunDef
	Body Expr
}

// Value binding: `let x = v in body`
type VarBinding struct {
	Line  int
	Name  *Symbol
	Value Expr
	Body  Expr
}

func (e *IntLit) ExprName() string     { return "IntLit" }
func (e *FloatLit) ExprName() string   { return "FloatLit" }
func (e *AtomLit) ExprName() string    { return "AtomLit" }
func (e *StringLit) ExprName() string  { return "StringLit" }
func (e *BoolLit) ExprName() string    { return "BoolLit" }
func (e *Symbol) ExprName() string     { return "Symbol" }
func (e *Wildcard) ExprName() string   { return "Wildcard" }
func (e *Unit) ExprName() string       { return "Unit" }
func (e *Builtin) ExprName() string    { return "Builtin" }
func (e *Apply) ExprName() string      { return "Apply" }
func (e *Match) ExprName() string      { return "Match" }
func (e *Clause) ExprName() string     { return "Clause" }
func (e *FunDef) ExprName() string     { return "FunDef" }
func (e *FunBinding) ExprName() string { return "FunBinding" }
func (e *VarBinding) ExprName() string { return "VarBinding" }

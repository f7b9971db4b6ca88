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

// Package types defines the algebra of types for the Fowl source language,
// along with the mutable variable cells manipulated by the unification engine.
package types

// Type is the base interface for all types.
type Type interface {
	// TypeName returns the name of the syntax-type of the type.
	TypeName() string
	// IsGeneric reports whether the type carries quantified variables: always
	// for a QVar, never for a Const, through its link for a Var, and by the
	// HasGenericVars flag for structural types. Generalize sets that flag; a
	// structural type built otherwise (for example by Resolve) reports false
	// even when a quantified variable is reachable from it.
	IsGeneric() bool
}

var (
	_ Type = (*Const)(nil)
	_ Type = (*List)(nil)
	_ Type = (*Arrow)(nil)
	_ Type = (*Clause)(nil)
	_ Type = (*Var)(nil)
	_ Type = (*QVar)(nil)
)

// Ground types of the source language.
var (
	Int    = &Const{Name: "Int"}
	Float  = &Const{Name: "Float"}
	Atom   = &Const{Name: "Atom"}
	Bool   = &Const{Name: "Bool"}
	String = &Const{Name: "String"}
	Unit   = &Const{Name: "Unit"}
)

// Type constant: `Int` or `Atom`
type Const struct {
	Name string
}

// Homogeneous list type: `List[Int]`
type List struct {
	Elem           Type
	HasGenericVars bool
}

// Function type with explicit parameter arity: `(Int, Int) -> Int`
type Arrow struct {
	Args           []Type
	Return         Type
	HasGenericVars bool
}

// Clause is the type of a single pattern-match arm. Guard is nil unless the
// arm carries a guard expression; guard types are carried but not yet
// checked against Bool.
type Clause struct {
	Pattern        Type
	Guard          Type
	Result         Type
	HasGenericVars bool
}

// QVar is a universally-quantified variable bound by the enclosing type scheme.
type QVar struct {
	Name string
}

func (t *Const) TypeName() string  { return "Const" }
func (t *List) TypeName() string   { return "List" }
func (t *Arrow) TypeName() string  { return "Arrow" }
func (t *Clause) TypeName() string { return "Clause" }
func (t *Var) TypeName() string    { return "Var" }
func (t *QVar) TypeName() string   { return "QVar" }

func (t *Const) IsGeneric() bool  { return false }
func (t *List) IsGeneric() bool   { return t.HasGenericVars }
func (t *Arrow) IsGeneric() bool  { return t.HasGenericVars }
func (t *Clause) IsGeneric() bool { return t.HasGenericVars }
func (t *QVar) IsGeneric() bool   { return true }

func (tv *Var) IsGeneric() bool {
	r := RealType(tv)
	if _, unbound := r.(*Var); unbound {
		return false
	}
	return r.IsGeneric()
}

// Cell is the mutable one-slot container backing a type-variable. A cell is
// either unbound, carrying the variable's name and binding-level, or
// forwarded to another type through a link. Cell contents are the only
// mutable state touched during inference.
type Cell struct {
	name  string
	level int
	link  Type
}

// NewCell creates an unbound cell with a unique name at a binding-level.
func NewCell(name string, level int) *Cell { return &Cell{name: name, level: level} }

// NewLinkCell creates a cell forwarded to t.
func NewLinkCell(t Type) *Cell { return &Cell{link: t} }

func (c *Cell) IsLink() bool { return c.link != nil }
func (c *Cell) Name() string { return c.name }
func (c *Cell) Level() int   { return c.level }
func (c *Cell) Link() Type   { return c.link }

// SetLink forwards the cell to t. Forwarding is permanent; an occupied cell
// is never rebound.
func (c *Cell) SetLink(t Type) { c.link = t }

// SetLevel lowers the binding-level of an unbound cell.
func (c *Cell) SetLevel(level int) { c.level = level }

// Var is a reference to a variable cell. All occurrences of one variable
// reach a single canonical cell, possibly through a chain of links.
type Var struct {
	cell *Cell
}

// NewVar creates a variable with a fresh unbound cell at a binding-level.
func NewVar(name string, level int) *Var { return &Var{cell: NewCell(name, level)} }

// VarOf returns a variable sharing an existing cell.
func VarOf(cell *Cell) *Var { return &Var{cell: cell} }

func (tv *Var) Cell() *Cell { return tv.cell }

// RealType returns the underlying type for a chain of linked variable cells,
// when applicable.
func RealType(t Type) Type {
	for {
		tv, ok := t.(*Var)
		if !ok || !tv.cell.IsLink() {
			return t
		}
		t = tv.cell.Link()
	}
}

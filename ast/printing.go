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

package ast

import (
	"strconv"
	"strings"
)

// ExprString returns a source-like string representation of an expression.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, false, e)
	return sb.String()
}

func exprString(sb *strings.Builder, simple bool, e Expr) {
	switch e := e.(type) {
	case *IntLit:
		sb.WriteString(strconv.FormatInt(e.Value, 10))

	case *FloatLit:
		sb.WriteString(strconv.FormatFloat(e.Value, 'g', -1, 64))

	case *AtomLit:
		sb.WriteByte('\'')
		sb.WriteString(e.Value)

	case *StringLit:
		sb.WriteString(strconv.Quote(e.Value))

	case *BoolLit:
		sb.WriteString(strconv.FormatBool(e.Value))

	case *Symbol:
		sb.WriteString(e.Name)

	case *Wildcard:
		sb.WriteByte('_')

	case *Unit:
		sb.WriteString("()")

	case *Builtin:
		sb.WriteString(e.Name)

	case *Apply:
		exprString(sb, true, e.Func)
		sb.WriteByte('(')
		for i, arg := range e.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			exprString(sb, false, arg)
		}
		sb.WriteByte(')')

	case *Match:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("match ")
		exprString(sb, false, e.Value)
		sb.WriteString(" with")
		for _, c := range e.Clauses {
			sb.WriteByte(' ')
			exprString(sb, false, c)
		}
		if simple {
			sb.WriteByte(')')
		}

	case *Clause:
		sb.WriteString("| ")
		exprString(sb, false, e.Pattern)
		if e.Guard != nil {
			sb.WriteString(" when ")
			exprString(sb, false, e.Guard)
		}
		sb.WriteString(" -> ")
		exprString(sb, false, e.Result)

	case *FunDef:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("fun ")
		for i, arg := range e.Args {
			if i > 0 {
				sb.WriteByte(' ')
			}
			exprString(sb, false, arg)
		}
		sb.WriteString(" -> ")
		exprString(sb, false, e.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *FunBinding:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("let ")
		if e.Def.Name != nil {
			sb.WriteString(e.Def.Name.Name)
		}
		sb.WriteString(" = ")
		exprString(sb, false, e.Def)
		sb.WriteString(" in ")
		exprString(sb, false, e.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *VarBinding:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("let ")
		sb.WriteString(e.Name.Name)
		sb.WriteString(" = ")
		exprString(sb, false, e.Value)
		sb.WriteString(" in ")
		exprString(sb, false, e.Body)
		if simple {
			sb.WriteByte(')')
		}
	}
}

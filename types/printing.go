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

import (
	"strconv"
	"strings"
)

// TypeString returns a string representation of a Type.
//
// Quantified variables are renamed 'a, 'b, ... in order of appearance;
// unbound variables are printed by cell name.
func TypeString(t Type) string {
	p := &typePrinter{}
	p.typeString(false, t)
	return p.sb.String()
}

type typePrinter struct {
	qvarNames map[string]string
	sb        strings.Builder
}

func (p *typePrinter) nextName() string {
	i := len(p.qvarNames)
	if i >= 26 {
		return "'" + string(rune('a'+i%26)) + strconv.Itoa(i/26)
	}
	return "'" + string(rune('a'+i))
}

func (p *typePrinter) qvarName(name string) string {
	if p.qvarNames == nil {
		p.qvarNames = make(map[string]string, 8)
	} else if printed, ok := p.qvarNames[name]; ok {
		return printed
	}
	printed := p.nextName()
	p.qvarNames[name] = printed
	return printed
}

func (p *typePrinter) typeString(simple bool, t Type) {
	switch t := t.(type) {
	case *Const:
		p.sb.WriteString(t.Name)

	case *List:
		p.sb.WriteString("List[")
		p.typeString(false, t.Elem)
		p.sb.WriteByte(']')

	case *Arrow:
		if simple {
			p.sb.WriteByte('(')
		}
		if len(t.Args) == 1 {
			p.typeString(true, t.Args[0])
			p.sb.WriteString(" -> ")
			p.typeString(false, t.Return)
		} else {
			p.sb.WriteByte('(')
			for i, arg := range t.Args {
				if i > 0 {
					p.sb.WriteString(", ")
				}
				p.typeString(false, arg)
			}
			p.sb.WriteString(") -> ")
			p.typeString(false, t.Return)
		}
		if simple {
			p.sb.WriteByte(')')
		}

	case *Clause:
		p.sb.WriteString("Clause(")
		p.typeString(false, t.Pattern)
		if t.Guard != nil {
			p.sb.WriteString(" when ")
			p.typeString(false, t.Guard)
		}
		p.sb.WriteString(", ")
		p.typeString(false, t.Result)
		p.sb.WriteByte(')')

	case *Var:
		if t.cell.IsLink() {
			p.typeString(simple, t.cell.Link())
			return
		}
		p.sb.WriteString(t.cell.Name())

	case *QVar:
		p.sb.WriteString(p.qvarName(t.Name))
	}
}

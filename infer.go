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
	"errors"
	"strconv"

	"github.com/fowl-lang/infer/ast"
	"github.com/fowl-lang/infer/types"
)

// Reserved environment tag for unit placeholder arguments.
const unitArgName = "_unit"

// InferenceContext is a re-usable context for type inference.
//
// An inference context cannot be used concurrently.
type InferenceContext struct {
	counter    int                   // next fresh type-variable suffix
	instLookup map[string]*types.Var // instantiation lookup for quantified variables
	err        error
	invalid    ast.Expr
	needsReset bool
}

// NewContext creates a new type-inference context. A context may be re-used
// across calls of Infer.
func NewContext() *InferenceContext {
	return &InferenceContext{instLookup: make(map[string]*types.Var, 16)}
}

// Error returns the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// InvalidExpr returns the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

func (ti *InferenceContext) reset() {
	ti.clearInstLookup()
	ti.err, ti.invalid, ti.needsReset = nil, nil, false
}

// Infer infers the type of expr within env at the top level. The returned
// type is fully resolved, free of cell indirection, with residual unbound
// variables quantified. On success the environment's variable counter is
// advanced past every name minted during the run.
func (ti *InferenceContext) Infer(expr ast.Expr, env *Env) (types.Type, error) {
	if expr == nil {
		return nil, errors.New("Empty expression")
	}
	if ti.needsReset {
		ti.reset()
	}
	ti.counter = env.NextVar
	t, err := ti.infer(env, 0, expr)
	ti.needsReset = true
	if err != nil {
		return nil, err
	}
	env.NextVar = ti.counter
	t = Generalize(-1, t)
	return types.Resolve(t), nil
}

// InferAt is the recursive entry point, exposed for tests. It infers the
// type of expr at the given binding-level and returns the next unused
// variable counter alongside the raw, cell-bearing type.
func (ti *InferenceContext) InferAt(env *Env, level int, expr ast.Expr) (types.Type, int, error) {
	if ti.needsReset {
		ti.reset()
	}
	ti.counter = env.NextVar
	t, err := ti.infer(env, level, expr)
	ti.needsReset = true
	return t, ti.counter, err
}

func (ti *InferenceContext) fresh(level int) *types.Var {
	tv := types.NewVar("t"+strconv.Itoa(ti.counter), level)
	ti.counter++
	return tv
}

func (ti *InferenceContext) lookup(env *Env, e ast.Expr, name string, level int) (types.Type, error) {
	t, ok := env.Lookup(name)
	if !ok {
		ti.invalid, ti.err = e, &UnboundVariableError{Name: name}
		return nil, ti.err
	}
	ti.clearInstLookup()
	return ti.instantiate(level, t), nil
}

func (ti *InferenceContext) infer(env *Env, level int, e ast.Expr) (types.Type, error) {
	switch e := e.(type) {
	case *ast.IntLit:
		return types.Int, nil

	case *ast.FloatLit:
		return types.Float, nil

	case *ast.AtomLit:
		return types.Atom, nil

	case *ast.StringLit:
		return types.String, nil

	case *ast.BoolLit:
		return types.Bool, nil

	case *ast.Unit:
		return types.Unit, nil

	case *ast.Wildcard:
		return ti.fresh(level), nil

	case *ast.Symbol:
		return ti.lookup(env, e, e.Name, level)

	case *ast.Builtin:
		return ti.lookup(env, e, e.Name, level)

	case *ast.Apply:
		ft, err := ti.infer(env, level, e.Func)
		if err != nil {
			return nil, err
		}
		// The call site unifies against a copy, never against the
		// applied function's own type.
		ft = types.Copy(ft)
		args := make([]types.Type, len(e.Args))
		for i, arg := range e.Args {
			ta, err := ti.infer(env, level, arg)
			if err != nil {
				return nil, err
			}
			args[i] = ta
		}
		ret := ti.fresh(level)
		if err := ti.unify(ft, &types.Arrow{Args: args, Return: ret}); err != nil {
			ti.invalid, ti.err = e, err
			return nil, err
		}
		return ret, nil

	case *ast.Match:
		if len(e.Clauses) == 0 {
			ti.invalid, ti.err = e, errors.New("Match expression without clauses")
			return nil, ti.err
		}
		vt, err := ti.infer(env, level, e.Value)
		if err != nil {
			return nil, err
		}
		clauses := make([]*types.Clause, len(e.Clauses))
		for i, c := range e.Clauses {
			ct, err := ti.inferClause(env, level, c)
			if err != nil {
				return nil, err
			}
			clauses[i] = ct
		}
		// All arms must agree on the pattern type and on the result type.
		for i := range clauses {
			for j := i + 1; j < len(clauses); j++ {
				if err := ti.unify(clauses[i].Pattern, clauses[j].Pattern); err != nil {
					ti.invalid, ti.err = e.Clauses[j], err
					return nil, ti.err
				}
				if err := ti.unify(clauses[i].Result, clauses[j].Result); err != nil {
					ti.invalid, ti.err = e.Clauses[j], err
					return nil, ti.err
				}
			}
		}
		if err := ti.unify(vt, clauses[0].Pattern); err != nil {
			ti.invalid, ti.err = e, err
			return nil, ti.err
		}
		return clauses[0].Result, nil

	case *ast.Clause:
		ct, err := ti.inferClause(env, level, e)
		if err != nil {
			return nil, err
		}
		return ct, nil

	case *ast.FunDef:
		args := make([]types.Type, len(e.Args))
		fnEnv := env
		for i, arg := range e.Args {
			switch a := arg.(type) {
			case *ast.Unit:
				args[i] = types.Unit
				fnEnv = fnEnv.Bind(unitArgName, types.Unit)
			case *ast.Symbol:
				if t, ok := fnEnv.Lookup(a.Name); ok {
					args[i] = t
				} else {
					tv := ti.fresh(level)
					fnEnv = fnEnv.Bind(a.Name, tv)
					args[i] = tv
				}
			default:
				ti.invalid, ti.err = e, errors.New("Unexpected "+arg.ExprName()+" argument in function definition")
				return nil, ti.err
			}
		}
		ret, err := ti.infer(fnEnv, level, e.Body)
		if err != nil {
			return nil, err
		}
		return &types.Arrow{Args: args, Return: ret}, nil

	case *ast.FunBinding:
		// The bound name is not visible inside the function's own body;
		// directly recursive definitions are not typable at this layer.
		if e.Def.Name == nil {
			ti.invalid, ti.err = e, errors.New("Function binding without a name")
			return nil, ti.err
		}
		return ti.inferBinding(env, level, e.Def.Name.Name, e.Def, e.Body)

	case *ast.VarBinding:
		return ti.inferBinding(env, level, e.Name.Name, e.Value, e.Body)
	}

	ti.invalid, ti.err = e, errors.New("Unhandled expression "+e.ExprName())
	return nil, ti.err
}

// inferBinding types `let name = value in body`. The bound value is inferred
// one level down, generalized back at the current level, and the body is
// inferred below the freshly generalized binding. Variables which escaped to
// an outer scope have had their levels lowered by unification and stay
// monomorphic.
func (ti *InferenceContext) inferBinding(env *Env, level int, name string, value, body ast.Expr) (types.Type, error) {
	vt, err := ti.infer(env, level+1, value)
	if err != nil {
		return nil, err
	}
	bodyEnv := env.Bind(name, Generalize(level, vt))
	return ti.infer(bodyEnv, level+1, body)
}

func (ti *InferenceContext) inferClause(env *Env, level int, c *ast.Clause) (*types.Clause, error) {
	var pat types.Type
	clauseEnv := env
	switch p := c.Pattern.(type) {
	case *ast.Symbol:
		tv := ti.fresh(level)
		clauseEnv = env.Bind(p.Name, tv)
		pat = tv
	default:
		t, err := ti.infer(env, level, c.Pattern)
		if err != nil {
			return nil, err
		}
		pat = t
	}
	// Guard types are recorded but not yet checked against Bool.
	var guard types.Type
	if c.Guard != nil {
		t, err := ti.infer(clauseEnv, level, c.Guard)
		if err != nil {
			return nil, err
		}
		guard = t
	}
	res, err := ti.infer(clauseEnv, level, c.Result)
	if err != nil {
		return nil, err
	}
	return &types.Clause{Pattern: pat, Guard: guard, Result: res}, nil
}

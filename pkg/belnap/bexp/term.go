// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package bexp

import (
	"strings"

	"github.com/Coder-Spirit/belnapian/pkg/belnap"
)

// Environment maps variable names to their assigned truth values.
type Environment func(string) belnap.Extended

// Term represents an abstraction over truth expressions.
type Term interface {
	// Eval computes the truth value of this term under a given assignment of
	// its variables.  The environment must cover every variable occurring in
	// the term.
	Eval(Environment) belnap.Extended
	// String returns a parseable rendition of this term.
	String() string
}

// Literal is a term which always evaluates to the same truth value.
type Literal struct {
	Value belnap.Extended
}

// Eval implementation for Term interface.
func (p *Literal) Eval(env Environment) belnap.Extended {
	return p.Value
}

func (p *Literal) String() string {
	return p.Value.String()
}

// Variable is a term which evaluates to whatever the environment assigns to
// its name.
type Variable struct {
	Name string
}

// Eval implementation for Term interface.
func (p *Variable) Eval(env Environment) belnap.Extended {
	return env(p.Name)
}

func (p *Variable) String() string {
	return p.Name
}

// Not negates its operand.
type Not struct {
	Arg Term
}

// Eval implementation for Term interface.
func (p *Not) Eval(env Environment) belnap.Extended {
	return p.Arg.Eval(env).Not()
}

func (p *Not) String() string {
	return "!" + p.Arg.String()
}

// Conjunct is the conjunction of two or more terms.
type Conjunct struct {
	Args []Term
}

// Eval implementation for Term interface.
func (p *Conjunct) Eval(env Environment) belnap.Extended {
	return evalFold(p.Args, env, belnap.Extended.And)
}

func (p *Conjunct) String() string {
	return bracket(p.Args, " && ")
}

// Disjunct is the disjunction of two or more terms.
type Disjunct struct {
	Args []Term
}

// Eval implementation for Term interface.
func (p *Disjunct) Eval(env Environment) belnap.Extended {
	return evalFold(p.Args, env, belnap.Extended.Or)
}

func (p *Disjunct) String() string {
	return bracket(p.Args, " || ")
}

// Superposition merges the evidence carried by two or more terms.
type Superposition struct {
	Args []Term
}

// Eval implementation for Term interface.
func (p *Superposition) Eval(env Environment) belnap.Extended {
	return evalFold(p.Args, env, belnap.Extended.Superposition)
}

func (p *Superposition) String() string {
	return bracket(p.Args, " <+> ")
}

// Annihilation keeps only the evidence two or more terms agree on.
type Annihilation struct {
	Args []Term
}

// Eval implementation for Term interface.
func (p *Annihilation) Eval(env Environment) belnap.Extended {
	return evalFold(p.Args, env, belnap.Extended.Annihilation)
}

func (p *Annihilation) String() string {
	return bracket(p.Args, " <-> ")
}

// Equation compares two terms for equality of their truth values.
type Equation struct {
	Lhs Term
	Rhs Term
}

// Eval implementation for Term interface.
func (p *Equation) Eval(env Environment) belnap.Extended {
	return p.Lhs.Eval(env).Eq(p.Rhs.Eval(env))
}

func (p *Equation) String() string {
	return bracket([]Term{p.Lhs, p.Rhs}, " == ")
}

func evalFold(args []Term, env Environment, fn func(belnap.Extended, belnap.Extended) belnap.Extended) belnap.Extended {
	acc := args[0].Eval(env)
	//
	for _, arg := range args[1:] {
		acc = fn(acc, arg.Eval(env))
	}
	//
	return acc
}

func bracket(args []Term, connective string) string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	//
	for i, arg := range args {
		if i != 0 {
			builder.WriteString(connective)
		}
		//
		builder.WriteString(arg.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

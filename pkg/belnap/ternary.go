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
package belnap

// Ternary is a truth value of a 3-valued logic, where Unknown denotes
// subjective ignorance between classical truth and falsehood.  Only the basic
// connectives are provided, since "implication" differs between 3-valued
// systems (Kleene, RM3, Łukasiewicz).
type Ternary uint8

const (
	// TernaryFalse is classical falsehood.
	TernaryFalse Ternary = iota
	// TernaryTrue is classical truth.
	TernaryTrue
	// TernaryUnknown denotes that the value could be either of the other two.
	TernaryUnknown
)

// And returns the conjunction of two ternary values.
func (t Ternary) And(other Ternary) Ternary {
	// Rules are tried top-down and earlier rules take priority.  Do not
	// reorder them.
	switch {
	case t == TernaryFalse || other == TernaryFalse:
		return TernaryFalse
	case t == TernaryUnknown || other == TernaryUnknown:
		return TernaryUnknown
	default:
		return TernaryTrue
	}
}

// Or returns the disjunction of two ternary values.
func (t Ternary) Or(other Ternary) Ternary {
	// Rules are tried top-down and earlier rules take priority.  Do not
	// reorder them.
	switch {
	case t == TernaryTrue || other == TernaryTrue:
		return TernaryTrue
	case t == TernaryUnknown || other == TernaryUnknown:
		return TernaryUnknown
	default:
		return TernaryFalse
	}
}

// Xor returns the exclusive disjunction of two ternary values.
func (t Ternary) Xor(other Ternary) Ternary {
	switch {
	case t == TernaryUnknown || other == TernaryUnknown:
		return TernaryUnknown
	case t == other:
		return TernaryFalse
	default:
		return TernaryTrue
	}
}

// Not returns the negation of this ternary value.
func (t Ternary) Not() Ternary {
	switch t {
	case TernaryFalse:
		return TernaryTrue
	case TernaryTrue:
		return TernaryFalse
	default:
		return TernaryUnknown
	}
}

// Eq checks two ternary values for equality, expressed as a ternary value:
// any Unknown operand makes the comparison itself Unknown.
func (t Ternary) Eq(other Ternary) Ternary {
	// Rules are tried top-down and earlier rules take priority.  Do not
	// reorder them.
	switch {
	case t == TernaryFalse && other == TernaryFalse:
		return TernaryTrue
	case t == TernaryTrue && other == TernaryTrue:
		return TernaryTrue
	case t == TernaryUnknown || other == TernaryUnknown:
		return TernaryUnknown
	default:
		return TernaryFalse
	}
}

// IsUnknown reports whether this value is TernaryUnknown.
func (t Ternary) IsUnknown() bool {
	return t == TernaryUnknown
}

func (t Ternary) String() string {
	switch t {
	case TernaryFalse:
		return "False"
	case TernaryTrue:
		return "True"
	case TernaryUnknown:
		return "Unknown"
	}
	//
	return "?"
}

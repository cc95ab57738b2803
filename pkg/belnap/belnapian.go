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

// Belnapian is one of the four truth values of Belnap's 4-valued logic.  The
// declaration order gives the total order used for table lookups, and the
// ordinal of each value doubles as its bit position within Unknown, PowerSet
// and Extended.
type Belnapian uint8

const (
	// Neither identifies propositions to which we cannot assign any classical
	// truth value.  This often happens when the proposition is not well-formed
	// or when it is self-contradictory.
	Neither Belnapian = iota
	// False is classical falsehood.
	False
	// True is classical truth.
	True
	// Both can be understood as a superposition of True and False.  A natural
	// case where it makes sense to assign this truth value is a proposition
	// which is independent of our current set of axioms, and which could be
	// adopted as a new axiom without causing any inconsistency.
	Both
)

// And returns the conjunction of two truth values.
func (b Belnapian) And(other Belnapian) Belnapian {
	// Rules are tried top-down and earlier rules take priority.  Do not
	// reorder them.
	switch {
	case b == False || other == False:
		return False
	case b == Neither && other == Both, b == Both && other == Neither:
		return False
	case b == Neither || other == Neither:
		return Neither
	case b == Both || other == Both:
		return Both
	default:
		// Both operands are True
		return True
	}
}

// Or returns the disjunction of two truth values.  It is the dual of And,
// with the roles of True/False and Both/Neither swapped.
func (b Belnapian) Or(other Belnapian) Belnapian {
	// Rules are tried top-down and earlier rules take priority.  Do not
	// reorder them.
	switch {
	case b == True || other == True:
		return True
	case b == Both && other == Neither, b == Neither && other == Both:
		return True
	case b == Both || other == Both:
		return Both
	case b == Neither || other == Neither:
		return Neither
	default:
		// Both operands are False
		return False
	}
}

// Xor returns the exclusive disjunction of two truth values.  XOR cannot be
// generalized to Belnap's 4-valued logic without introducing new assumptions,
// because the propositions
//
//	(a OR b) AND ¬(a AND b)
//	(a AND ¬b) OR (¬a AND b)
//
// which are equivalent in classical logic, have different truth tables here.
// This implementation chose
//
//	(a AND ¬b) OR (¬a AND b)
//
// as it is closer to the natural language interpretation of XOR.
func (b Belnapian) Xor(other Belnapian) Belnapian {
	switch {
	case b == Neither && other == Both, b == Both && other == Neither:
		return False
	case b == Neither || other == Neither:
		return Neither
	case b == Both || other == Both:
		return Both
	case b == other:
		return False
	default:
		return True
	}
}

// Not returns the negation of this truth value.  Negation is an involution:
// Neither and Both are fixed points, whilst True and False swap.
func (b Belnapian) Not() Belnapian {
	switch b {
	case Neither:
		return Neither
	case False:
		return True
	case True:
		return False
	default:
		return Both
	}
}

// Superposition joins two truth values towards Both: any classical
// disagreement between the operands becomes Both, whilst Neither is absorbed
// by everything else.
func (b Belnapian) Superposition(other Belnapian) Belnapian {
	// Rules are tried top-down and earlier rules take priority.  Do not
	// reorder them.
	switch {
	case b == Both || other == Both:
		return Both
	case b == True && other == False, b == False && other == True:
		return Both
	case b == True || other == True:
		return True
	case b == False || other == False:
		return False
	default:
		// Both operands are Neither
		return Neither
	}
}

// Annihilation meets two truth values towards Neither.  It is the dual of
// Superposition: classical disagreement collapses to Neither, whilst Both is
// absorbed by everything else.
func (b Belnapian) Annihilation(other Belnapian) Belnapian {
	// Rules are tried top-down and earlier rules take priority.  Do not
	// reorder them.
	switch {
	case b == Neither || other == Neither:
		return Neither
	case b == False && other == True, b == True && other == False:
		return Neither
	case b == False || other == False:
		return False
	case b == True || other == True:
		return True
	default:
		// Both operands are Both
		return Both
	}
}

// Eq checks two truth values for equality, expressed as a truth value itself
// so that it agrees with the extended dispatch layer.
func (b Belnapian) Eq(other Belnapian) Belnapian {
	return BelnapianFromBool(b == other)
}

func (b Belnapian) String() string {
	switch b {
	case Neither:
		return "Neither"
	case False:
		return "False"
	case True:
		return "True"
	case Both:
		return "Both"
	}
	//
	return "?"
}

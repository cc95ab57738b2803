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

import "math/bits"

// Extended is a truth value which is either a fully known Belnapian value or
// an ignorance set holding at least two candidates.  It is encoded as a
// non-empty membership mask over the four Belnapian values, exactly like
// Unknown: a singleton mask is a known value, a multi-bit mask is an
// ignorance set.  The zero mask is not a valid Extended value.
type Extended uint8

// Known lifts a fully determined Belnapian value into the extended domain.
func Known(b Belnapian) Extended {
	return Extended(1) << b
}

// Uncertain lifts an ignorance set into the extended domain.
func Uncertain(u Unknown) Extended {
	return Extended(u)
}

// IsUnknown reports whether this value carries any ignorance, i.e. whether
// more than one candidate remains.
func (e Extended) IsUnknown() bool {
	return e&(e-1) != 0
}

// known extracts the underlying Belnapian value.  Callers must have
// established that e is a singleton mask.
func (e Extended) known() Belnapian {
	return Belnapian(bits.TrailingZeros8(uint8(e)))
}

// unknown extracts the underlying ignorance set.  Callers must have
// established that e is a multi-bit mask.
func (e Extended) unknown() Unknown {
	return Unknown(e)
}

// And computes conjunction, collapsing to a known result whenever every
// combination of candidates agrees.
func (e Extended) And(other Extended) Extended {
	switch {
	case !e.IsUnknown() && !other.IsUnknown():
		return Known(e.known().And(other.known()))
	case !e.IsUnknown():
		return andKnownUnknown(e.known(), other.unknown())
	case !other.IsUnknown():
		return andKnownUnknown(other.known(), e.unknown())
	default:
		return e.unknown().And(other.unknown())
	}
}

// Or computes disjunction, collapsing to a known result whenever every
// combination of candidates agrees.
func (e Extended) Or(other Extended) Extended {
	switch {
	case !e.IsUnknown() && !other.IsUnknown():
		return Known(e.known().Or(other.known()))
	case !e.IsUnknown():
		return orKnownUnknown(e.known(), other.unknown())
	case !other.IsUnknown():
		return orKnownUnknown(other.known(), e.unknown())
	default:
		return e.unknown().Or(other.unknown())
	}
}

// Not computes negation pointwise across the remaining candidates.
func (e Extended) Not() Extended {
	if e.IsUnknown() {
		return Uncertain(e.unknown().Not())
	}
	//
	return Known(e.known().Not())
}

// Superposition merges the evidence carried by both operands.
func (e Extended) Superposition(other Extended) Extended {
	switch {
	case !e.IsUnknown() && !other.IsUnknown():
		return Known(e.known().Superposition(other.known()))
	case !e.IsUnknown():
		return superpositionKnownUnknown(e.known(), other.unknown())
	case !other.IsUnknown():
		return superpositionKnownUnknown(other.known(), e.unknown())
	default:
		return e.unknown().Superposition(other.unknown())
	}
}

// Annihilation keeps only the evidence both operands agree on.
func (e Extended) Annihilation(other Extended) Extended {
	switch {
	case !e.IsUnknown() && !other.IsUnknown():
		return Known(e.known().Annihilation(other.known()))
	case !e.IsUnknown():
		return annihilationKnownUnknown(e.known(), other.unknown())
	case !other.IsUnknown():
		return annihilationKnownUnknown(other.known(), e.unknown())
	default:
		return e.unknown().Annihilation(other.unknown())
	}
}

// Eq compares two extended values.  Two known values compare exactly; as soon
// as either side carries ignorance the outcome can only be a forced
// disequality (the candidate sets cannot overlap) or the classical unknown.
func (e Extended) Eq(other Extended) Extended {
	switch {
	case !e.IsUnknown() && !other.IsUnknown():
		return Known(e.known().Eq(other.known()))
	case !e.IsUnknown():
		return eqKnownUnknown(e.known(), other.unknown())
	case !other.IsUnknown():
		return eqKnownUnknown(other.known(), e.unknown())
	default:
		return e.unknown().Eq(other.unknown())
	}
}

// CouldBeNeither reports whether Neither remains a candidate.
func (e Extended) CouldBeNeither() bool {
	return e&(1<<Neither) != 0
}

// CouldBeFalse reports whether False remains a candidate.
func (e Extended) CouldBeFalse() bool {
	return e&(1<<False) != 0
}

// CouldBeTrue reports whether True remains a candidate.
func (e Extended) CouldBeTrue() bool {
	return e&(1<<True) != 0
}

// CouldBeBoth reports whether Both remains a candidate.
func (e Extended) CouldBeBoth() bool {
	return e&(1<<Both) != 0
}

func (e Extended) String() string {
	if e.IsUnknown() {
		return maskString(uint8(e))
	}
	//
	return e.known().String()
}

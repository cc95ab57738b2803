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

import (
	"errors"
	"fmt"
)

// ErrUnrepresentable is returned by the fallible conversions below when the
// source value has no counterpart in the target domain.
var ErrUnrepresentable = errors.New("value not representable in target domain")

// BelnapianFromBool embeds a classical boolean into the four-valued domain.
func BelnapianFromBool(b bool) Belnapian {
	if b {
		return True
	}
	//
	return False
}

// TernaryFromBool embeds a classical boolean into the three-valued domain.
func TernaryFromBool(b bool) Ternary {
	if b {
		return TernaryTrue
	}
	//
	return TernaryFalse
}

// ExtendedFromBool embeds a classical boolean into the extended domain.
func ExtendedFromBool(b bool) Extended {
	return Known(BelnapianFromBool(b))
}

// ExtendedFromTernary embeds a three-valued truth value into the extended
// domain.  The ternary unknown becomes the ignorance set holding False and
// True, since those are the only candidates it stands for.
func ExtendedFromTernary(t Ternary) Extended {
	if t == TernaryUnknown {
		return Uncertain(FT)
	}
	//
	return Known(t.belnapian())
}

// Bool recovers a classical boolean.  Only False and True have one.
func (b Belnapian) Bool() (bool, error) {
	switch b {
	case False:
		return false, nil
	case True:
		return true, nil
	}
	//
	return false, fmt.Errorf("%w: %s has no boolean counterpart", ErrUnrepresentable, b)
}

// Ternary narrows into the three-valued domain.  Neither and Both have no
// counterpart there.
func (b Belnapian) Ternary() (Ternary, error) {
	switch b {
	case False:
		return TernaryFalse, nil
	case True:
		return TernaryTrue, nil
	}
	//
	return TernaryUnknown, fmt.Errorf("%w: %s has no ternary counterpart", ErrUnrepresentable, b)
}

// PowerSet widens a known value into the singleton subset holding it.
func (b Belnapian) PowerSet() PowerSet {
	return Singleton(b)
}

// Bool recovers a classical boolean.  The ternary unknown has none.
func (t Ternary) Bool() (bool, error) {
	switch t {
	case TernaryFalse:
		return false, nil
	case TernaryTrue:
		return true, nil
	}
	//
	return false, fmt.Errorf("%w: %s has no boolean counterpart", ErrUnrepresentable, t)
}

// Belnapian narrows into the four-valued domain.  The ternary unknown does
// not name a single Belnapian value, hence fails; use ExtendedFromTernary to
// keep it as an ignorance set instead.
func (t Ternary) Belnapian() (Belnapian, error) {
	if t == TernaryUnknown {
		return Neither, fmt.Errorf("%w: %s names no single value", ErrUnrepresentable, t)
	}
	//
	return t.belnapian(), nil
}

// Unknown converts the ternary unknown into the ignorance set it stands for.
// The determined values are not ignorance and fail.
func (t Ternary) Unknown() (Unknown, error) {
	if t == TernaryUnknown {
		return FT, nil
	}
	//
	return FT, fmt.Errorf("%w: %s carries no ignorance", ErrUnrepresentable, t)
}

// belnapian maps the two determined ternary values onto their Belnapian
// counterparts.  Callers must have ruled out TernaryUnknown.
func (t Ternary) belnapian() Belnapian {
	if t == TernaryTrue {
		return True
	}
	//
	return False
}

// Ternary narrows an ignorance set into the three-valued domain.  Only the
// set holding exactly False and True corresponds to the ternary unknown.
func (u Unknown) Ternary() (Ternary, error) {
	if u == FT {
		return TernaryUnknown, nil
	}
	//
	return TernaryUnknown, fmt.Errorf("%w: %s has no ternary counterpart", ErrUnrepresentable, u)
}

// PowerSet widens an ignorance set into the subset of values it may stand
// for.  This is total, since every ignorance set is a subset.
func (u Unknown) PowerSet() PowerSet {
	return PowerSet(u)
}

// Extended widens an ignorance set into the extended domain.
func (u Unknown) Extended() Extended {
	return Uncertain(u)
}

// Unknown narrows a subset back into an ignorance set.  The empty set and
// the singletons carry no ignorance and fail.
func (p PowerSet) Unknown() (Unknown, error) {
	if !p.IsUnknown() {
		return NFTB, fmt.Errorf("%w: %s carries no ignorance", ErrUnrepresentable, p)
	}
	//
	return Unknown(p), nil
}

// Extended narrows a subset into the extended domain.  Only the empty set
// fails, since it names no candidate at all.
func (p PowerSet) Extended() (Extended, error) {
	if p.IsEmpty() {
		return Known(Neither), fmt.Errorf("%w: empty set names no candidate", ErrUnrepresentable)
	}
	//
	return Extended(p), nil
}

// Bool recovers a classical boolean from an extended value.  Only the known
// False and True have one.
func (e Extended) Bool() (bool, error) {
	if !e.IsUnknown() {
		return e.known().Bool()
	}
	//
	return false, fmt.Errorf("%w: %s has no boolean counterpart", ErrUnrepresentable, e)
}

// Ternary narrows an extended value into the three-valued domain.  The known
// False and True map directly, and the ignorance set holding exactly False
// and True maps onto the ternary unknown.  Everything else fails.
func (e Extended) Ternary() (Ternary, error) {
	if e.IsUnknown() {
		return e.unknown().Ternary()
	}
	//
	return e.known().Ternary()
}

// Known extracts the underlying value from a fully determined extended
// value, failing if any ignorance remains.
func (e Extended) Known() (Belnapian, error) {
	if e.IsUnknown() {
		return Neither, fmt.Errorf("%w: %s is not fully determined", ErrUnrepresentable, e)
	}
	//
	return e.known(), nil
}

// Uncertain extracts the underlying ignorance set from an extended value,
// failing if the value is fully determined.
func (e Extended) Uncertain() (Unknown, error) {
	if !e.IsUnknown() {
		return NFTB, fmt.Errorf("%w: %s carries no ignorance", ErrUnrepresentable, e)
	}
	//
	return e.unknown(), nil
}

// PowerSet widens an extended value into the subset of values it may stand
// for.
func (e Extended) PowerSet() PowerSet {
	return PowerSet(e)
}

// ParseBelnapian parses a Belnapian value from its long name or its single
// letter abbreviation.
func ParseBelnapian(s string) (Belnapian, error) {
	switch s {
	case "Neither", "N":
		return Neither, nil
	case "False", "F":
		return False, nil
	case "True", "T":
		return True, nil
	case "Both", "B":
		return Both, nil
	}
	//
	return Neither, fmt.Errorf("%w: unknown truth value %q", ErrUnrepresentable, s)
}

// ParseExtended parses an extended value.  It accepts the long names and
// single letters of the known values, as well as membership codes listing
// candidate letters in N, F, T, B order with or without underscore padding
// (e.g. "NF__", "NF", "_FT_", "FT").
func ParseExtended(s string) (Extended, error) {
	if b, err := ParseBelnapian(s); err == nil {
		return Known(b), nil
	}
	// Otherwise, interpret as a membership code.
	var mask Extended
	//
	for _, c := range s {
		switch c {
		case 'N':
			mask |= 1 << Neither
		case 'F':
			mask |= 1 << False
		case 'T':
			mask |= 1 << True
		case 'B':
			mask |= 1 << Both
		case '_':
			// padding
		default:
			return 0, fmt.Errorf("%w: unknown truth value %q", ErrUnrepresentable, s)
		}
	}
	//
	if mask == 0 {
		return 0, fmt.Errorf("%w: %q names no candidate", ErrUnrepresentable, s)
	}
	//
	return mask, nil
}

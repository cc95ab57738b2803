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

// Unknown represents the eleven possible ways in which we can be ignorant
// about the truth value of a proposition.  Each value denotes a subset of
// {Neither, False, True, Both} of size two or more: the power set of the four
// truth values has sixteen elements, and removing the empty set and the four
// singletons (which are Belnapian values themselves) leaves eleven.
//
// An Unknown is encoded as a membership bitmask, with one bit per Belnapian
// value in declaration order.  Only the eleven constants below are legal
// inhabitants; combinators never produce anything else.
type Unknown uint8

const (
	// NF could be Neither or False.
	NF Unknown = 1<<Neither | 1<<False
	// NT could be Neither or True.
	NT Unknown = 1<<Neither | 1<<True
	// FT could be False or True.  This is the classical "unknown" of 3-valued
	// logic, and the maximally uncertain outcome of an equality test.
	FT Unknown = 1<<False | 1<<True
	// NFT could be Neither, False or True.
	NFT Unknown = 1<<Neither | 1<<False | 1<<True
	// NB could be Neither or Both.
	NB Unknown = 1<<Neither | 1<<Both
	// FB could be False or Both.
	FB Unknown = 1<<False | 1<<Both
	// NFB could be Neither, False or Both.
	NFB Unknown = 1<<Neither | 1<<False | 1<<Both
	// TB could be True or Both.
	TB Unknown = 1<<True | 1<<Both
	// NTB could be Neither, True or Both.
	NTB Unknown = 1<<Neither | 1<<True | 1<<Both
	// FTB could be False, True or Both.
	FTB Unknown = 1<<False | 1<<True | 1<<Both
	// NFTB could be any of the four truth values.
	NFTB Unknown = 1<<Neither | 1<<False | 1<<True | 1<<Both
)

// And returns the conjunction of two ignorance sets.  The result is a known
// value when every pair of witnesses forces the same output, and otherwise
// the tightest set containing every possible output.
func (u Unknown) And(other Unknown) Extended {
	return unknownAndTable[unknownOrd[u]][unknownOrd[other]]
}

// Or returns the disjunction of two ignorance sets, collapsing to a known
// value whenever the algebra forces one.
func (u Unknown) Or(other Unknown) Extended {
	return unknownOrTable[unknownOrd[u]][unknownOrd[other]]
}

// Superposition joins two ignorance sets towards Both, pointwise over their
// members.
func (u Unknown) Superposition(other Unknown) Extended {
	return unknownSuperpositionTable[unknownOrd[u]][unknownOrd[other]]
}

// Annihilation meets two ignorance sets towards Neither, pointwise over their
// members.
func (u Unknown) Annihilation(other Unknown) Extended {
	return unknownAnnihilationTable[unknownOrd[u]][unknownOrd[other]]
}

// Not returns the negation of this ignorance set.  Negation is a fixed
// involutive permutation of the eleven sets, obtained by negating each
// member: sets symmetric in False/True are fixed points, whilst the rest swap
// with their mirror image.
func (u Unknown) Not() Unknown {
	switch u {
	case NFTB:
		return NFTB
	case NFT:
		return NFT
	case NFB:
		return NTB
	case NTB:
		return NFB
	case FTB:
		return FTB
	case NF:
		return NT
	case NT:
		return NF
	case NB:
		return NB
	case FT:
		return FT
	case FB:
		return TB
	default:
		// TB
		return FB
	}
}

// Eq compares two ignorance sets.  Disequality is forced only when the two
// sets cannot share a witness; in every other case the outcome remains the
// maximally uncertain FT ("possibly equal, possibly not").  Note that
// equality is never forced, since each set keeps at least two alternatives.
func (u Unknown) Eq(other Unknown) Extended {
	// Several of the rules below overlap on their left operand, so earlier
	// rules take priority.  Do not reorder them.
	switch {
	case u == NFTB, u == NFT, u == NFB, u == NTB, u == FTB:
		return Uncertain(FT)
	case u == NF && other == TB:
		return Known(False)
	case u == NF:
		return Uncertain(FT)
	case u == NT && other == FB:
		return Known(False)
	case u == NT:
		return Uncertain(FT)
	case u == NB && other == FT:
		return Known(False)
	case u == NB:
		return Uncertain(FT)
	case u == FT && other == NB:
		return Known(False)
	case u == FT:
		return Uncertain(FT)
	case u == FB && other == NT:
		return Known(False)
	case u == FB:
		return Uncertain(FT)
	case u == TB && other == NF:
		return Known(False)
	default:
		// TB
		return Uncertain(FT)
	}
}

// CouldBeNeither reports whether Neither is a member of this set.
func (u Unknown) CouldBeNeither() bool {
	return u&(1<<Neither) != 0
}

// CouldBeFalse reports whether False is a member of this set.
func (u Unknown) CouldBeFalse() bool {
	return u&(1<<False) != 0
}

// CouldBeTrue reports whether True is a member of this set.
func (u Unknown) CouldBeTrue() bool {
	return u&(1<<True) != 0
}

// CouldBeBoth reports whether Both is a member of this set.
func (u Unknown) CouldBeBoth() bool {
	return u&(1<<Both) != 0
}

// IsUnknown always holds for an ignorance set, by construction.
func (u Unknown) IsUnknown() bool {
	return true
}

// String returns the four-character membership code of this set, e.g. "NF__"
// for the set {Neither, False}.
func (u Unknown) String() string {
	return maskString(uint8(u))
}

// maskString renders a membership bitmask in the positional NFTB notation
// shared by Unknown, PowerSet and Extended.
func maskString(mask uint8) string {
	var (
		letters = [4]byte{'N', 'F', 'T', 'B'}
		code    [4]byte
	)
	//
	for i := range code {
		if mask&(1<<i) != 0 {
			code[i] = letters[i]
		} else {
			code[i] = '_'
		}
	}
	//
	return string(code[:])
}

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

// This file holds the combinators mixing one known truth value with one
// ignorance set.  These exist as separate, denser tables because a known
// operand can force full collapse (e.g. False ∧ anything = False) even though
// the other side is uncertain; treating the known value as a singleton set
// and reusing the pairwise tables would lose those collapses.

// Column order for all four tables:
// NF, NT, FT, NFT, NB, FB, NFB, TB, NTB, FTB, NFTB.
// Row order is Neither, False, True, Both.
var knownAndTable = [4][11]Extended{
	{uNF, kN, uNF, uNF, uNF, kF, uNF, uNF, uNF, uNF, uNF},
	{kF, kF, kF, kF, kF, kF, kF, kF, kF, kF, kF},
	{uNF, uNT, uFT, uNFT, uNB, uFB, uNFB, uTB, uNTB, uFTB, uNFTB},
	{kF, uFB, uFB, uFB, uFB, uFB, uFB, kB, uFB, uFB, uFB},
}

var knownOrTable = [4][11]Extended{
	{kN, uNT, uNT, uNT, uNT, uNT, uNT, kT, uNT, uNT, uNT},
	{uNF, uNT, uFT, uNFT, uNB, uFB, uNFB, uTB, uNTB, uFTB, uNFTB},
	{kT, kT, kT, kT, kT, kT, kT, kT, kT, kT, kT},
	{uTB, kT, uTB, uTB, uTB, kB, uTB, uTB, uTB, uTB, uTB},
}

var knownSuperpositionTable = [4][11]Extended{
	{uNF, uNT, uFT, uNFT, uNB, uFB, uNFB, uTB, uNTB, uFTB, uNFTB},
	{kF, uFB, uFB, uFB, uFB, uFB, uFB, kB, uFB, uFB, uFB},
	{uTB, kT, uTB, uTB, uTB, kB, uTB, uTB, uTB, uTB, uTB},
	{kB, kB, kB, kB, kB, kB, kB, kB, kB, kB, kB},
}

var knownAnnihilationTable = [4][11]Extended{
	{kN, kN, kN, kN, kN, kN, kN, kN, kN, kN, kN},
	{uNF, kN, uNF, uNF, uNF, kF, uNF, uNF, uNF, uNF, uNF},
	{kN, uNT, uNT, uNT, uNT, uNT, uNT, kT, uNT, uNT, uNT},
	{uNF, uNT, uFT, uNFT, uNB, uFB, uNFB, uTB, uNTB, uFTB, uNFTB},
}

func andKnownUnknown(a Belnapian, b Unknown) Extended {
	return knownAndTable[a][unknownOrd[b]]
}

func orKnownUnknown(a Belnapian, b Unknown) Extended {
	return knownOrTable[a][unknownOrd[b]]
}

func superpositionKnownUnknown(a Belnapian, b Unknown) Extended {
	return knownSuperpositionTable[a][unknownOrd[b]]
}

func annihilationKnownUnknown(a Belnapian, b Unknown) Extended {
	return knownAnnihilationTable[a][unknownOrd[b]]
}

// eqKnownUnknown compares a known value with an ignorance set.  The set keeps
// at least two alternatives, so equality is never forced; disequality is
// forced exactly when the set cannot contain the known value.  Unlike the
// other combinators this one is directional, and the extended dispatch layer
// must try both operand orders explicitly.
func eqKnownUnknown(a Belnapian, b Unknown) Extended {
	if b&(1<<a) == 0 {
		return Known(False)
	}
	//
	return Uncertain(FT)
}

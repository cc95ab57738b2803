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

// This file holds the precomputed pairwise tables for ignorance sets.  Every
// entry is the tightest result of applying the corresponding Belnapian
// operation across all pairs of witnesses drawn from the row and column sets,
// collapsing to a known value when that union is a singleton.  The tables are
// static data rather than something derived at call time; the tests validate
// every entry against the set-theoretic definition.

// Shorthand for the table literals below: kX is a collapsed known value,
// uXY.. is an ignorance set.
const (
	kN = Extended(1 << Neither)
	kF = Extended(1 << False)
	kT = Extended(1 << True)
	kB = Extended(1 << Both)
	//
	uNF   = Extended(NF)
	uNT   = Extended(NT)
	uFT   = Extended(FT)
	uNFT  = Extended(NFT)
	uNB   = Extended(NB)
	uFB   = Extended(FB)
	uNFB  = Extended(NFB)
	uTB   = Extended(TB)
	uNTB  = Extended(NTB)
	uFTB  = Extended(FTB)
	uNFTB = Extended(NFTB)
)

// unknownOrd maps the membership bitmask of an ignorance set to its row (or
// column) ordinal within the pairwise tables.
var unknownOrd = [16]uint8{
	NF: 0, NT: 1, FT: 2, NFT: 3, NB: 4, FB: 5,
	NFB: 6, TB: 7, NTB: 8, FTB: 9, NFTB: 10,
}

// Row and column order for all four tables:
// NF, NT, FT, NFT, NB, FB, NFB, TB, NTB, FTB, NFTB.
var unknownAndTable = [11][11]Extended{
	{uNF, uNF, uNF, uNF, uNF, kF, uNF, uNF, uNF, uNF, uNF},
	{uNF, uNT, uNFT, uNFT, uNFB, uFB, uNFB, uNFTB, uNFTB, uNFTB, uNFTB},
	{uNF, uNFT, uFT, uNFT, uNFB, uFB, uNFB, uFTB, uNFTB, uFTB, uNFTB},
	{uNF, uNFT, uNFT, uNFT, uNFB, uFB, uNFB, uNFTB, uNFTB, uNFTB, uNFTB},
	{uNF, uNFB, uNFB, uNFB, uNFB, uFB, uNFB, uNFB, uNFB, uNFB, uNFB},
	{kF, uFB, uFB, uFB, uFB, uFB, uFB, uFB, uFB, uFB, uFB},
	{uNF, uNFB, uNFB, uNFB, uNFB, uFB, uNFB, uNFB, uNFB, uNFB, uNFB},
	{uNF, uNFTB, uFTB, uNFTB, uNFB, uFB, uNFB, uTB, uNFTB, uFTB, uNFTB},
	{uNF, uNFTB, uNFTB, uNFTB, uNFB, uFB, uNFB, uNFTB, uNFTB, uNFTB, uNFTB},
	{uNF, uNFTB, uFTB, uNFTB, uNFB, uFB, uNFB, uFTB, uNFTB, uFTB, uNFTB},
	{uNF, uNFTB, uNFTB, uNFTB, uNFB, uFB, uNFB, uNFTB, uNFTB, uNFTB, uNFTB},
}

var unknownOrTable = [11][11]Extended{
	{uNF, uNT, uNFT, uNFT, uNTB, uNFTB, uNFTB, uTB, uNTB, uNFTB, uNFTB},
	{uNT, uNT, uNT, uNT, uNT, uNT, uNT, kT, uNT, uNT, uNT},
	{uNFT, uNT, uFT, uNFT, uNTB, uFTB, uNFTB, uTB, uNTB, uFTB, uNFTB},
	{uNFT, uNT, uNFT, uNFT, uNTB, uNFTB, uNFTB, uTB, uNTB, uNFTB, uNFTB},
	{uNTB, uNT, uNTB, uNTB, uNTB, uNTB, uNTB, uTB, uNTB, uNTB, uNTB},
	{uNFTB, uNT, uFTB, uNFTB, uNTB, uFB, uNFTB, uTB, uNTB, uFTB, uNFTB},
	{uNFTB, uNT, uNFTB, uNFTB, uNTB, uNFTB, uNFTB, uTB, uNTB, uNFTB, uNFTB},
	{uTB, kT, uTB, uTB, uTB, uTB, uTB, uTB, uTB, uTB, uTB},
	{uNTB, uNT, uNTB, uNTB, uNTB, uNTB, uNTB, uTB, uNTB, uNTB, uNTB},
	{uNFTB, uNT, uFTB, uNFTB, uNTB, uFTB, uNFTB, uTB, uNTB, uFTB, uNFTB},
	{uNFTB, uNT, uNFTB, uNFTB, uNTB, uNFTB, uNFTB, uTB, uNTB, uNFTB, uNFTB},
}

var unknownSuperpositionTable = [11][11]Extended{
	{uNF, uNFTB, uFTB, uNFTB, uNFB, uFB, uNFB, uTB, uNFTB, uFTB, uNFTB},
	{uNFTB, uNT, uFTB, uNFTB, uNTB, uFB, uNFTB, uTB, uNTB, uFTB, uNFTB},
	{uFTB, uFTB, uFTB, uFTB, uFTB, uFB, uFTB, uTB, uFTB, uFTB, uFTB},
	{uNFTB, uNFTB, uFTB, uNFTB, uNFTB, uFB, uNFTB, uTB, uNFTB, uFTB, uNFTB},
	{uNFB, uNTB, uFTB, uNFTB, uNB, uFB, uNFB, uTB, uNTB, uFTB, uNFTB},
	{uFB, uFB, uFB, uFB, uFB, uFB, uFB, kB, uFB, uFB, uFB},
	{uNFB, uNFTB, uFTB, uNFTB, uNFB, uFB, uNFB, uTB, uNFTB, uFTB, uNFTB},
	{uTB, uTB, uTB, uTB, uTB, kB, uTB, uTB, uTB, uTB, uTB},
	{uNFTB, uNTB, uFTB, uNFTB, uNTB, uFB, uNFTB, uTB, uNTB, uFTB, uNFTB},
	{uFTB, uFTB, uFTB, uFTB, uFTB, uFB, uFTB, uTB, uFTB, uFTB, uFTB},
	{uNFTB, uNFTB, uFTB, uNFTB, uNFTB, uFB, uNFTB, uTB, uNFTB, uFTB, uNFTB},
}

var unknownAnnihilationTable = [11][11]Extended{
	{uNF, kN, uNF, uNF, uNF, uNF, uNF, uNF, uNF, uNF, uNF},
	{kN, uNT, uNT, uNT, uNT, uNT, uNT, uNT, uNT, uNT, uNT},
	{uNF, uNT, uNFT, uNFT, uNFT, uNFT, uNFT, uNFT, uNFT, uNFT, uNFT},
	{uNF, uNT, uNFT, uNFT, uNFT, uNFT, uNFT, uNFT, uNFT, uNFT, uNFT},
	{uNF, uNT, uNFT, uNFT, uNB, uNFB, uNFB, uNTB, uNTB, uNFTB, uNFTB},
	{uNF, uNT, uNFT, uNFT, uNFB, uFB, uNFB, uNFTB, uNFTB, uNFTB, uNFTB},
	{uNF, uNT, uNFT, uNFT, uNFB, uNFB, uNFB, uNFTB, uNFTB, uNFTB, uNFTB},
	{uNF, uNT, uNFT, uNFT, uNTB, uNFTB, uNFTB, uTB, uNTB, uNFTB, uNFTB},
	{uNF, uNT, uNFT, uNFT, uNTB, uNFTB, uNFTB, uNTB, uNTB, uNFTB, uNFTB},
	{uNF, uNT, uNFT, uNFT, uNFTB, uNFTB, uNFTB, uNFTB, uNFTB, uNFTB, uNFTB},
	{uNF, uNT, uNFT, uNFT, uNFTB, uNFTB, uNFTB, uNFTB, uNFTB, uNFTB, uNFTB},
}

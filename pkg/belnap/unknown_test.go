package belnap

import "testing"

// Negation

func Test_Unknown_01(t *testing.T) {
	// Sets symmetric in False/True are fixed points of negation
	for _, u := range []Unknown{NFTB, NFT, FTB, NB, FT} {
		checkUnknown(t, u.Not(), u)
	}
}

func Test_Unknown_02(t *testing.T) {
	checkUnknown(t, NF.Not(), NT)
	checkUnknown(t, NT.Not(), NF)
	checkUnknown(t, FB.Not(), TB)
	checkUnknown(t, TB.Not(), FB)
	checkUnknown(t, NFB.Not(), NTB)
	checkUnknown(t, NTB.Not(), NFB)
}

func Test_Unknown_03(t *testing.T) {
	// Negation is an involution
	for _, u := range UNKNOWNS {
		checkUnknown(t, u.Not().Not(), u)
	}
}

func Test_Unknown_04(t *testing.T) {
	// Negation is the pointwise negation of the members
	for _, u := range UNKNOWNS {
		var expected Unknown
		//
		for _, v := range BELNAPIANS {
			if u&(1<<v) != 0 {
				expected |= 1 << v.Not()
			}
		}
		//
		checkUnknown(t, u.Not(), expected)
	}
}

// Equality

func Test_Unknown_10(t *testing.T) {
	// Disjoint sets are forcibly unequal
	checkExtended(t, NF.Eq(TB), Known(False))
	checkExtended(t, TB.Eq(NF), Known(False))
	checkExtended(t, NT.Eq(FB), Known(False))
	checkExtended(t, FB.Eq(NT), Known(False))
	checkExtended(t, NB.Eq(FT), Known(False))
	checkExtended(t, FT.Eq(NB), Known(False))
}

func Test_Unknown_11(t *testing.T) {
	// Sets of three or more members always overlap
	for _, u := range []Unknown{NFT, NFB, NTB, FTB, NFTB} {
		for _, v := range UNKNOWNS {
			checkExtended(t, u.Eq(v), Uncertain(FT))
			checkExtended(t, v.Eq(u), Uncertain(FT))
		}
	}
}

func Test_Unknown_12(t *testing.T) {
	// Equality is never forced, even between identical sets
	for _, u := range UNKNOWNS {
		checkExtended(t, u.Eq(u), Uncertain(FT))
	}
}

// Membership

func Test_Unknown_20(t *testing.T) {
	checkMembership(t, NF, true, true, false, false)
	checkMembership(t, NT, true, false, true, false)
	checkMembership(t, FT, false, true, true, false)
	checkMembership(t, NFT, true, true, true, false)
	checkMembership(t, NB, true, false, false, true)
	checkMembership(t, FB, false, true, false, true)
	checkMembership(t, NFB, true, true, false, true)
	checkMembership(t, TB, false, false, true, true)
	checkMembership(t, NTB, true, false, true, true)
	checkMembership(t, FTB, false, true, true, true)
	checkMembership(t, NFTB, true, true, true, true)
}

func Test_Unknown_21(t *testing.T) {
	for _, u := range UNKNOWNS {
		if !u.IsUnknown() {
			t.Errorf("%s must be unknown", u)
		}
	}
}

// Printing

func Test_Unknown_30(t *testing.T) {
	checkString(t, NF.String(), "NF__")
	checkString(t, NT.String(), "N_T_")
	checkString(t, FT.String(), "_FT_")
	checkString(t, NFT.String(), "NFT_")
	checkString(t, NB.String(), "N__B")
	checkString(t, FB.String(), "_F_B")
	checkString(t, NFB.String(), "NF_B")
	checkString(t, TB.String(), "__TB")
	checkString(t, NTB.String(), "N_TB")
	checkString(t, FTB.String(), "_FTB")
	checkString(t, NFTB.String(), "NFTB")
}

// ============================================================================
// Helpers
// ============================================================================

// UNKNOWNS lists all eleven ignorance sets in table order.
var UNKNOWNS = []Unknown{NF, NT, FT, NFT, NB, FB, NFB, TB, NTB, FTB, NFTB}

func checkUnknown(t *testing.T, got Unknown, expected Unknown) {
	t.Helper()
	//
	if got != expected {
		t.Errorf("got %s, expected %s", got, expected)
	}
}

func checkMembership(t *testing.T, u Unknown, neither bool, flse bool, tru bool, both bool) {
	t.Helper()
	//
	if u.CouldBeNeither() != neither {
		t.Errorf("%s: CouldBeNeither() != %v", u, neither)
	}
	//
	if u.CouldBeFalse() != flse {
		t.Errorf("%s: CouldBeFalse() != %v", u, flse)
	}
	//
	if u.CouldBeTrue() != tru {
		t.Errorf("%s: CouldBeTrue() != %v", u, tru)
	}
	//
	if u.CouldBeBoth() != both {
		t.Errorf("%s: CouldBeBoth() != %v", u, both)
	}
}

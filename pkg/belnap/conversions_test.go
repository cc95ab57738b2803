package belnap

import (
	"errors"
	"testing"
)

// Boolean embeddings

func Test_Conversion_01(t *testing.T) {
	checkOp(t, BelnapianFromBool(true), True)
	checkOp(t, BelnapianFromBool(false), False)
	checkTernary(t, TernaryFromBool(true), TernaryTrue)
	checkTernary(t, TernaryFromBool(false), TernaryFalse)
	checkExtended(t, ExtendedFromBool(true), Known(True))
	checkExtended(t, ExtendedFromBool(false), Known(False))
}

func Test_Conversion_02(t *testing.T) {
	// Round trip booleans through every domain
	for _, b := range []bool{false, true} {
		checkBoolOk(t, BelnapianFromBool(b).Bool, b)
		checkBoolOk(t, TernaryFromBool(b).Bool, b)
		checkBoolOk(t, ExtendedFromBool(b).Bool, b)
	}
}

func Test_Conversion_03(t *testing.T) {
	checkFails(t, func() error { _, err := Neither.Bool(); return err })
	checkFails(t, func() error { _, err := Both.Bool(); return err })
	checkFails(t, func() error { _, err := TernaryUnknown.Bool(); return err })
	checkFails(t, func() error { _, err := Uncertain(FT).Bool(); return err })
}

// Ternary embeddings

func Test_Conversion_10(t *testing.T) {
	checkExtended(t, ExtendedFromTernary(TernaryFalse), Known(False))
	checkExtended(t, ExtendedFromTernary(TernaryTrue), Known(True))
	checkExtended(t, ExtendedFromTernary(TernaryUnknown), Uncertain(FT))
}

func Test_Conversion_11(t *testing.T) {
	if v, err := False.Ternary(); err != nil || v != TernaryFalse {
		t.Errorf("got (%s, %v)", v, err)
	}
	//
	if v, err := True.Ternary(); err != nil || v != TernaryTrue {
		t.Errorf("got (%s, %v)", v, err)
	}
	//
	checkFails(t, func() error { _, err := Neither.Ternary(); return err })
	checkFails(t, func() error { _, err := Both.Ternary(); return err })
}

func Test_Conversion_12(t *testing.T) {
	if v, err := TernaryTrue.Belnapian(); err != nil || v != True {
		t.Errorf("got (%s, %v)", v, err)
	}
	//
	if v, err := TernaryFalse.Belnapian(); err != nil || v != False {
		t.Errorf("got (%s, %v)", v, err)
	}
	//
	checkFails(t, func() error { _, err := TernaryUnknown.Belnapian(); return err })
}

func Test_Conversion_13(t *testing.T) {
	// The ternary unknown and FT stand for each other
	if u, err := TernaryUnknown.Unknown(); err != nil || u != FT {
		t.Errorf("got (%s, %v)", u, err)
	}
	//
	if v, err := FT.Ternary(); err != nil || v != TernaryUnknown {
		t.Errorf("got (%s, %v)", v, err)
	}
	//
	checkFails(t, func() error { _, err := TernaryTrue.Unknown(); return err })
	//
	for _, u := range UNKNOWNS {
		if u != FT {
			checkFails(t, func() error { _, err := u.Ternary(); return err })
		}
	}
}

func Test_Conversion_14(t *testing.T) {
	if v, err := Known(True).Ternary(); err != nil || v != TernaryTrue {
		t.Errorf("got (%s, %v)", v, err)
	}
	//
	if v, err := Uncertain(FT).Ternary(); err != nil || v != TernaryUnknown {
		t.Errorf("got (%s, %v)", v, err)
	}
	//
	checkFails(t, func() error { _, err := Known(Both).Ternary(); return err })
	checkFails(t, func() error { _, err := Uncertain(NFTB).Ternary(); return err })
}

// Extended narrowing

func Test_Conversion_20(t *testing.T) {
	for _, v := range BELNAPIANS {
		if got, err := Known(v).Known(); err != nil || got != v {
			t.Errorf("got (%s, %v)", got, err)
		}
		//
		checkFails(t, func() error { _, err := Known(v).Uncertain(); return err })
	}
}

func Test_Conversion_21(t *testing.T) {
	for _, u := range UNKNOWNS {
		if got, err := Uncertain(u).Uncertain(); err != nil || got != u {
			t.Errorf("got (%s, %v)", got, err)
		}
		//
		checkFails(t, func() error { _, err := Uncertain(u).Known(); return err })
	}
}

// Power set

func Test_Conversion_30(t *testing.T) {
	for _, v := range BELNAPIANS {
		p := v.PowerSet()
		//
		if !p.Contains(v) || p.IsUnknown() || p.IsEmpty() {
			t.Errorf("singleton %s misbehaves", p)
		}
	}
}

func Test_Conversion_31(t *testing.T) {
	// Unknown -> PowerSet -> Unknown round trips
	for _, u := range UNKNOWNS {
		p := u.PowerSet()
		//
		if got, err := p.Unknown(); err != nil || got != u {
			t.Errorf("got (%s, %v)", got, err)
		}
	}
}

func Test_Conversion_32(t *testing.T) {
	checkFails(t, func() error { _, err := EmptySet.Unknown(); return err })
	checkFails(t, func() error { _, err := Singleton(True).Unknown(); return err })
	checkFails(t, func() error { _, err := EmptySet.Extended(); return err })
}

func Test_Conversion_33(t *testing.T) {
	// Extended -> PowerSet -> Extended round trips
	for _, e := range EXTENDEDS {
		p := e.PowerSet()
		//
		if got, err := p.Extended(); err != nil || got != e {
			t.Errorf("got (%s, %v)", got, err)
		}
	}
}

func Test_Conversion_34(t *testing.T) {
	var (
		p = Singleton(True).Union(Singleton(Both))
		q = Singleton(True).Union(Singleton(False))
	)
	//
	if u, err := p.Unknown(); err != nil || u != TB {
		t.Errorf("got (%s, %v)", u, err)
	}
	//
	if p.Intersection(q) != Singleton(True) {
		t.Errorf("got %s", p.Intersection(q))
	}
	//
	if !p.Intersection(EmptySet).IsEmpty() {
		t.Errorf("got %s", p.Intersection(EmptySet))
	}
}

func Test_Conversion_35(t *testing.T) {
	checkString(t, EmptySet.String(), "____")
	checkString(t, Singleton(Neither).String(), "N___")
	checkString(t, FullSet.String(), "NFTB")
}

// Parsing

func Test_Conversion_40(t *testing.T) {
	// Long names and single letters parse
	for _, v := range BELNAPIANS {
		if got, err := ParseBelnapian(v.String()); err != nil || got != v {
			t.Errorf("got (%s, %v)", got, err)
		}
	}
	//
	if got, err := ParseBelnapian("N"); err != nil || got != Neither {
		t.Errorf("got (%s, %v)", got, err)
	}
	//
	checkFails(t, func() error { _, err := ParseBelnapian("Maybe"); return err })
	checkFails(t, func() error { _, err := ParseBelnapian(""); return err })
}

func Test_Conversion_41(t *testing.T) {
	// String() output round trips for every extended value
	for _, e := range EXTENDEDS {
		if got, err := ParseExtended(e.String()); err != nil || got != e {
			t.Errorf("%s: got (%s, %v)", e, got, err)
		}
	}
}

func Test_Conversion_42(t *testing.T) {
	// Membership codes parse with or without padding
	if got, err := ParseExtended("NF"); err != nil || got != Uncertain(NF) {
		t.Errorf("got (%s, %v)", got, err)
	}
	//
	if got, err := ParseExtended("_FT_"); err != nil || got != Uncertain(FT) {
		t.Errorf("got (%s, %v)", got, err)
	}
	//
	checkFails(t, func() error { _, err := ParseExtended("____"); return err })
	checkFails(t, func() error { _, err := ParseExtended("NFX"); return err })
}

// ============================================================================
// Helpers
// ============================================================================

func checkBoolOk(t *testing.T, fn func() (bool, error), expected bool) {
	t.Helper()
	//
	got, err := fn()
	//
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	} else if got != expected {
		t.Errorf("got %v, expected %v", got, expected)
	}
}

func checkFails(t *testing.T, fn func() error) {
	t.Helper()
	//
	err := fn()
	//
	if err == nil {
		t.Errorf("expected an error")
	} else if !errors.Is(err, ErrUnrepresentable) {
		t.Errorf("expected ErrUnrepresentable, got %v", err)
	}
}

package belnap

import "testing"

func Test_Ternary_01(t *testing.T) {
	// False absorbs conjunction, True is its identity
	for _, v := range TERNARIES {
		checkTernary(t, TernaryFalse.And(v), TernaryFalse)
		checkTernary(t, v.And(TernaryFalse), TernaryFalse)
		checkTernary(t, TernaryTrue.And(v), v)
		checkTernary(t, v.And(TernaryTrue), v)
	}
}

func Test_Ternary_02(t *testing.T) {
	checkTernary(t, TernaryUnknown.And(TernaryUnknown), TernaryUnknown)
}

func Test_Ternary_03(t *testing.T) {
	// True absorbs disjunction, False is its identity
	for _, v := range TERNARIES {
		checkTernary(t, TernaryTrue.Or(v), TernaryTrue)
		checkTernary(t, v.Or(TernaryTrue), TernaryTrue)
		checkTernary(t, TernaryFalse.Or(v), v)
		checkTernary(t, v.Or(TernaryFalse), v)
	}
}

func Test_Ternary_04(t *testing.T) {
	checkTernary(t, TernaryUnknown.Or(TernaryUnknown), TernaryUnknown)
}

func Test_Ternary_05(t *testing.T) {
	// Any Unknown operand poisons exclusive disjunction
	for _, v := range TERNARIES {
		checkTernary(t, TernaryUnknown.Xor(v), TernaryUnknown)
		checkTernary(t, v.Xor(TernaryUnknown), TernaryUnknown)
	}
	//
	checkTernary(t, TernaryTrue.Xor(TernaryTrue), TernaryFalse)
	checkTernary(t, TernaryFalse.Xor(TernaryFalse), TernaryFalse)
	checkTernary(t, TernaryTrue.Xor(TernaryFalse), TernaryTrue)
	checkTernary(t, TernaryFalse.Xor(TernaryTrue), TernaryTrue)
}

func Test_Ternary_06(t *testing.T) {
	checkTernary(t, TernaryFalse.Not(), TernaryTrue)
	checkTernary(t, TernaryTrue.Not(), TernaryFalse)
	checkTernary(t, TernaryUnknown.Not(), TernaryUnknown)
}

func Test_Ternary_07(t *testing.T) {
	// Any Unknown operand poisons equality
	for _, v := range TERNARIES {
		checkTernary(t, TernaryUnknown.Eq(v), TernaryUnknown)
		checkTernary(t, v.Eq(TernaryUnknown), TernaryUnknown)
	}
	//
	checkTernary(t, TernaryTrue.Eq(TernaryTrue), TernaryTrue)
	checkTernary(t, TernaryFalse.Eq(TernaryFalse), TernaryTrue)
	checkTernary(t, TernaryTrue.Eq(TernaryFalse), TernaryFalse)
}

func Test_Ternary_08(t *testing.T) {
	if !TernaryUnknown.IsUnknown() {
		t.Errorf("TernaryUnknown must be unknown")
	}
	//
	if TernaryFalse.IsUnknown() || TernaryTrue.IsUnknown() {
		t.Errorf("determined values must not be unknown")
	}
}

func Test_Ternary_09(t *testing.T) {
	checkString(t, TernaryFalse.String(), "False")
	checkString(t, TernaryTrue.String(), "True")
	checkString(t, TernaryUnknown.String(), "Unknown")
}

// ============================================================================
// Helpers
// ============================================================================

// TERNARIES lists all three truth values.
var TERNARIES = []Ternary{TernaryFalse, TernaryTrue, TernaryUnknown}

func checkTernary(t *testing.T, got Ternary, expected Ternary) {
	t.Helper()
	//
	if got != expected {
		t.Errorf("got %s, expected %s", got, expected)
	}
}

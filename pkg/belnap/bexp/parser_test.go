package bexp

import (
	"testing"

	"github.com/Coder-Spirit/belnapian/pkg/belnap"
)

// Literals

func Test_Expr_01(t *testing.T) {
	checkEval(t, "True", belnap.Known(belnap.True))
}

func Test_Expr_02(t *testing.T) {
	checkEval(t, "Neither", belnap.Known(belnap.Neither))
}

func Test_Expr_03(t *testing.T) {
	checkEval(t, "NF__", belnap.Uncertain(belnap.NF))
}

func Test_Expr_04(t *testing.T) {
	checkEval(t, "FT", belnap.Uncertain(belnap.FT))
}

// Negation

func Test_Expr_10(t *testing.T) {
	checkEval(t, "!True", belnap.Known(belnap.False))
}

func Test_Expr_11(t *testing.T) {
	checkEval(t, "!!Both", belnap.Known(belnap.Both))
}

func Test_Expr_12(t *testing.T) {
	checkEval(t, "¬NF__", belnap.Uncertain(belnap.NT))
}

// Connectives

func Test_Expr_20(t *testing.T) {
	checkEval(t, "False && Both", belnap.Known(belnap.False))
}

func Test_Expr_21(t *testing.T) {
	checkEval(t, "Neither || Both", belnap.Known(belnap.True))
}

func Test_Expr_22(t *testing.T) {
	checkEval(t, "True ∧ True ∧ True", belnap.Known(belnap.True))
}

func Test_Expr_23(t *testing.T) {
	checkEval(t, "True <+> False", belnap.Known(belnap.Both))
}

func Test_Expr_24(t *testing.T) {
	checkEval(t, "True <-> False", belnap.Known(belnap.Neither))
}

func Test_Expr_25(t *testing.T) {
	checkEval(t, "NF__ && _F_B", belnap.Known(belnap.False))
}

// Equality

func Test_Expr_30(t *testing.T) {
	checkEval(t, "True == True", belnap.Known(belnap.True))
}

func Test_Expr_31(t *testing.T) {
	checkEval(t, "True == NF_B", belnap.Known(belnap.False))
}

func Test_Expr_32(t *testing.T) {
	checkEval(t, "NF__ == NF__", belnap.Uncertain(belnap.FT))
}

// Bracketing

func Test_Expr_40(t *testing.T) {
	checkEval(t, "(True && False) || True", belnap.Known(belnap.True))
}

func Test_Expr_41(t *testing.T) {
	checkEval(t, "!(True && Neither)", belnap.Known(belnap.Neither))
}

func Test_Expr_42(t *testing.T) {
	// Mixing connectives at the same level requires braces
	checkSyntaxError(t, "True && False || True")
}

func Test_Expr_43(t *testing.T) {
	checkSyntaxError(t, "True == False == True")
}

// Variables

func Test_Expr_50(t *testing.T) {
	expr := parseExpr(t, "x && !y")
	//
	got := expr.Eval(func(name string) belnap.Extended {
		if name == "x" {
			return belnap.Known(belnap.True)
		}
		//
		return belnap.Known(belnap.False)
	})
	//
	if got != belnap.Known(belnap.True) {
		t.Errorf("got %s", got)
	}
}

func Test_Expr_51(t *testing.T) {
	checkSyntaxError(t, "x && unbound")
}

// Malformed inputs

func Test_Expr_60(t *testing.T) {
	checkSyntaxError(t, "")
}

func Test_Expr_61(t *testing.T) {
	checkSyntaxError(t, "True &&")
}

func Test_Expr_62(t *testing.T) {
	checkSyntaxError(t, "(True")
}

func Test_Expr_63(t *testing.T) {
	checkSyntaxError(t, "True False")
}

func Test_Expr_64(t *testing.T) {
	checkSyntaxError(t, "True # False")
}

// Printing

func Test_Expr_70(t *testing.T) {
	expr := parseExpr(t, "(x && True) || !y")
	// Printed form must parse back to an equivalent term
	reparsed := parseExpr(t, expr.String())
	//
	env := func(string) belnap.Extended { return belnap.Known(belnap.Both) }
	//
	if expr.Eval(env) != reparsed.Eval(env) {
		t.Errorf("%s does not round trip", expr)
	}
}

// ============================================================================
// Helpers
// ============================================================================

func parseExpr(t *testing.T, input string) Term {
	t.Helper()
	// Only x and y are bound
	env := func(name string) bool { return name == "x" || name == "y" }
	//
	expr, errs := Parse(input, env)
	//
	if len(errs) != 0 {
		t.Fatalf("%s: unexpected syntax error: %s", input, errs[0].Message())
	}
	//
	return expr
}

func checkEval(t *testing.T, input string, expected belnap.Extended) {
	t.Helper()
	//
	expr := parseExpr(t, input)
	//
	got := expr.Eval(func(string) belnap.Extended { panic("no variables expected") })
	//
	if got != expected {
		t.Errorf("%s: got %s, expected %s", input, got, expected)
	}
}

func checkSyntaxError(t *testing.T, input string) {
	t.Helper()
	//
	env := func(name string) bool { return name == "x" || name == "y" }
	//
	if _, errs := Parse(input, env); len(errs) == 0 {
		t.Errorf("%s: expected a syntax error", input)
	}
}

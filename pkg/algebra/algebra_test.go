package algebra

import (
	"math/big"
	"testing"
)

// ============================================================================
// Parsing / Rendering Tests
// ============================================================================

func Test_Algebra_01(t *testing.T) {
	CheckRender(t, "123", "123")
}

func Test_Algebra_02(t *testing.T) {
	CheckRender(t, "x", "x")
}

func Test_Algebra_03(t *testing.T) {
	CheckRender(t, "2*x", "2*x")
}

func Test_Algebra_04(t *testing.T) {
	CheckRender(t, "x**2", "x**2")
}

func Test_Algebra_05(t *testing.T) {
	// Unit coefficients and unit exponents are elided.
	CheckRender(t, "1*x**1", "x")
}

func Test_Algebra_06(t *testing.T) {
	// Like terms combine exactly.
	CheckRender(t, "3.5*x*y+x*y", "4.5*x*y")
}

func Test_Algebra_07(t *testing.T) {
	// Variable products render in alphabet order.
	CheckRender(t, "y*x", "x*y")
}

func Test_Algebra_08(t *testing.T) {
	// Canonical monomial order: higher exponent first, constants last.
	CheckRender(t, "1+x+x**2", "x**2 + x + 1")
}

func Test_Algebra_09(t *testing.T) {
	CheckRender(t, "x-x", "0")
}

func Test_Algebra_10(t *testing.T) {
	CheckRender(t, "-x+1", "-x + 1")
}

func Test_Algebra_11(t *testing.T) {
	// Parenthesized structure expands fully.
	CheckRender(t, "(x+1)**2", "x**2 + 2*x + 1")
}

func Test_Algebra_12(t *testing.T) {
	CheckRender(t, "x-(0-(0-x))", "0")
}

func Test_Algebra_13(t *testing.T) {
	// All three bracket pairs group.
	CheckRender(t, "[x+1]*{x-1}", "x**2 - 1")
}

func Test_Algebra_14(t *testing.T) {
	// Scientific notation is evaluated exactly.
	CheckRender(t, "66e10", "660000000000")
	CheckRender(t, "5e-1*x", "0.5*x")
}

func Test_Algebra_15(t *testing.T) {
	// Repeated variables within a product merge exponents.
	CheckRender(t, "x*x*x", "x**3")
	CheckRender(t, "x**2*x**3", "x**5")
}

func Test_Algebra_16(t *testing.T) {
	CheckRender(t, "x**0", "1")
	CheckRender(t, "(x+1)**0", "1")
}

func Test_Algebra_17(t *testing.T) {
	// Coefficients without a finite decimal form fall back to fractions.
	third := Constant(big.NewRat(1, 3)).Mul(Variable('x'))
	//
	if actual := third.String(); actual != "1/3*x" {
		t.Errorf("was %q, expected %q", actual, "1/3*x")
	}
}

// ============================================================================
// Negative Tests
// ============================================================================

func Test_Algebra_Invalid_01(t *testing.T) {
	CheckRenderFails(t, "")
}

func Test_Algebra_Invalid_02(t *testing.T) {
	CheckRenderFails(t, "x**")
}

func Test_Algebra_Invalid_03(t *testing.T) {
	CheckRenderFails(t, "(x+1")
}

func Test_Algebra_Invalid_04(t *testing.T) {
	// Bracket pairs must match in kind.
	CheckRenderFails(t, "(x+1]")
}

func Test_Algebra_Invalid_05(t *testing.T) {
	CheckRenderFails(t, "x+")
}

func Test_Algebra_Invalid_06(t *testing.T) {
	CheckRenderFails(t, "x)")
}

// ============================================================================
// Engine Tests
// ============================================================================

func Test_Engine_01(t *testing.T) {
	CheckDifference(t, "x**2+3.5*x*y+y", "y**2-x*y+y", "x**2 + 4.5*x*y - y**2")
}

func Test_Engine_02(t *testing.T) {
	CheckDifference(t, "x", "1", "x - 1")
}

func Test_Engine_03(t *testing.T) {
	CheckDifference(t, "x-(y**2-x)", "0", "2*x - y**2")
}

func Test_Engine_04(t *testing.T) {
	CheckDifference(t, "x-(0-(0-x))", "0", "0")
}

func Test_Engine_05(t *testing.T) {
	// Equal sides cancel entirely.
	CheckDifference(t, "x**2+2*x+1", "(x+1)**2", "0")
}

// ============================================================================
// Helpers
// ============================================================================

func CheckRender(t *testing.T, input string, expected string) {
	t.Helper()
	//
	poly, err := Parse(input)
	if err != nil {
		t.Fatalf("parsing %q failed: %v", input, err)
	}
	//
	if actual := poly.String(); actual != expected {
		t.Errorf("parsing %q: was %q, expected %q", input, actual, expected)
	}
}

func CheckRenderFails(t *testing.T, input string) {
	t.Helper()
	//
	if poly, err := Parse(input); err == nil {
		t.Errorf("parsing %q: expected error, got %q", input, poly.String())
	}
}

func CheckDifference(t *testing.T, left string, right string, expected string) {
	t.Helper()
	//
	actual, err := Engine{}.SimplifyDifference(left, right)
	if err != nil {
		t.Fatalf("simplifying %q - %q failed: %v", left, right, err)
	}
	//
	if actual != expected {
		t.Errorf("simplifying %q - %q: was %q, expected %q", left, right, actual, expected)
	}
}

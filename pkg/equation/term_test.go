package equation

import (
	"errors"
	"strings"
	"testing"
)

// ============================================================================
// Positive Tests
// ============================================================================

func TestTerm_IntCoefficient(t *testing.T) {
	CheckTermOk(t, "66", "66")
}

func TestTerm_FloatCoefficient(t *testing.T) {
	CheckTermOk(t, "66.66", "66.66")
}

func TestTerm_TrailingPointCoefficient(t *testing.T) {
	CheckTermOk(t, "66.", "66.")
}

func TestTerm_LeadingPointCoefficient(t *testing.T) {
	CheckTermOk(t, ".66", ".66")
}

func TestTerm_ScientificCoefficient(t *testing.T) {
	// Scientific-notation suffix is preserved verbatim, not evaluated.
	CheckTermOk(t, "66e10", "66e10")
}

func TestTerm_SignedScientificCoefficient(t *testing.T) {
	CheckTermOk(t, "66E-10", "66E-10")
}

func TestTerm_SingleVariable(t *testing.T) {
	CheckTermOk(t, "x", "x")
}

func TestTerm_CoefficientVariable(t *testing.T) {
	CheckTermOk(t, "2x", "2*x")
}

func TestTerm_MultiVariable(t *testing.T) {
	CheckTermOk(t, "xyz", "x*y*z")
}

func TestTerm_MultiVariableReordered(t *testing.T) {
	// Variable products render in alphabet order, not input order.
	CheckTermOk(t, "yx", "x*y")
	CheckTermOk(t, "zyx", "x*y*z")
	CheckTermOk(t, "zt", "t*z")
}

func TestTerm_VariableExponent(t *testing.T) {
	CheckTermOk(t, "x^2", "x**2")
}

func TestTerm_CoefficientVariableExponent(t *testing.T) {
	CheckTermOk(t, "3.5x^2", "3.5*x**2")
}

func TestTerm_ScientificCoefficientVariableExponent(t *testing.T) {
	CheckTermOk(t, "66e10x^23", "66e10*x**23")
}

func TestTerm_MultiVariableExponent(t *testing.T) {
	// The exponent suffix attaches after the rendered variable product.
	CheckTermOk(t, "xy^2", "x*y**2")
}

// ============================================================================
// Negative Tests
// ============================================================================

func TestTerm_UnknownVariable(t *testing.T) {
	CheckTermUnexpectedVariable(t, "23az")
}

func TestTerm_FullyUnknownVariable(t *testing.T) {
	CheckTermUnexpectedVariable(t, "23a^3")
}

func TestTerm_UnknownVariableAlone(t *testing.T) {
	CheckTermUnexpectedVariable(t, "abc")
}

func TestTerm_MissingExponent(t *testing.T) {
	_, err := ProcessTerm("23x^")
	//
	var termErr *InvalidTermInEquationError
	if !errors.As(err, &termErr) {
		t.Fatalf("expected InvalidTermInEquationError, got %v", err)
	} else if !strings.Contains(err.Error(), "no exponent") {
		t.Errorf("error %q does not mention \"no exponent\"", err.Error())
	}
}

// ============================================================================
// Helpers
// ============================================================================

func CheckTermOk(t *testing.T, token string, expected string) {
	t.Helper()
	//
	actual, err := ProcessTerm(token)
	if err != nil {
		t.Fatalf("process term %q failed: %v", token, err)
	} else if actual != expected {
		t.Errorf("process term %q: was %q, expected %q", token, actual, expected)
	}
}

func CheckTermUnexpectedVariable(t *testing.T, token string) {
	t.Helper()
	//
	_, err := ProcessTerm(token)
	//
	var varErr *UnexpectedVariableNamesError
	if !errors.As(err, &varErr) {
		t.Fatalf("process term %q: expected UnexpectedVariableNamesError, got %v", token, err)
	} else if !strings.Contains(err.Error(), "unexpected variable") {
		t.Errorf("error %q does not mention \"unexpected variable\"", err.Error())
	}
}

package equation

import (
	"errors"
	"strings"
	"testing"
)

// ============================================================================
// Positive Tests
// ============================================================================

func TestValidate_Simple(t *testing.T) {
	CheckValidateOk(t, "x = 1")
}

func TestValidate_General(t *testing.T) {
	CheckValidateOk(t, "x^2 + 3.5xy + y = y^2 - xy + y")
}

func TestValidate_ExplicitSyntax(t *testing.T) {
	CheckValidateOk(t, "x**2 + 3.5*x*y + y = y**2 - x*y + y")
}

func TestValidate_Brackets(t *testing.T) {
	CheckValidateOk(t, "x - [y^2 - {0 - x}] = (0)")
}

// ============================================================================
// Negative Tests
// ============================================================================

func TestValidate_BadCharacter(t *testing.T) {
	CheckValidateFails(t, "x? = 1", "bad characters")
	CheckValidateFails(t, "X = 1", "bad characters")
	CheckValidateFails(t, "x/y = 1", "bad characters")
}

func TestValidate_DoubleEquals(t *testing.T) {
	CheckValidateFails(t, "x^2 + 3.5xy + y == y^2 - xy + y", "more than one =")
}

func TestValidate_TwoEquals(t *testing.T) {
	CheckValidateFails(t, "x^2 + 3.5xy + y = y^2 - xy + y = x", "more than one =")
}

func TestValidate_ThreeEquals(t *testing.T) {
	CheckValidateFails(t, "x^2 + 3.5xy + y = y^2 - xy + y = x = x", "more than one =")
}

func TestValidate_MissingEquals(t *testing.T) {
	CheckValidateFails(t, "x + 1", "missing =")
}

func TestValidate_RepeatedPlus(t *testing.T) {
	CheckValidateFails(t, "x^2 ++ 3.5xy + y = y^2 - xy + y", "repeated")
}

func TestValidate_RepeatedMinus(t *testing.T) {
	CheckValidateFails(t, "x^2 + 3.5xy + y = y^2 -- xy + y", "repeated")
}

func TestValidate_PlusMinus(t *testing.T) {
	CheckValidateFails(t, "x^2 +- 3.5xy + y = y^2 - xy + y", "+- or -+")
}

func TestValidate_MinusPlus(t *testing.T) {
	CheckValidateFails(t, "x^2 + 3.5xy + y = y^2 -+ xy + y", "+- or -+")
}

func TestValidate_DoubleCaret(t *testing.T) {
	CheckValidateFails(t, "x^^2 = 1", "unknown operation ^^")
}

func TestValidate_TripleStar(t *testing.T) {
	CheckValidateFails(t, "x***2 = 1", "unknown operation ***")
}

// ============================================================================
// Helpers
// ============================================================================

func CheckValidateOk(t *testing.T, input string) {
	t.Helper()
	//
	if err := Validate(input); err != nil {
		t.Errorf("validate %q: unexpected error %v", input, err)
	}
}

func CheckValidateFails(t *testing.T, input string, fragment string) {
	t.Helper()
	//
	err := Validate(input)
	//
	var eqErr *InvalidEquationError
	if !errors.As(err, &eqErr) {
		t.Fatalf("validate %q: expected InvalidEquationError, got %v", input, err)
	} else if !strings.Contains(err.Error(), fragment) {
		t.Errorf("error %q does not mention %q", err.Error(), fragment)
	}
}

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
package equation

import (
	"strings"
)

// Engine abstracts the symbolic algebra capability which performs the actual
// polynomial arithmetic.  Both arguments and the result use engine syntax:
// explicit multiplication, double-star exponentiation and standard arithmetic
// parenthesization.  The operation reduces "left - right" to a single fully
// expanded and combined expression in a deterministic, engine-defined text
// form; this package does not re-order or re-derive anything in the result.
type Engine interface {
	// SimplifyDifference expands both sides, combines like monomials and
	// returns left minus right as a single canonical expression.
	SimplifyDifference(left string, right string) (string, error)
}

// Equation represents one equation, parsed and held in engine syntax.  It is
// immutable once constructed; Canonicalize can be called any number of times.
type Equation struct {
	// Raw input, exactly as supplied.
	raw string
	// Input after normalization to the canonical input syntax.
	sanitized string
	// Left-hand expression, in engine syntax.
	lhs string
	// Right-hand expression, in engine syntax.
	rhs string
}

// New validates, normalizes and parses a raw equation string.  Every term is
// individually checked against the term grammar and re-rendered in engine
// syntax; structural characters pass through verbatim.  Failures are one of
// the typed errors of this package, raised at the point of detection.
func New(raw string) (*Equation, error) {
	if raw == "" {
		return nil, &NoEquationError{}
	}
	// Validation happens on the raw string, before whitespace removal.
	if err := Validate(raw); err != nil {
		return nil, err
	}
	//
	sanitized := Normalize(raw)
	//
	processed, err := assemble(Tokenize(sanitized))
	if err != nil {
		return nil, err
	}
	// Defensive re-check; the validator guarantees a single "=" already.
	sides := strings.Split(processed, "=")
	if len(sides) != 2 {
		return nil, &InvalidEquationError{raw, "cannot have more than one = sign"}
	} else if sides[0] == "" || sides[1] == "" {
		return nil, &InvalidEquationError{raw, "empty side"}
	}
	//
	return &Equation{raw, sanitized, sides[0], sides[1]}, nil
}

// Raw returns the equation exactly as supplied.
func (p *Equation) Raw() string {
	return p.raw
}

// Sanitized returns the equation in the canonical input syntax.
func (p *Equation) Sanitized() string {
	return p.sanitized
}

// LeftHandSide returns the left expression in engine syntax.
func (p *Equation) LeftHandSide() string {
	return p.lhs
}

// RightHandSide returns the right expression in engine syntax.
func (p *Equation) RightHandSide() string {
	return p.rhs
}

// Canonicalize reduces the equation to "<expression> = 0" form using the
// given algebra engine, and reformats the engine's output back into display
// syntax: caret exponentiation, implicit multiplication.  The reformatting is
// purely textual; the engine's token structure is trusted as-is.
func (p *Equation) Canonicalize(engine Engine) (string, error) {
	simplified, err := engine.SimplifyDifference(p.lhs, p.rhs)
	if err != nil {
		return "", err
	}
	//
	simplified = strings.ReplaceAll(simplified, "**", "^")
	simplified = strings.ReplaceAll(simplified, "*", "")
	//
	return simplified + " = 0", nil
}

// assemble rebuilds the equation from its token sequence, transforming each
// term token into engine syntax along the way.
func assemble(tokens []Token) (string, error) {
	var builder strings.Builder
	//
	for _, token := range tokens {
		if token.Kind == STRUCTURAL {
			builder.WriteString(token.Text)
			continue
		}
		//
		term, err := ProcessTerm(token.Text)
		if err != nil {
			return "", err
		}
		//
		builder.WriteString(term)
	}
	//
	return builder.String(), nil
}

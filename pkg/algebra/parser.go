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
package algebra

import (
	"fmt"
	"math/big"
	"strconv"
)

// brackets maps every accepted opening bracket to its required closing
// bracket.
var brackets = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
}

// Parse a given string in engine syntax into a polynomial, or return an error
// if the string is malformed.  Engine syntax uses explicit multiplication,
// double-star exponentiation with a non-negative integer exponent, the three
// bracket pairs for grouping, decimal numbers (scientific notation included)
// and single lowercase letters as variables.
func Parse(input string) (Polynomial, error) {
	p := &Parser{[]rune(input), 0}
	// Parse the input
	poly, err := p.parseExpression()
	// Sanity check everything was parsed
	if err == nil && p.index != len(p.text) {
		return Zero(), p.error("unexpected remainder")
	}
	//
	return poly, err
}

// Parser represents a parser in the process of parsing a given string into a
// polynomial.
type Parser struct {
	// Text being parsed
	text []rune
	// Determine current position within text
	index int
}

// parseExpression parses a sum: an optional leading sign, followed by
// products separated by "+" or "-".
func (p *Parser) parseExpression() (Polynomial, error) {
	var negated bool
	// Optional leading sign
	if c := p.lookahead(); c != nil && (*c == '+' || *c == '-') {
		p.index++
		negated = *c == '-'
	}
	//
	poly, err := p.parseProduct()
	if err != nil {
		return poly, err
	} else if negated {
		poly = poly.Neg()
	}
	//
	for {
		c := p.lookahead()
		if c == nil || (*c != '+' && *c != '-') {
			return poly, nil
		}
		//
		p.index++
		//
		rhs, err := p.parseProduct()
		if err != nil {
			return rhs, err
		} else if *c == '-' {
			poly = poly.Sub(rhs)
		} else {
			poly = poly.Add(rhs)
		}
	}
}

// parseProduct parses factors separated by single "*" operators.  A "**"
// belongs to the factor below, never here.
func (p *Parser) parseProduct() (Polynomial, error) {
	poly, err := p.parseFactor()
	if err != nil {
		return poly, err
	}
	//
	for {
		c := p.lookahead()
		if c == nil || *c != '*' {
			return poly, nil
		}
		//
		p.index++
		//
		rhs, err := p.parseFactor()
		if err != nil {
			return rhs, err
		}
		//
		poly = poly.Mul(rhs)
	}
}

// parseFactor parses a primary optionally raised to an integer power.
func (p *Parser) parseFactor() (Polynomial, error) {
	poly, err := p.parsePrimary()
	if err != nil {
		return poly, err
	}
	// Check for the exponentiation operator
	if c, d := p.lookahead(), p.lookaheadAt(1); c != nil && d != nil && *c == '*' && *d == '*' {
		p.index += 2
		//
		exponent, err := p.parseExponent()
		if err != nil {
			return Zero(), err
		}
		//
		poly = poly.Pow(exponent)
	}
	//
	return poly, nil
}

// parsePrimary parses a number, a variable or a bracketed subexpression.
func (p *Parser) parsePrimary() (Polynomial, error) {
	c := p.lookahead()
	//
	switch {
	case c == nil:
		return Zero(), p.error("unexpected end of expression")
	case isDigit(*c) || *c == '.':
		return p.parseNumber()
	case *c >= 'a' && *c <= 'z':
		p.index++
		return Variable(*c), nil
	}
	//
	if closing, ok := brackets[*c]; ok {
		p.index++
		//
		poly, err := p.parseExpression()
		if err != nil {
			return poly, err
		}
		//
		if c = p.lookahead(); c == nil || *c != closing {
			return Zero(), p.error(fmt.Sprintf("expected %c", closing))
		}
		//
		p.index++
		//
		return poly, nil
	}
	//
	return Zero(), p.error(fmt.Sprintf("unexpected character %c", *c))
}

// parseNumber parses a decimal number, optionally carrying a
// scientific-notation suffix, into an exact rational constant.
func (p *Parser) parseNumber() (Polynomial, error) {
	var (
		start = p.index
		dot   bool
	)
	//
	for c := p.lookahead(); c != nil; c = p.lookahead() {
		if isDigit(*c) {
			p.index++
		} else if *c == '.' && !dot {
			dot = true
			p.index++
		} else {
			break
		}
	}
	// Scientific-notation suffix, only when digits actually follow it.
	if c := p.lookahead(); c != nil && (*c == 'e' || *c == 'E') {
		i := p.index + 1
		if d := p.lookaheadAt(1); d != nil && (*d == '+' || *d == '-') {
			i++
		}
		//
		if i < len(p.text) && isDigit(p.text[i]) {
			for p.index = i; p.index < len(p.text) && isDigit(p.text[p.index]); {
				p.index++
			}
		}
	}
	//
	text := string(p.text[start:p.index])
	// SetString requires digits on both sides of the point.
	if text[0] == '.' {
		text = "0" + text
	}
	//
	if text[len(text)-1] == '.' {
		text += "0"
	}
	//
	value, ok := new(big.Rat).SetString(text)
	if !ok {
		return Zero(), p.error(fmt.Sprintf("malformed number %s", text))
	}
	//
	return Constant(value), nil
}

// parseExponent parses the non-negative integer exponent following a "**".
func (p *Parser) parseExponent() (uint, error) {
	start := p.index
	//
	for c := p.lookahead(); c != nil && isDigit(*c); c = p.lookahead() {
		p.index++
	}
	//
	if start == p.index {
		return 0, p.error("expected exponent")
	}
	//
	exponent, err := strconv.ParseUint(string(p.text[start:p.index]), 10, 32)
	if err != nil {
		return 0, p.error("malformed exponent")
	}
	//
	return uint(exponent), nil
}

// lookahead returns the next character without consuming it.
func (p *Parser) lookahead() *rune {
	return p.lookaheadAt(0)
}

// lookaheadAt returns the ith character after the cursor without consuming
// anything.
func (p *Parser) lookaheadAt(i int) *rune {
	// Compute actual position within text
	pos := i + p.index
	//
	if pos < len(p.text) {
		return &p.text[pos]
	}
	//
	return nil
}

// Construct a parse error at the current position in the input.
func (p *Parser) error(msg string) error {
	return fmt.Errorf("%d: %s", p.index, msg)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

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
	"math/big"
	"strings"
)

// Polynomial represents a multivariate polynomial with exact rational
// coefficients, held as a list of monomials sorted in the canonical monomial
// ordering.  Like terms are always combined and zero terms dropped, so the
// representation of any polynomial is unique; in particular the zero
// polynomial is the empty list.
type Polynomial struct {
	terms []Monomial
}

// Zero constructs the zero polynomial.
func Zero() Polynomial {
	return Polynomial{}
}

// Constant constructs a polynomial holding a single constant value.
func Constant(value *big.Rat) Polynomial {
	if value.Sign() == 0 {
		return Zero()
	}
	//
	return Polynomial{[]Monomial{NewMonomial(value)}}
}

// Variable constructs the polynomial for a single variable.
func Variable(name rune) Polynomial {
	return Polynomial{[]Monomial{NewMonomial(one, VarExp{name, 1})}}
}

// IsZero checks whether or not this is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.terms) == 0
}

// Len returns the number of (non-zero) monomials in this polynomial.
func (p Polynomial) Len() uint {
	return uint(len(p.terms))
}

// Add sums this polynomial with another, combining like terms by summing
// their coefficients and dropping any which cancel to zero.
func (p Polynomial) Add(other Polynomial) Polynomial {
	var (
		terms []Monomial
		i, j  int
	)
	//
	for i < len(p.terms) && j < len(other.terms) {
		l, r := p.terms[i], other.terms[j]
		//
		switch c := cmpVars(l.vars, r.vars); {
		case c < 0:
			terms = append(terms, l.Clone())
			i++
		case c > 0:
			terms = append(terms, r.Clone())
			j++
		default:
			sum := l.Clone()
			sum.coefficient.Add(&sum.coefficient, &r.coefficient)
			//
			if !sum.IsZero() {
				terms = append(terms, sum)
			}
			//
			i++
			j++
		}
	}
	//
	for ; i < len(p.terms); i++ {
		terms = append(terms, p.terms[i].Clone())
	}
	//
	for ; j < len(other.terms); j++ {
		terms = append(terms, other.terms[j].Clone())
	}
	//
	return Polynomial{terms}
}

// Neg negates every term of this polynomial.
func (p Polynomial) Neg() Polynomial {
	terms := make([]Monomial, len(p.terms))
	//
	for i, t := range p.terms {
		terms[i] = t.Neg()
	}
	//
	return Polynomial{terms}
}

// Sub subtracts another polynomial from this one.
func (p Polynomial) Sub(other Polynomial) Polynomial {
	return p.Add(other.Neg())
}

// Mul multiplies this polynomial by another, expanding the product fully and
// combining like terms.
func (p Polynomial) Mul(other Polynomial) Polynomial {
	result := Zero()
	//
	for _, l := range p.terms {
		for _, r := range other.terms {
			result = result.Add(Polynomial{[]Monomial{l.Mul(r)}})
		}
	}
	//
	return result
}

// Pow raises this polynomial to a given non-negative integer power by
// repeated multiplication.  Pow(0) is the constant one, as usual.
func (p Polynomial) Pow(exponent uint) Polynomial {
	result := Constant(one)
	//
	for i := uint(0); i < exponent; i++ {
		result = result.Mul(p)
	}
	//
	return result
}

// String renders this polynomial in the canonical engine syntax: monomials in
// the canonical order, joined by " + " or " - " with the sign folded into the
// separator, and "0" for the zero polynomial.
func (p Polynomial) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	//
	var builder strings.Builder
	//
	for i, t := range p.terms {
		switch {
		case i == 0 && t.IsNegative():
			builder.WriteString("-")
		case i > 0 && t.IsNegative():
			builder.WriteString(" - ")
		case i > 0:
			builder.WriteString(" + ")
		}
		//
		builder.WriteString(t.renderAbs())
	}
	//
	return builder.String()
}

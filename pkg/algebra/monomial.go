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
	"slices"
	"strings"
)

var one = big.NewRat(1, 1)

// VarExp represents one variable raised to a (positive) power within a
// monomial.
type VarExp struct {
	// Name of the variable.
	Name rune
	// Exp is the power the variable is raised to, always at least one.
	Exp uint
}

// Monomial represents a product of variables with an exact rational
// coefficient.  Variables are held sorted by name and unique; an exponent of
// zero is never stored.
type Monomial struct {
	coefficient big.Rat
	vars        []VarExp
}

// NewMonomial constructs a new monomial with a given coefficient and zero or
// more variables.  Incoming variables may be given in any order and may
// repeat; repeats are merged by summing exponents.
func NewMonomial(coefficient *big.Rat, vars ...VarExp) Monomial {
	var (
		coeff  big.Rat
		merged []VarExp
	)
	// Clone and sort incoming variables
	vars = slices.Clone(vars)
	slices.SortFunc(vars, func(l, r VarExp) int {
		return int(l.Name) - int(r.Name)
	})
	// Merge duplicates
	for _, v := range vars {
		if v.Exp == 0 {
			continue
		} else if n := len(merged); n > 0 && merged[n-1].Name == v.Name {
			merged[n-1].Exp += v.Exp
		} else {
			merged = append(merged, v)
		}
	}
	//
	coeff.Set(coefficient)
	//
	return Monomial{coeff, merged}
}

// Clone this monomial.
func (p Monomial) Clone() Monomial {
	var (
		coeff big.Rat
		nvars = make([]VarExp, len(p.vars))
	)
	//
	copy(nvars, p.vars)
	coeff.Set(&p.coefficient)
	//
	return Monomial{coeff, nvars}
}

// Coefficient returns (a copy of) the coefficient of this monomial.
func (p Monomial) Coefficient() *big.Rat {
	return new(big.Rat).Set(&p.coefficient)
}

// IsZero checks whether or not the coefficient of this monomial is zero.
func (p Monomial) IsZero() bool {
	return p.coefficient.Sign() == 0
}

// IsNegative checks whether or not the coefficient of this monomial is
// negative.
func (p Monomial) IsNegative() bool {
	return p.coefficient.Sign() < 0
}

// Neg returns a negated copy of this monomial.
func (p Monomial) Neg() Monomial {
	res := p.Clone()
	res.coefficient.Neg(&res.coefficient)
	//
	return res
}

// Mul returns a fresh monomial representing the multiplication of this
// monomial and another.  Matching variables have their exponents summed.
func (p Monomial) Mul(other Monomial) Monomial {
	var res Monomial
	// Multiply coefficients
	res.coefficient.Mul(&p.coefficient, &other.coefficient)
	// Merge sorted variable lists
	i, j := 0, 0
	//
	for i < len(p.vars) && j < len(other.vars) {
		switch l, r := p.vars[i], other.vars[j]; {
		case l.Name < r.Name:
			res.vars = append(res.vars, l)
			i++
		case l.Name > r.Name:
			res.vars = append(res.vars, r)
			j++
		default:
			res.vars = append(res.vars, VarExp{l.Name, l.Exp + r.Exp})
			i++
			j++
		}
	}
	//
	res.vars = append(res.vars, p.vars[i:]...)
	res.vars = append(res.vars, other.vars[j:]...)
	//
	return res
}

// Matches determines whether or not the variables of this monomial match
// those of the other.  Matching monomials are like terms and can be combined
// by summing their coefficients.
func (p Monomial) Matches(other Monomial) bool {
	return cmpVars(p.vars, other.vars) == 0
}

// cmpVars imposes the canonical monomial ordering: variables are compared
// name by name in alphabet order, with a higher exponent ordering first on a
// name tie.  A monomial whose variables are a strict prefix of another's
// orders after it, which places constants last.  Observe that the ordering
// ignores coefficients entirely, so combining like terms never moves a
// monomial within a sorted polynomial.
func cmpVars(l, r []VarExp) int {
	for i := 0; i < len(l) && i < len(r); i++ {
		if l[i].Name != r[i].Name {
			return int(l[i].Name) - int(r[i].Name)
		} else if l[i].Exp != r[i].Exp {
			return int(r[i].Exp) - int(l[i].Exp)
		}
	}
	//
	return len(r) - len(l)
}

// renderAbs renders this monomial in engine syntax, ignoring the sign of its
// coefficient (the enclosing polynomial renders signs as separators).  Unit
// coefficients and unit exponents are elided.
func (p Monomial) renderAbs() string {
	var (
		abs   = new(big.Rat).Abs(&p.coefficient)
		parts []string
	)
	//
	if len(p.vars) == 0 {
		return ratString(abs)
	}
	//
	if abs.Cmp(one) != 0 {
		parts = append(parts, ratString(abs))
	}
	//
	for _, v := range p.vars {
		if v.Exp == 1 {
			parts = append(parts, string(v.Name))
		} else {
			parts = append(parts, fmt.Sprintf("%c**%d", v.Name, v.Exp))
		}
	}
	//
	return strings.Join(parts, "*")
}

// ratString renders an exact rational in the shortest decimal form when its
// denominator divides a power of ten, falling back to "a/b" notation when it
// does not.  This never rounds.
func ratString(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	//
	var (
		den       = new(big.Int).Set(r.Denom())
		two, five = big.NewInt(2), big.NewInt(5)
		rem       = new(big.Int)
		twos      uint
		fives     uint
	)
	//
	for {
		if q, m := new(big.Int).QuoRem(den, two, rem); m.Sign() == 0 {
			den, twos = q, twos+1
		} else {
			break
		}
	}
	//
	for {
		if q, m := new(big.Int).QuoRem(den, five, rem); m.Sign() == 0 {
			den, fives = q, fives+1
		} else {
			break
		}
	}
	// Denominator has another prime factor, hence no finite decimal form.
	if den.Cmp(big.NewInt(1)) != 0 {
		return r.RatString()
	}
	//
	digits := int(max(twos, fives))
	text := r.FloatString(digits)
	text = strings.TrimRight(text, "0")
	text = strings.TrimRight(text, ".")
	//
	return text
}

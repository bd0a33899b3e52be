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

// Package algebra provides exact polynomial arithmetic over expressions
// written in the engine syntax (explicit multiplication, double-star
// exponentiation).  Coefficients are arbitrary-precision rationals, so
// combining like terms never loses precision.  The package is stateless and
// safe for concurrent use.
package algebra

// Engine is the symbolic algebra capability: it expands, combines and reduces
// polynomial expressions handed to it as engine-syntax strings.
type Engine struct{}

// SimplifyDifference parses both sides, reduces "left - right" to a single
// fully expanded polynomial with like monomials combined, and renders the
// result in the canonical engine-syntax form.  The term ordering of the
// result is deterministic: canonical monomial order, constants last.
func (e Engine) SimplifyDifference(left string, right string) (string, error) {
	lhs, err := Parse(left)
	if err != nil {
		return "", err
	}
	//
	rhs, err := Parse(right)
	if err != nil {
		return "", err
	}
	//
	return lhs.Sub(rhs).String(), nil
}

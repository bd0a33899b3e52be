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
	"fmt"
	"strings"
)

// NoEquationError indicates that no equation was supplied at all.
type NoEquationError struct{}

// Error implements the error interface.
func (p *NoEquationError) Error() string {
	return "must provide an equation"
}

// InvalidEquationError indicates a disallowed character, a wrong count of "="
// signs, or a forbidden operator sequence somewhere in the equation.
type InvalidEquationError struct {
	// Equation being reported on.
	equation string
	// Reason the equation was rejected.
	reason string
}

// Equation returns the offending equation.
func (p *InvalidEquationError) Equation() string {
	return p.equation
}

// Error implements the error interface.
func (p *InvalidEquationError) Error() string {
	return fmt.Sprintf("%s in equation %s", p.reason, p.equation)
}

// InvalidTermInEquationError indicates a term carrying an exponentiation
// marker with no exponent digits following it.
type InvalidTermInEquationError struct {
	// Term being reported on.
	term string
}

// Term returns the offending term.
func (p *InvalidTermInEquationError) Term() string {
	return p.term
}

// Error implements the error interface.
func (p *InvalidTermInEquationError) Error() string {
	return fmt.Sprintf("exponentiation with no exponent in term %s", p.term)
}

// UnexpectedVariableNamesError indicates a term whose variable segment
// contains a letter outside the fixed alphabet.
type UnexpectedVariableNamesError struct {
	// Term being reported on.
	term string
}

// Term returns the offending term.
func (p *UnexpectedVariableNamesError) Term() string {
	return p.term
}

// Error implements the error interface.
func (p *UnexpectedVariableNamesError) Error() string {
	return fmt.Sprintf("unexpected variable in term %s. accepted variable names are: %s",
		p.term, strings.Join(strings.Split(VarNames, ""), ", "))
}

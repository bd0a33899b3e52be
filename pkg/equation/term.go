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
	"regexp"
	"strings"
)

// VarNames is the fixed alphabet of accepted variable names, in canonical
// order.  Multi-variable products are always rendered in this order,
// regardless of the order letters appear in the input.  This is a process-wide
// constant, never mutated, and therefore safe to share across concurrent
// equation-processing calls.
const VarNames = "tuvwxyz"

// termPattern parses one polynomial term.  Submatch groups:
//
//   - group 1 is the coefficient, in any float format (1, 1., 1.1, .1),
//     optionally with a scientific-notation suffix (e.g. 66e10);
//
//   - group 5 is the variable or product of variables (x or xy), restricted
//     to the fixed alphabet;
//
//   - group 6 is the exponentiation marker;
//
//   - group 7 is the exponent.
var termPattern = regexp.MustCompile(
	`^((\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?)?([` + VarNames + `]+)?(\^)?(\d+)?`)

// anyVarsTermPattern is termPattern with the variables group widened to any
// lowercase letters.  Matching a term against both patterns and comparing the
// captured variable groups is how unknown variable names are detected: the
// widened pattern captures them, the restricted one does not.  Implicit
// multiplication is what forces this dance; a multi-letter variable segment
// is indistinguishable from a product of single-letter variables.
var anyVarsTermPattern = regexp.MustCompile(
	`^((\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?)?([a-z]+)?(\^)?(\d+)?`)

// ProcessTerm prepares one polynomial term for symbolic computation: implicit
// multiplication between coefficient and variables (and between variables) is
// made explicit, and caret exponentiation is rewritten in the double-star
// syntax the algebra engine consumes.  A coefficient on its own is returned
// verbatim, scientific-notation suffix included.  This is a pure function
// from token to rendered string (or a typed failure); it has no side effects.
func ProcessTerm(token string) (string, error) {
	var (
		coefficient    string
		exponentiation string
		variables      string
		groups         = termPattern.FindStringSubmatch(token)
		anyGroups      = anyVarsTermPattern.FindStringSubmatch(token)
	)
	// Unknown variable names capture in the widened pattern only.
	if anyGroups[5] != "" && groups[5] == "" {
		return "", &UnexpectedVariableNamesError{token}
	}
	//
	if groups[6] != "" && groups[7] == "" {
		return "", &InvalidTermInEquationError{token}
	}
	//
	if groups[6] != "" && groups[7] != "" {
		exponentiation = fmt.Sprintf("**%s", groups[7])
	}
	//
	if groups[1] != "" && groups[5] == "" {
		return groups[1], nil
	}
	//
	if groups[1] != "" && groups[5] != "" {
		// expand implicit multiplication between coefficient and variables
		coefficient = fmt.Sprintf("%s*", groups[1])
	}
	//
	if groups[5] != "" {
		variables = renderVariables(groups[5])
	}
	//
	return fmt.Sprintf("%s%s%s", coefficient, variables, exponentiation), nil
}

// renderVariables renders the variable segment of a term.  A segment holding
// a single alphabet symbol passes through unchanged; a multi-variable segment
// is rewritten as an explicit product, in the alphabet's canonical order
// rather than input order.
func renderVariables(segment string) string {
	var present []string
	//
	for _, name := range VarNames {
		if strings.ContainsRune(segment, name) {
			present = append(present, string(name))
		}
	}
	//
	if len(present) == 1 {
		return segment
	}
	//
	return strings.Join(present, "*")
}

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

import "strings"

// Normalize rewrites an equation into the canonical input syntax: caret
// exponentiation, implicit multiplication and no whitespace.  Both the "ax^k"
// and "a*x**k" spellings of a term normalize to the same string.  The "**"
// rewrite must happen before the "*" removal, otherwise every exponent marker
// would be destroyed.  No validation happens here; malformed input passes
// through transformed but unjudged.
func Normalize(equation string) string {
	equation = strings.ReplaceAll(equation, "**", "^")
	equation = strings.ReplaceAll(equation, "*", "")
	equation = strings.ReplaceAll(equation, " ", "")
	//
	return equation
}

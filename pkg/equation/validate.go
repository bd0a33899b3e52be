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
	"regexp"
	"strings"
)

// validPattern determines the set of characters which may appear anywhere in
// an equation.  Anything else is rejected outright, before parsing begins.
var validPattern = regexp.MustCompile(`^[a-z0-9 =\-\+\*\^\(\)\[\]\{\}\.,]+$`)

// forbiddenSequences lists operator combinations which are never meaningful,
// along with the reason reported for each.  These are checked on the raw
// string, before whitespace removal.
var forbiddenSequences = []struct {
	sequence string
	reason   string
}{
	{"++", "repeated + sign"},
	{"--", "repeated - sign"},
	{"+-", "+- or -+ sign combination"},
	{"-+", "+- or -+ sign combination"},
	{"^^", "unknown operation ^^"},
	{"***", "unknown operation ***"},
}

// Validate checks a raw equation string against the accepted character set,
// the required single "=" sign, and the forbidden operator sequences.  This is
// a pure predicate with no side effects; it either returns nil or an
// *InvalidEquationError describing the first problem found.
func Validate(equation string) error {
	if !validPattern.MatchString(equation) {
		return &InvalidEquationError{equation, "bad characters"}
	}
	//
	switch n := strings.Count(equation, "="); {
	case n > 1:
		return &InvalidEquationError{equation, "cannot have more than one = sign"}
	case n == 0:
		return &InvalidEquationError{equation, "missing = sign"}
	}
	//
	for _, f := range forbiddenSequences {
		if strings.Contains(equation, f.sequence) {
			return &InvalidEquationError{equation, f.reason}
		}
	}
	//
	return nil
}

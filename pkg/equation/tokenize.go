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

// TokenKind distinguishes structural tokens from raw term tokens.
type TokenKind uint

const (
	// STRUCTURAL tokens are the operator, bracket and equals characters.
	// They pass through the pipeline verbatim.
	STRUCTURAL TokenKind = iota
	// TERM tokens are the maximal substrings between structural characters.
	// Each is parsed against the term grammar by ProcessTerm.
	TERM
)

// Token associates a piece of the normalized equation with its kind.
type Token struct {
	Kind TokenKind
	Text string
}

// structural determines which characters split the equation into terms.
// Note that "^" is deliberately absent: an exponent stays attached to its
// term.
func structural(c rune) bool {
	switch c {
	case '+', '-', '(', ')', '[', ']', '{', '}', '=':
		return true
	}
	//
	return false
}

// Tokenize splits a normalized equation into an ordered sequence of
// structural and term tokens.  Structural characters become their own tokens;
// the substrings between them become term tokens.  Empty substrings (adjacent
// structural characters, or a leading/trailing split) are dropped.  Token
// order is significant and preserved exactly, since the assembler
// concatenates tokens back in sequence.
func Tokenize(equation string) []Token {
	var (
		tokens []Token
		start  = 0
		runes  = []rune(equation)
	)
	//
	for i, c := range runes {
		if structural(c) {
			if i > start {
				tokens = append(tokens, Token{TERM, string(runes[start:i])})
			}
			//
			tokens = append(tokens, Token{STRUCTURAL, string(c)})
			start = i + 1
		}
	}
	// Flush trailing term (if any)
	if len(runes) > start {
		tokens = append(tokens, Token{TERM, string(runes[start:])})
	}
	//
	return tokens
}

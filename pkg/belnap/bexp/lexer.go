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
package bexp

import "fmt"

// Span identifies a range of characters in the string being parsed.
type Span struct {
	start int
	end   int
}

// NewSpan constructs a span over a given range of characters.
func NewSpan(start, end int) Span {
	return Span{start, end}
}

// Start returns the starting index of this span.
func (p Span) Start() int {
	return p.start
}

// End returns the index one past the last character of this span.
func (p Span) End() int {
	return p.end
}

// SyntaxError is a structured error which retains the range of the original
// string where an error occurred, along with an error message.
type SyntaxError struct {
	span Span
	msg  string
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d:%s", p.span.start, p.span.end, p.msg)
}

// Token associates a token kind with a given range of characters in the
// string being scanned.
type Token struct {
	Kind uint
	Span Span
}

// scanner matches a prefix of the given input, returning the number of
// characters matched (zero for no match).
type scanner func([]rune) int

// lexRule is simply a rule for associating groups of characters with a given
// token kind.
type lexRule struct {
	scan scanner
	kind uint
}

func rule(scan scanner, kind uint) lexRule {
	return lexRule{scan, kind}
}

// unit matches exactly the given sequence of characters.
func unit(chars ...rune) scanner {
	return func(input []rune) int {
		if len(input) < len(chars) {
			return 0
		}
		//
		for i, c := range chars {
			if input[i] != c {
				return 0
			}
		}
		//
		return len(chars)
	}
}

// many matches one or more characters accepted by the given predicate.
func many(accept func(rune) bool) scanner {
	return func(input []rune) int {
		n := 0
		//
		for n < len(input) && accept(input[n]) {
			n++
		}
		//
		return n
	}
}

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\t'
}

func isWordStart(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordRest(c rune) bool {
	return isWordStart(c) || (c >= '0' && c <= '9')
}

// word matches identifiers and truth value literals, which share a shape.
func word(input []rune) int {
	if len(input) == 0 || !isWordStart(input[0]) {
		return 0
	}
	//
	return 1 + many(isWordRest)(input[1:])
}

// scanAll tokenises the entire input, returning the tokens scanned along with
// the index at which scanning stopped.  A final END_OF token is appended
// whenever the whole input was consumed, hence the parser can always rely on
// a lookahead token being present.
func scanAll(input []rune, rules []lexRule) ([]Token, int) {
	var (
		tokens []Token
		index  int
	)
	//
outer:
	for index < len(input) {
		for _, r := range rules {
			if n := r.scan(input[index:]); n > 0 {
				span := NewSpan(index, index+n)
				// Drop whitespace, keep everything else
				if r.kind != WHITESPACE {
					tokens = append(tokens, Token{r.kind, span})
				}
				//
				index += n
				//
				continue outer
			}
		}
		// No rule matched
		return tokens, index
	}
	//
	tokens = append(tokens, Token{END_OF, NewSpan(index, index)})
	//
	return tokens, index
}

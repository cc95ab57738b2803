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

import (
	"slices"

	"github.com/Coder-Spirit/belnapian/pkg/belnap"
)

// Parse a given input string into a truth expression.  The environment
// determines the set of permitted variable names.
func Parse(input string, environment func(string) bool) (Term, []SyntaxError) {
	var (
		chars         = []rune(input)
		tokens, index = scanAll(chars, rules)
	)
	// Check whether anything was left (if so this is an error)
	if index != len(chars) {
		err := SyntaxError{NewSpan(index, len(chars)), "unknown text encountered"}
		return nil, []SyntaxError{err}
	}
	//
	parser := &Parser{environment, chars, tokens, 0}
	// Parse term
	p, errs := parser.parseTerm()
	// Check all parsed
	if len(errs) == 0 && !parser.Done() {
		return nil, parser.syntaxErrors(parser.lookahead(), "unknown token")
	}
	// All good!
	return p, errs
}

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// LBRACE signals "left brace"
const LBRACE uint = 2

// RBRACE signals "right brace"
const RBRACE uint = 3

// WORD signals a truth value literal or a variable.
const WORD uint = 4

// EQUALS signals an equality
const EQUALS uint = 5

// NOT signals a negation
const NOT uint = 6

// OR represents disjunction
const OR uint = 7

// AND represents conjunction
const AND uint = 8

// SUPERPOSITION represents the merging of evidence
const SUPERPOSITION uint = 9

// ANNIHILATION represents the cancelling of evidence
const ANNIHILATION uint = 10

// CONNECTIVES captures the set of binary connectives.
var CONNECTIVES = []uint{AND, OR, SUPERPOSITION, ANNIHILATION}

// lexing rules
var rules []lexRule = []lexRule{
	rule(unit('('), LBRACE),
	rule(unit(')'), RBRACE),
	rule(unit('<', '+', '>'), SUPERPOSITION),
	rule(unit('<', '-', '>'), ANNIHILATION),
	rule(unit('=', '='), EQUALS),
	rule(unit('|', '|'), OR),
	rule(unit('∨'), OR),
	rule(unit('&', '&'), AND),
	rule(unit('∧'), AND),
	rule(unit('!'), NOT),
	rule(unit('¬'), NOT),
	rule(many(isWhitespace), WHITESPACE),
	rule(word, WORD),
}

// Parser provides a general-purpose parser for truth expressions.
type Parser struct {
	environment func(string) bool
	chars       []rune
	tokens      []Token
	// Position within the tokens
	index int
}

// Done determines whether or not the parser has parsed all the available
// tokens.
func (p *Parser) Done() bool {
	return p.index+1 >= len(p.tokens)
}

func (p *Parser) parseTerm() (Term, []SyntaxError) {
	var (
		tmp        Term
		term, errs = p.parseCondition()
	)
	// match all terms
	terms := []Term{term}
	// initialise lookahead
	kind := p.lookahead().Kind
	//
	for len(errs) == 0 && !p.follows(END_OF, RBRACE) {
		// Sanity check
		if !p.follows(CONNECTIVES...) {
			return tmp, p.syntaxErrors(p.lookahead(), "expected connective")
		} else if !p.follows(kind) {
			return tmp, p.syntaxErrors(p.lookahead(), "braces required")
		}
		// Consume connective
		p.expect(p.lookahead().Kind)
		//
		tmp, errs = p.parseCondition()
		// Accumulate arguments
		terms = append(terms, tmp)
	}
	//
	switch {
	case len(errs) != 0:
		return term, errs
	case len(terms) == 1:
		return term, nil
	case kind == OR:
		return &Disjunct{terms}, nil
	case kind == AND:
		return &Conjunct{terms}, nil
	case kind == SUPERPOSITION:
		return &Superposition{terms}, nil
	case kind == ANNIHILATION:
		return &Annihilation{terms}, nil
	}
	//
	panic("unreachable")
}

func (p *Parser) parseCondition() (Term, []SyntaxError) {
	lhs, errs := p.parseUnitTerm()
	// Check for infix equality
	if len(errs) != 0 || !p.follows(EQUALS) {
		// Not a binary condition
		return lhs, errs
	}
	// Accept binary condition
	p.expect(EQUALS)
	// Parse rhs
	rhs, errs := p.parseUnitTerm()
	//
	if len(errs) != 0 {
		return lhs, errs
	}
	// Equality does not chain
	if p.follows(EQUALS) {
		return lhs, p.syntaxErrors(p.lookahead(), "braces required")
	}
	// Done
	return &Equation{lhs, rhs}, nil
}

func (p *Parser) parseUnitTerm() (Term, []SyntaxError) {
	token := p.lookahead()
	//
	switch token.Kind {
	case LBRACE:
		return p.parseBracketedTerm()
	case NOT:
		return p.parseNegatedTerm()
	case WORD:
		return p.parseWord()
	}
	//
	return nil, p.syntaxErrors(token, "unknown expression")
}

func (p *Parser) parseBracketedTerm() (Term, []SyntaxError) {
	p.expect(LBRACE)
	//
	term, errs := p.parseTerm()
	//
	if len(errs) == 0 && !p.match(RBRACE) {
		return nil, p.syntaxErrors(p.lookahead(), "expected ')'")
	}
	//
	return term, errs
}

func (p *Parser) parseNegatedTerm() (Term, []SyntaxError) {
	p.expect(NOT)
	//
	term, errs := p.parseUnitTerm()
	//
	if len(errs) != 0 {
		return term, errs
	}
	//
	return &Not{term}, nil
}

// parseWord resolves a word either as a truth value literal or, failing that,
// as a variable known to the environment.
func (p *Parser) parseWord() (Term, []SyntaxError) {
	id := p.expect(WORD)
	name := p.string(id)
	// Check for literal
	if value, err := belnap.ParseExtended(name); err == nil {
		return &Literal{value}, nil
	}
	// Check variable valid
	if p.environment(name) {
		return &Variable{name}, nil
	}
	// Nope
	return nil, p.syntaxErrors(id, "unknown variable")
}

// Get the text representing the given token as a string.
func (p *Parser) string(token Token) string {
	start, end := token.Span.Start(), token.Span.End()
	return string(p.chars[start:end])
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() Token {
	return p.tokens[p.index]
}

func (p *Parser) expect(kind uint) Token {
	if p.lookahead().Kind != kind {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *Parser) syntaxErrors(token Token, msg string) []SyntaxError {
	return []SyntaxError{{token.Span, msg}}
}

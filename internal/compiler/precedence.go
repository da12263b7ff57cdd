package compiler

import "github.com/lookbusy1344/poke/internal/lexer"

// Precedence levels, lowest to highest (spec.md §4.3).
type Precedence int

const (
	PrecNone Precedence = iota
	PrecAssignment
	PrecOr
	PrecAnd
	PrecEquality
	PrecComparison
	PrecTerm
	PrecFactor
	PrecUnary
	PrecCall
	PrecPrimary
)

type (
	prefixFn func(p *Parser) error
	infixFn  func(p *Parser) error
)

// rule is one entry of the fixed, TokenKind-indexed Pratt table: a
// prefix handler, an infix handler, and the infix binding precedence.
// Static array indexing is the contract (spec.md §9) — no runtime map
// lookups on the hot path.
type rule struct {
	prefix prefixFn
	infix  infixFn
	prec   Precedence
}

var rules [lexer.NumKinds]rule

func init() {
	rules[lexer.KindParL] = rule{prefix: (*Parser).grouping}
	rules[lexer.KindSub] = rule{prefix: (*Parser).unary, infix: (*Parser).binary, prec: PrecTerm}
	rules[lexer.KindAdd] = rule{infix: (*Parser).binary, prec: PrecTerm}
	rules[lexer.KindMul] = rule{infix: (*Parser).binary, prec: PrecFactor}
	rules[lexer.KindDiv] = rule{infix: (*Parser).binary, prec: PrecFactor}
	rules[lexer.KindInt] = rule{prefix: (*Parser).number}
	rules[lexer.KindFloat] = rule{prefix: (*Parser).number}
	rules[lexer.KindByte] = rule{prefix: (*Parser).number}
}

func ruleFor(kind lexer.TokenKind) rule { return rules[kind] }

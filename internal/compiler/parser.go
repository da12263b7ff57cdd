// Package compiler implements the single-pass Pratt/precedence-climbing
// compiler that drives the lexer and emits bytecode directly into a
// Chunk — there is no intermediate AST.
package compiler

import (
	"github.com/lookbusy1344/poke/internal/bytecode"
	"github.com/lookbusy1344/poke/internal/lexer"
)

// Parser holds single-pass compiler state: the two-token window the
// Pratt driver needs, an owned lexer, and the chunk being written to.
type Parser struct {
	lex     *lexer.Lexer
	chunk   *bytecode.Chunk
	prev    lexer.Token
	current lexer.Token
}

// Compile compiles src (a lexer.ByteSource) into a new Chunk named
// name. On a parse error the chunk still ends with OP_RETURN so it
// remains disassemblable (spec.md §4.3's finalisation rule).
func Compile(src lexer.ByteSource, name string) (*bytecode.Chunk, error) {
	chunk := bytecode.New(name)
	p := &Parser{
		lex:     lexer.New(src),
		chunk:   chunk,
		prev:    lexer.Token{Kind: lexer.KindEoS},
		current: lexer.Token{Kind: lexer.KindEoS},
	}

	if err := p.advance(); err != nil {
		p.emitReturn()
		return chunk, err
	}

	err := p.parseExpression()
	if err == nil {
		err = p.consume(lexer.KindEoS)
	}
	p.emitReturn()
	return chunk, err
}

func (p *Parser) line() int { return p.lex.Line() }

// advance moves the token window forward: current becomes prev, and a
// fresh token is pulled from the lexer into current.
func (p *Parser) advance() error {
	p.prev = p.current
	tok, err := p.lex.Advance()
	if err != nil {
		lexErr := err.(*lexer.Error)
		return &Error{Kind: LexError, Line: lexErr.Line, Lex: lexErr}
	}
	p.current = tok
	return nil
}

func (p *Parser) consume(kind lexer.TokenKind) error {
	if p.current.Kind == kind {
		return p.advance()
	}
	return &Error{Kind: UnexpectedToken, Line: p.line(), Token: p.current}
}

func (p *Parser) emitByte(b byte) { p.chunk.WriteByte(b, p.line()) }

func (p *Parser) emitOp(op bytecode.Opcode) { p.emitByte(byte(op)) }

func (p *Parser) emitReturn() { p.emitOp(bytecode.OpReturn) }

func (p *Parser) parseExpression() error { return p.parsePrecedence(PrecAssignment) }

// parsePrecedence is the Pratt driver: consume the prefix token,
// dispatch its prefix rule, then keep folding infix operators whose
// precedence is at least prec.
func (p *Parser) parsePrecedence(prec Precedence) error {
	if err := p.advance(); err != nil {
		return err
	}

	prefix := ruleFor(p.prev.Kind).prefix
	if prefix == nil {
		return &Error{Kind: ExpectedExpression, Line: p.line()}
	}
	if err := prefix(p); err != nil {
		return err
	}

	for ruleFor(p.current.Kind).prec >= prec && ruleFor(p.current.Kind).infix != nil {
		if err := p.advance(); err != nil {
			return err
		}
		infix := ruleFor(p.prev.Kind).infix
		if err := infix(p); err != nil {
			return err
		}
	}
	return nil
}

// number is the prefix rule for Int/Float/Byte literals.
func (p *Parser) number() error {
	var v bytecode.Value
	switch p.prev.Kind {
	case lexer.KindInt:
		v = bytecode.Int(p.prev.Int)
	case lexer.KindFloat:
		v = bytecode.Float(p.prev.Float)
	case lexer.KindByte:
		v = bytecode.Byte(p.prev.Byte)
	}
	return p.chunk.WriteConstant(v, p.line())
}

// grouping is the prefix rule for '(': parse the inner expression and
// consume the closing paren. No bytecode is emitted for the
// parentheses themselves.
func (p *Parser) grouping() error {
	if err := p.parseExpression(); err != nil {
		return err
	}
	return p.consume(lexer.KindParR)
}

// unary is the prefix rule for '-': parse the operand at Unary
// precedence (so it binds tighter than any binary operator), then
// emit the negate opcode.
func (p *Parser) unary() error {
	opKind := p.prev.Kind
	if err := p.parsePrecedence(PrecUnary); err != nil {
		return err
	}
	switch opKind {
	case lexer.KindSub:
		p.emitOp(bytecode.OpNegate)
	}
	return nil
}

// binary is the infix rule for '+ - * /': parse the right operand at
// one precedence level higher than this operator's own, so the
// operator is left-associative, then emit the corresponding opcode.
func (p *Parser) binary() error {
	opKind := p.prev.Kind
	r := ruleFor(opKind)
	if err := p.parsePrecedence(r.prec + 1); err != nil {
		return err
	}
	switch opKind {
	case lexer.KindAdd:
		p.emitOp(bytecode.OpAdd)
	case lexer.KindSub:
		p.emitOp(bytecode.OpSubtract)
	case lexer.KindMul:
		p.emitOp(bytecode.OpMultiply)
	case lexer.KindDiv:
		p.emitOp(bytecode.OpDivide)
	}
	return nil
}

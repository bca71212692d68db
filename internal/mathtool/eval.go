package mathtool

import (
	"fmt"
	"strconv"
	"strings"
)

// Evaluate 对只含数字、+ - * /、括号和小数点的表达式做递归下降求值。
// 这是通用代码求值器的受限替代：任何其他字符都是解析错误。
// Evaluate runs a recursive-descent evaluation over an expression of
// digits, + - * /, parentheses and decimal points. It is the
// restricted replacement for a general code evaluator: any other
// character is a parse error.
func Evaluate(expr string) (float64, error) {
	p := &exprParser{input: expr}
	p.skipSpaces()
	if p.eof() {
		return 0, fmt.Errorf("empty expression")
	}

	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpaces()
	if !p.eof() {
		return 0, fmt.Errorf("unexpected character %q at position %d", p.peek(), p.pos)
	}
	return v, nil
}

// 文法 / Grammar:
//   expr   = term { ("+" | "-") term }
//   term   = factor { ("*" | "/") factor }
//   factor = number | "(" expr ")" | ("+" | "-") factor
type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpaces()
		switch p.peek() {
		case '+':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v += rhs
		case '-':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v -= rhs
		default:
			return v, nil
		}
	}
}

func (p *exprParser) parseTerm() (float64, error) {
	v, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpaces()
		switch p.peek() {
		case '*':
			p.pos++
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			v *= rhs
		case '/':
			p.pos++
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			v /= rhs
		default:
			return v, nil
		}
	}
}

func (p *exprParser) parseFactor() (float64, error) {
	p.skipSpaces()

	switch p.peek() {
	case '+':
		p.pos++
		return p.parseFactor()
	case '-':
		p.pos++
		v, err := p.parseFactor()
		return -v, err
	case '(':
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		p.skipSpaces()
		if p.peek() != ')' {
			return 0, fmt.Errorf("missing closing parenthesis at position %d", p.pos)
		}
		p.pos++
		return v, nil
	}
	return p.parseNumber()
}

func (p *exprParser) parseNumber() (float64, error) {
	start := p.pos
	for !p.eof() {
		c := p.input[p.pos]
		if (c >= '0' && c <= '9') || c == '.' {
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return 0, fmt.Errorf("expected number at position %d", start)
	}

	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("parse number %q: %w", p.input[start:p.pos], err)
	}
	return v, nil
}

func (p *exprParser) skipSpaces() {
	for !p.eof() && strings.ContainsRune(" \t", rune(p.input[p.pos])) {
		p.pos++
	}
}

func (p *exprParser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.input[p.pos]
}

func (p *exprParser) eof() bool {
	return p.pos >= len(p.input)
}

package lexer

import (
	"strconv"
	"unicode"

	"github.com/pkg/errors"

	"acdc/internal/token"
)

// Lexer converts one statement line into tokens.
type Lexer struct {
	src []rune
	pos int
}

// New creates a new lexer for the given source line.
func New(src string) *Lexer {
	return &Lexer{src: []rune(src)}
}

// Lex tokenizes the whole input and returns a token slice ending in EOF.
// A blank or comment-only line yields just the EOF token.
func Lex(src string) ([]token.Token, error) {
	return New(src).Lex()
}

func (l *Lexer) Lex() ([]token.Token, error) {
	var tokens []token.Token

	for {
		tok, err := l.nextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) nextToken() (token.Token, error) {
	l.skipWhitespace()

	if l.isAtEnd() || l.peek() == '#' {
		return token.Token{Type: token.EOF}, nil
	}

	ch := l.peek()

	if isLetter(ch) {
		return l.lexIdentifierOrKeyword()
	}

	if isDigit(ch) {
		return l.lexNumber()
	}

	return l.lexSymbol()
}

func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) advance() rune {
	if l.isAtEnd() {
		return 0
	}
	ch := l.src[l.pos]
	l.pos++
	return ch
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' {
			l.advance()
		} else {
			break
		}
	}
}

// lexIdentifierOrKeyword scans one word. The statement keywords fold the
// identifier that must follow them into the keyword token's Name payload, so
// "print x" becomes a single PRINT token.
func (l *Lexer) lexIdentifierOrKeyword() (token.Token, error) {
	word := l.lexWord()

	switch word {
	case "print":
		name, err := l.lexTargetName(word)
		if err != nil {
			return token.Token{}, err
		}
		return token.Token{Type: token.PRINT, Name: name}, nil
	case "int":
		name, err := l.lexTargetName(word)
		if err != nil {
			return token.Token{}, err
		}
		return token.Token{Type: token.INTDEC, Name: name}, nil
	default:
		return token.Token{Type: token.VARREF, Lexeme: word}, nil
	}
}

func (l *Lexer) lexTargetName(keyword string) (string, error) {
	l.skipWhitespace()
	if l.isAtEnd() || !isLetter(l.peek()) {
		return "", errors.Errorf("expected identifier after %q", keyword)
	}
	return l.lexWord(), nil
}

func (l *Lexer) lexWord() string {
	start := l.pos
	for !l.isAtEnd() && (isLetter(l.peek()) || isDigit(l.peek())) {
		l.advance()
	}
	return string(l.src[start:l.pos])
}

func (l *Lexer) lexNumber() (token.Token, error) {
	start := l.pos
	for !l.isAtEnd() && isDigit(l.peek()) {
		l.advance()
	}
	lex := string(l.src[start:l.pos])

	v, err := strconv.ParseInt(lex, 10, 64)
	if err != nil {
		return token.Token{}, errors.Wrapf(err, "bad integer literal %q", lex)
	}
	return token.Token{Type: token.INTLIT, IntValue: &v}, nil
}

func (l *Lexer) lexSymbol() (token.Token, error) {
	ch := l.advance()

	switch ch {
	case '=':
		return token.Token{Type: token.ASSIGN}, nil
	case '+':
		return token.Token{Type: token.PLUS}, nil
	case '-':
		return token.Token{Type: token.MINUS}, nil
	case '*':
		return token.Token{Type: token.TIMES}, nil
	case '/':
		return token.Token{Type: token.DIVIDE}, nil
	case '^':
		return token.Token{Type: token.EXPONENT}, nil
	case '(':
		return token.Token{Type: token.LPAREN}, nil
	case ')':
		return token.Token{Type: token.RPAREN}, nil
	}

	return token.Token{}, errors.Errorf("unexpected character %q", ch)
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isDigit(ch rune) bool {
	return unicode.IsDigit(ch)
}

package lexer

import (
	"github.com/go-smlfmt/smlfmt/internal/diag"
	"github.com/go-smlfmt/smlfmt/internal/token"
)

// scanNumber recognizes the numeric literal forms from spec.md §4.1:
// integer, hexadecimal, word, and real. The literal text is always taken
// as a slice of the original input (not rebuilt rune-by-rune) so the
// tokenization round-trip invariant holds trivially.
func (l *Lexer) scanNumber(start token.Position) (token.Token, *diag.Error) {
	if l.ch == '~' {
		l.readChar()
	}

	// Word literals: 0w123, 0wx2A.
	if l.ch == '0' && (l.peekChar() == 'w' || l.peekChar() == 'W') {
		l.readChar() // '0'
		l.readChar() // 'w'
		if l.ch == 'x' || l.ch == 'X' {
			l.readChar()
			if !isHexDigit(l.ch) {
				return l.numberError(start, "malformed hexadecimal word literal")
			}
			for isHexDigit(l.ch) {
				l.readChar()
			}
			return l.finishNumber(start, token.WORD)
		}
		if !isDigit(l.ch) {
			return l.numberError(start, "malformed word literal")
		}
		for isDigit(l.ch) {
			l.readChar()
		}
		return l.finishNumber(start, token.WORD)
	}

	// Hexadecimal integers: 0x2A.
	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		l.readChar() // '0'
		l.readChar() // 'x'
		if !isHexDigit(l.ch) {
			return l.numberError(start, "malformed hexadecimal literal")
		}
		for isHexDigit(l.ch) {
			l.readChar()
		}
		return l.finishNumber(start, token.INT)
	}

	for isDigit(l.ch) {
		l.readChar()
	}

	isReal := false
	if l.ch == '.' && isDigit(l.peekChar()) {
		isReal = true
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		lookahead := 0
		next := l.peekCharAt(lookahead)
		negExp := false
		if next == '~' {
			negExp = true
			lookahead++
			next = l.peekCharAt(lookahead)
		}
		if isDigit(next) {
			isReal = true
			l.readChar() // 'e'
			if negExp {
				l.readChar() // '~'
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}

	if isReal {
		return l.finishNumber(start, token.REAL)
	}
	return l.finishNumber(start, token.INT)
}

func (l *Lexer) finishNumber(start token.Position, kind token.Kind) (token.Token, *diag.Error) {
	lit := l.input[start.Offset:l.pos]
	return l.addPendingTo(token.Token{Kind: kind, Literal: lit, Span: token.Span{Start: start, End: l.currentPos()}}), nil
}

func (l *Lexer) numberError(start token.Position, what string) (token.Token, *diag.Error) {
	err := diag.New(diag.KindLex, start, what)
	l.err = err
	return token.Token{}, err
}

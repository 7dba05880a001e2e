package lexer

import (
	"github.com/go-smlfmt/smlfmt/internal/diag"
	"github.com/go-smlfmt/smlfmt/internal/token"
)

// scanString reads a double-quoted string literal, including the standard
// escape set from spec.md §4.1: \n \t \" \\ \^C \ddd \uXXXX, and line
// continuations "\...\" that swallow intervening whitespace/newlines.
func (l *Lexer) scanString(start token.Position) (token.Token, *diag.Error) {
	l.readChar() // opening quote
	for {
		switch {
		case l.ch == '"':
			l.readChar()
			return l.finishNumber(start, token.STRING)
		case l.ch == 0 || l.ch == '\n':
			err := diag.Explained(diag.KindLex, start, "unterminated string literal",
				"a \"\\\"\" was opened here but the line ended before a closing quote")
			l.err = err
			return token.Token{}, err
		case l.ch == '\\':
			if err := l.scanEscape(start); err != nil {
				return token.Token{}, err
			}
		default:
			l.readChar()
		}
	}
}

// scanEscape consumes one escape sequence (or line-continuation gap)
// starting at the backslash. On success l.ch is positioned just past it.
func (l *Lexer) scanEscape(start token.Position) *diag.Error {
	escPos := l.currentPos()
	l.readChar() // consume '\'

	switch {
	case l.ch == 'n', l.ch == 't', l.ch == '"', l.ch == '\\':
		l.readChar()
		return nil
	case l.ch == '^':
		l.readChar()
		if l.ch < '@' || l.ch > '_' {
			err := diag.New(diag.KindLex, escPos, "invalid control escape")
			l.err = err
			return err
		}
		l.readChar()
		return nil
	case l.ch == 'u':
		l.readChar()
		for i := 0; i < 4; i++ {
			if !isHexDigit(l.ch) {
				err := diag.New(diag.KindLex, escPos, "invalid \\u escape: expected 4 hex digits")
				l.err = err
				return err
			}
			l.readChar()
		}
		return nil
	case isDigit(l.ch):
		for i := 0; i < 3; i++ {
			if !isDigit(l.ch) {
				err := diag.New(diag.KindLex, escPos, "invalid decimal escape: expected 3 digits")
				l.err = err
				return err
			}
			l.readChar()
		}
		return nil
	case isWhitespaceGap(l.ch):
		// Line continuation: \<whitespace incl newline>*\
		for isWhitespaceGap(l.ch) {
			if l.ch == '\n' {
				l.newline()
			}
			l.readChar()
		}
		if l.ch != '\\' {
			err := diag.New(diag.KindLex, escPos, "unterminated line continuation in string literal")
			l.err = err
			return err
		}
		l.readChar()
		return nil
	default:
		err := diag.New(diag.KindLex, escPos, "invalid escape sequence")
		l.err = err
		return err
	}
}

func isWhitespaceGap(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f'
}

// scanCharLiteral reads #"a" style character literals.
func (l *Lexer) scanCharLiteral(start token.Position) (token.Token, *diag.Error) {
	l.readChar() // '#'
	l.readChar() // opening '"'
	if l.ch == '\\' {
		if err := l.scanEscape(start); err != nil {
			return token.Token{}, err
		}
	} else if l.ch == '"' {
		err := diag.New(diag.KindLex, start, "empty character literal")
		l.err = err
		return token.Token{}, err
	} else {
		l.readChar()
	}
	if l.ch != '"' {
		err := diag.New(diag.KindLex, start, "character literal must contain exactly one character")
		l.err = err
		return token.Token{}, err
	}
	l.readChar()
	return l.finishNumber(start, token.CHAR)
}

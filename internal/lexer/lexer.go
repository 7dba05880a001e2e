// Package lexer turns source text into a flat, restartable token sequence.
//
// The lexer is a character-by-character state machine grounded on the
// teacher's internal/lexer.Lexer: a readChar/peekChar cursor over runes,
// one handler function per leading character class, and a Position that
// advances through the same readChar call that consumes a rune.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-smlfmt/smlfmt/internal/diag"
	"github.com/go-smlfmt/smlfmt/internal/token"
)

// symbolicChars is the full alphabet of symbolic-identifier characters
// (spec.md §4.1). "*" is included: it is an ordinary symbolic identifier
// with a predefined fixity, not a reserved symbol.
const symbolicChars = "!%&$#+-/:<=>?@\\~'^|*"

// reservedSymbols maps an exact symbolic run to its reserved Kind. A run
// that does not match one of these is a SYMBOLIC identifier instead.
var reservedSymbols = map[string]token.Kind{
	":":  token.COLON,
	"|":  token.PIPE,
	"=":  token.EQUALS,
	"=>": token.DARROW,
	"->": token.ARROW,
	"#":  token.HASH,
	":>": token.COLONGT,
}

// Lexer is a single-use scanner over one source buffer.
type Lexer struct {
	source string // short name used in diagnostics, e.g. a file path
	input  string

	pos     int // byte offset of ch
	readPos int // byte offset of the next rune
	line    int
	column  int
	ch      rune

	pending []token.CommentSpan // comments collected since the last real token
	err     *diag.Error
}

// New creates a Lexer over input, identified as source in diagnostics.
// A UTF-8 BOM at the start of input is stripped, matching how source files
// are read on disk.
func New(source, input string) *Lexer {
	if strings.HasPrefix(input, "\xef\xbb\xbf") {
		input = input[len("\xef\xbb\xbf"):]
	}
	l := &Lexer{source: source, input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// Result is the outcome of lexing an entire source buffer: on success Err
// is nil and Tokens ends with an EOF token; on failure Tokens holds every
// token produced before the error and Err describes what went wrong.
type Result struct {
	Tokens []token.Token
	Err    *diag.Error
}

// OK reports whether lexing completed without error.
func (r Result) OK() bool { return r.Err == nil }

// Lex scans source to completion, returning every token produced.
func Lex(source, input string) Result {
	l := New(source, input)
	var tokens []token.Token
	for {
		tok, err := l.next()
		if err != nil {
			return Result{Tokens: tokens, Err: err}
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return Result{Tokens: tokens}
		}
	}
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
		l.pos = l.readPos
		l.column++
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPos:])
	if r == '\n' {
		// handled by caller via newline bookkeeping in skipWhitespace
	}
	l.ch = r
	l.pos = l.readPos
	l.readPos += size
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

func (l *Lexer) peekCharAt(offset int) rune {
	p := l.readPos
	var r rune
	for i := 0; i <= offset; i++ {
		if p >= len(l.input) {
			return 0
		}
		var size int
		r, size = utf8.DecodeRuneInString(l.input[p:])
		p += size
	}
	return r
}

func (l *Lexer) currentPos() token.Position {
	return token.Position{Source: l.source, Offset: l.pos, Line: l.line, Column: l.column}
}

func (l *Lexer) newline() {
	l.line++
	l.column = 0
}

// isLetter reports whether ch can start an identifier. A leading underscore
// is reserved as the wildcard token and never starts an identifier.
func isLetter(ch rune) bool {
	return unicode.IsLetter(ch)
}

func isIdentCont(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '\'' || ch == '_'
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isSymbolic(ch rune) bool {
	return strings.ContainsRune(symbolicChars, ch)
}

func (l *Lexer) skipPlainWhitespace() {
	for l.ch == '\n' || l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\f' {
		if l.ch == '\n' {
			l.newline()
		}
		l.readChar()
	}
}

// readBlockComment consumes a (* ... *) comment starting at l.ch == '('.
// Block comments nest to arbitrary depth.
func (l *Lexer) readBlockComment(start token.Position) (string, *diag.Error) {
	var b strings.Builder
	depth := 0

	consume := func() {
		b.WriteRune(l.ch)
		if l.ch == '\n' {
			l.newline()
		}
		l.readChar()
	}

	for {
		if l.ch == 0 {
			return "", diag.Explained(diag.KindLex, start, "unterminated comment",
				"a \"(*\" was opened here but never closed with a matching \"*)\"")
		}
		if l.ch == '(' && l.peekChar() == '*' {
			consume()
			consume()
			depth++
			continue
		}
		if l.ch == '*' && l.peekChar() == ')' {
			consume()
			consume()
			depth--
			if depth == 0 {
				return b.String(), nil
			}
			continue
		}
		consume()
	}
}

func (l *Lexer) addPendingTo(tok token.Token) token.Token {
	if len(l.pending) > 0 {
		tok.LeadingComments = l.pending
		l.pending = nil
	}
	return tok
}

// next scans and returns the single next significant token, or a
// diagnostic if the input could not be classified.
func (l *Lexer) next() (token.Token, *diag.Error) {
	if l.err != nil {
		return token.Token{}, l.err
	}
	l.skipPlainWhitespace()

	start := l.currentPos()

	if l.ch == '(' && l.peekChar() == '*' {
		text, err := l.readBlockComment(start)
		if err != nil {
			l.err = err
			return token.Token{}, err
		}
		span := token.Span{Start: start, End: l.currentPos()}
		l.pending = append(l.pending, token.CommentSpan{Text: text, Span: span, Block: true})
		return token.Token{Kind: token.BLOCKCOMMENT, Literal: text, Span: span}, nil
	}

	if l.ch == 0 {
		return l.addPendingTo(token.Token{Kind: token.EOF, Span: token.Span{Start: start, End: start}}), nil
	}

	switch {
	case l.ch == '$' && l.peekChar() == '(':
		return l.scanMLBPath(start)
	case isLetter(l.ch):
		return l.scanIdentifier(start)
	case l.ch == '_':
		l.readChar()
		return l.addPendingTo(token.Token{Kind: token.UNDERSCORE, Literal: "_", Span: token.Span{Start: start, End: l.currentPos()}}), nil
	case l.ch == '\'':
		return l.scanTypeVar(start)
	case isDigit(l.ch):
		return l.scanNumber(start)
	case l.ch == '~' && isDigit(l.peekChar()):
		return l.scanNumber(start)
	case l.ch == '"':
		return l.scanString(start)
	case l.ch == '#' && l.peekChar() == '"':
		return l.scanCharLiteral(start)
	case l.ch == '.':
		return l.scanDot(start)
	case isSingleCharPunct(l.ch):
		return l.scanSingleCharPunct(start)
	case isSymbolic(l.ch):
		return l.scanSymbolic(start)
	default:
		ch := l.ch
		l.readChar()
		err := diag.New(diag.KindLex, start, "illegal character "+quoteRune(ch))
		l.err = err
		return token.Token{}, err
	}
}

func quoteRune(r rune) string {
	return "'" + string(r) + "'"
}

func isSingleCharPunct(ch rune) bool {
	switch ch {
	case '(', ')', '[', ']', '{', '}', ',', ';':
		return true
	}
	return false
}

func (l *Lexer) scanSingleCharPunct(start token.Position) (token.Token, *diag.Error) {
	var kind token.Kind
	switch l.ch {
	case '(':
		kind = token.LPAREN
	case ')':
		kind = token.RPAREN
	case '[':
		kind = token.LBRACK
	case ']':
		kind = token.RBRACK
	case '{':
		kind = token.LBRACE
	case '}':
		kind = token.RBRACE
	case ',':
		kind = token.COMMA
	case ';':
		kind = token.SEMICOLON
	}
	lit := string(l.ch)
	l.readChar()
	return l.addPendingTo(token.Token{Kind: kind, Literal: lit, Span: token.Span{Start: start, End: l.currentPos()}}), nil
}

func (l *Lexer) scanDot(start token.Position) (token.Token, *diag.Error) {
	if l.peekChar() == '.' && l.peekCharAt(1) == '.' {
		l.readChar()
		l.readChar()
		l.readChar()
		return l.addPendingTo(token.Token{Kind: token.DOTDOTDOT, Literal: "...", Span: token.Span{Start: start, End: l.currentPos()}}), nil
	}
	l.readChar()
	return l.addPendingTo(token.Token{Kind: token.DOT, Literal: ".", Span: token.Span{Start: start, End: l.currentPos()}}), nil
}

func (l *Lexer) scanSymbolic(start token.Position) (token.Token, *diag.Error) {
	var b strings.Builder
	for isSymbolic(l.ch) {
		b.WriteRune(l.ch)
		l.readChar()
	}
	lit := b.String()
	kind := token.SYMBOLIC
	if k, ok := reservedSymbols[lit]; ok {
		kind = k
	}
	return l.addPendingTo(token.Token{Kind: kind, Literal: lit, Span: token.Span{Start: start, End: l.currentPos()}}), nil
}

func (l *Lexer) scanIdentifier(start token.Position) (token.Token, *diag.Error) {
	var b strings.Builder
	for isIdentCont(l.ch) {
		b.WriteRune(l.ch)
		l.readChar()
	}
	lit := b.String()
	kind := token.IDENT
	if k, ok := token.LookupKeyword(lit); ok {
		kind = k
	}
	return l.addPendingTo(token.Token{Kind: kind, Literal: lit, Span: token.Span{Start: start, End: l.currentPos()}}), nil
}

// scanTypeVar scans 'a, ''a, 'foo123 etc. A leading prime always marks a
// type variable, never a symbolic identifier.
func (l *Lexer) scanTypeVar(start token.Position) (token.Token, *diag.Error) {
	var b strings.Builder
	for l.ch == '\'' {
		b.WriteRune(l.ch)
		l.readChar()
	}
	for isIdentCont(l.ch) && l.ch != '\'' {
		b.WriteRune(l.ch)
		l.readChar()
	}
	lit := b.String()
	return l.addPendingTo(token.Token{Kind: token.TYVAR, Literal: lit, Span: token.Span{Start: start, End: l.currentPos()}}), nil
}

func (l *Lexer) scanMLBPath(start token.Position) (token.Token, *diag.Error) {
	var b strings.Builder
	b.WriteRune(l.ch) // '$'
	l.readChar()
	b.WriteRune(l.ch) // '('
	l.readChar()
	for l.ch != ')' {
		if l.ch == 0 || l.ch == '\n' {
			err := diag.New(diag.KindLex, start, "unterminated manifest path variable")
			l.err = err
			return token.Token{}, err
		}
		b.WriteRune(l.ch)
		l.readChar()
	}
	b.WriteRune(l.ch) // ')'
	l.readChar()
	return l.addPendingTo(token.Token{Kind: token.MLBPATH, Literal: b.String(), Span: token.Span{Start: start, End: l.currentPos()}}), nil
}

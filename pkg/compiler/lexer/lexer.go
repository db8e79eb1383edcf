// Package lexer performs lexical analysis on Sable source. The token
// stream is a lossless partition of the input: whitespace and comments
// are tokens, and the end of one token is the start of the next.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sable-lang/sable/pkg/compiler/ast"
)

// Vocabulary is the keyword lookup oracle injected into the lexer. The
// lexer has no knowledge of the vocabulary's contents; it only asks
// whether a word is a keyword and how long the longest keyword is.
type Vocabulary struct {
	// Parse resolves a candidate word to a keyword.
	Parse func(word string) (ast.Keyword, bool)
	// MaxLength bounds keyword length in runes. Longer words are
	// classified without consulting Parse.
	MaxLength int
}

// DefaultVocabulary is the canonical Sable keyword table.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{Parse: ast.ParseKeyword, MaxLength: ast.MaxKeywordLength}
}

// Error is a lexical error: no recognizer claimed the input at Span.
// The offsets are exact so callers can render a precise diagnostic.
type Error struct {
	Span Span
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("lex: %s at %d..%d", e.Msg, e.Span.Start, e.Span.End)
}

// Lexer produces the token stream for one source buffer. It owns its
// cursor exclusively; distinct Lexers share no state, so separate
// buffers may be lexed concurrently without coordination.
type Lexer struct {
	cursor Cursor
	vocab  Vocabulary
	done   bool
}

// New returns a lexer over src using the default Sable vocabulary. The
// source is borrowed, not copied; no I/O happens here.
func New(src string) *Lexer {
	return NewWithVocabulary(src, DefaultVocabulary())
}

// NewWithVocabulary returns a lexer over src with an explicit keyword
// oracle.
func NewWithVocabulary(src string, vocab Vocabulary) *Lexer {
	return &Lexer{cursor: Cursor{src: src}, vocab: vocab}
}

// Next produces the next token. At end of input it returns a zero-width
// KindEOF token, and keeps returning it on further calls. When input
// remains but no recognizer matches, it returns an *Error spanning the
// unrecognized rune.
func (l *Lexer) Next() (Token, error) {
	start := l.cursor.Pos()
	if l.cursor.First() == EOF {
		l.done = true
		return Token{Span: Span{Start: start, End: start}, Kind: KindEOF}, nil
	}

	// Dispatch order is a contract: comments must run before the
	// operator recognizer claims the leading '/'.
	if tok, ok := l.scanWhitespace(start); ok {
		return tok, nil
	}
	if tok, ok := l.scanComment(start); ok {
		return tok, nil
	}
	if tok, ok := l.scanOperator(start); ok {
		return tok, nil
	}
	if tok, ok := l.scanWord(start); ok {
		return tok, nil
	}
	if tok, ok := l.scanNumber(start); ok {
		return tok, nil
	}
	if tok, ok := l.scanString(start); ok {
		return tok, nil
	}
	if tok, ok := l.scanColon(start); ok {
		return tok, nil
	}
	if tok, ok := l.scanReserved(start); ok {
		return tok, nil
	}

	l.cursor.Advance()
	return Token{}, &Error{
		Span: Span{Start: start, End: l.cursor.Pos()},
		Msg:  "unrecognized character",
	}
}

// Done reports whether the lexer has reached end of input.
func (l *Lexer) Done() bool {
	return l.done
}

// Tokens lexes src to completion with the default vocabulary. The
// returned slice excludes the trailing EOF token. On a lexical error
// the tokens scanned so far are returned alongside the error.
func Tokens(src string) ([]Token, error) {
	l := New(src)
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return toks, err
		}
		if tok.Kind == KindEOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// token seals a committed match: the span runs from start to the
// cursor's current position and the lexeme is the raw slice between.
func (l *Lexer) token(start Pos, kind Kind) Token {
	return Token{
		Span:   Span{Start: start, End: l.cursor.Pos()},
		Kind:   kind,
		Lexeme: l.cursor.Slice(start),
	}
}

func (l *Lexer) scanWhitespace(start Pos) (Token, bool) {
	if l.cursor.ConsumeWhile(unicode.IsSpace) == "" {
		return Token{}, false
	}
	return l.token(start, KindWhitespace), true
}

func (l *Lexer) scanComment(start Pos) (Token, bool) {
	if l.cursor.First() != '/' {
		return Token{}, false
	}
	switch l.cursor.Second() {
	case '/':
		l.cursor.ConsumeWhile(func(r rune) bool { return r != '\n' })
	case '*':
		l.cursor.AdvanceBy(2)
		// An interior '*' terminates only when '/' follows directly;
		// the predicate consumes the closing '/' itself.
		l.cursor.ConsumeWhileCursor(func(c *Cursor, r rune) bool {
			if r != '*' || c.First() != '/' {
				return true
			}
			c.Advance()
			return false
		})
	default:
		// A lone '/' belongs to the operator recognizer.
		return Token{}, false
	}
	return l.token(start, KindComment), true
}

func (l *Lexer) scanOperator(start Pos) (Token, bool) {
	switch l.cursor.First() {
	case '+', '-', '*', '/', '%', '=', '<', '>', '&', '|', '^', '~':
		l.cursor.Advance()
		return l.token(start, KindOperator), true
	}
	return Token{}, false
}

// scanWord consumes a maximal identifier-shaped run and then classifies
// it: word operator, keyword, boolean, or identifier. Classifying after
// the maximal munch means "if(" lexes as a keyword and "orange" as an
// identifier; no prefix of a longer word is ever claimed.
func (l *Lexer) scanWord(start Pos) (Token, bool) {
	first := l.cursor.First()
	if first != '_' && !isASCIILetter(first) {
		return Token{}, false
	}
	word := l.cursor.ConsumeWhile(isWordRune)
	tok := l.token(start, KindIdentifier)
	switch word {
	case "or", "and":
		tok.Kind = KindOperator
	case "true", "false":
		tok.Kind = KindBool
	default:
		if utf8.RuneCountInString(word) <= l.vocab.MaxLength {
			if kw, ok := l.vocab.Parse(word); ok {
				tok.Kind = KindKeyword
				tok.Keyword = kw
			}
		}
	}
	return tok, true
}

func (l *Lexer) scanNumber(start Pos) (Token, bool) {
	if !isDigit(l.cursor.First()) {
		return Token{}, false
	}
	run := l.cursor.ConsumeWhile(func(r rune) bool { return isDigit(r) || r == '.' })
	tok := l.token(start, KindNumber)
	tok.Number = decodeNumber(run)
	return tok, true
}

// decodeNumber parses the scanned digit-and-dot run. Runs that are not
// well-formed literals (for example "1.2.3") decode to the zero value;
// later stages see the raw lexeme and report them.
func decodeNumber(run string) Number {
	if strings.ContainsRune(run, '.') {
		f, err := strconv.ParseFloat(run, 64)
		if err != nil {
			return Number{IsFloat: true}
		}
		return Number{IsFloat: true, Float: f}
	}
	n, err := strconv.ParseInt(run, 10, 64)
	if err != nil {
		return Number{}
	}
	return Number{Int: n}
}

func (l *Lexer) scanString(start Pos) (Token, bool) {
	var delim StringDelim
	switch l.cursor.First() {
	case '"':
		delim = DelimDouble
	case '\'':
		delim = DelimSingle
	case '`':
		delim = DelimBacktick
	default:
		return Token{}, false
	}
	open := l.cursor.Advance()
	// No escape interpretation; content runs to the matching delimiter
	// or end of input. Termination checking is a later stage's job.
	text := l.cursor.ConsumeWhile(func(r rune) bool { return r != open })
	if l.cursor.First() == open {
		l.cursor.Advance()
	}
	tok := l.token(start, KindString)
	tok.Delim = delim
	tok.Text = text
	return tok, true
}

func (l *Lexer) scanColon(start Pos) (Token, bool) {
	if l.cursor.First() != ':' {
		return Token{}, false
	}
	if l.cursor.Second() == ':' {
		l.cursor.AdvanceBy(2)
		tok := l.token(start, KindAccessor)
		tok.Access = AccessStaticMember
		return tok, true
	}
	l.cursor.Advance()
	return l.token(start, KindColon), true
}

var reserved = map[rune]Kind{
	'[':  KindLeftBracket,
	']':  KindRightBracket,
	'(':  KindLeftParen,
	')':  KindRightParen,
	'{':  KindLeftBrace,
	'}':  KindRightBrace,
	';':  KindSemicolon,
	',':  KindComma,
	'\\': KindBackslash,
	'.':  KindDot,
	'$':  KindDollar,
	'?':  KindQuestion,
}

func (l *Lexer) scanReserved(start Pos) (Token, bool) {
	kind, ok := reserved[l.cursor.First()]
	if !ok {
		return Token{}, false
	}
	l.cursor.Advance()
	return l.token(start, kind), true
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

package lexer

import (
	"fmt"
	"strings"

	"github.com/sable-lang/sable/pkg/compiler/ast"
)

// Kind classifies a token.
type Kind uint8

const (
	KindEOF Kind = iota
	KindWhitespace
	KindComment
	KindOperator
	KindKeyword
	KindBool
	KindIdentifier
	KindNumber
	KindString
	KindColon
	KindAccessor
	KindLeftBracket
	KindRightBracket
	KindLeftParen
	KindRightParen
	KindLeftBrace
	KindRightBrace
	KindSemicolon
	KindComma
	KindBackslash
	KindDot
	KindDollar
	KindQuestion
)

var kindNames = [...]string{
	KindEOF:          "eof",
	KindWhitespace:   "whitespace",
	KindComment:      "comment",
	KindOperator:     "operator",
	KindKeyword:      "keyword",
	KindBool:         "bool",
	KindIdentifier:   "identifier",
	KindNumber:       "number",
	KindString:       "string",
	KindColon:        "colon",
	KindAccessor:     "accessor",
	KindLeftBracket:  "lbracket",
	KindRightBracket: "rbracket",
	KindLeftParen:    "lparen",
	KindRightParen:   "rparen",
	KindLeftBrace:    "lbrace",
	KindRightBrace:   "rbrace",
	KindSemicolon:    "semicolon",
	KindComma:        "comma",
	KindBackslash:    "backslash",
	KindDot:          "dot",
	KindDollar:       "dollar",
	KindQuestion:     "question",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(?)"
}

// AccessType distinguishes accessor tokens.
type AccessType uint8

const (
	// AccessStaticMember is the "::" static member accessor.
	AccessStaticMember AccessType = iota
)

// StringDelim records which quote character delimited a string literal.
type StringDelim uint8

const (
	DelimDouble StringDelim = iota
	DelimSingle
	DelimBacktick
)

// Number is the decoded value of a numeric literal. Exactly one of Int
// and Float is meaningful, selected by IsFloat.
type Number struct {
	IsFloat bool
	Int     int64
	Float   float64
}

// Span delimits a token's source extent, half-open [Start, End).
type Span struct {
	Start Pos
	End   Pos
}

// Token is one lexical unit. Lexeme is always the exact source slice
// covered by Span, so concatenating the lexemes of a full scan
// reproduces the input byte for byte (whitespace and comments are
// tokens, not discarded). The payload fields are meaningful only for
// the kind they are named after.
type Token struct {
	Span   Span
	Kind   Kind
	Lexeme string

	Keyword ast.Keyword // Kind == KindKeyword
	Number  Number      // Kind == KindNumber
	Delim   StringDelim // Kind == KindString
	Text    string      // Kind == KindString: content without delimiters
	Access  AccessType  // Kind == KindAccessor
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q @ %d..%d", t.Kind, t.Lexeme, t.Span.Start, t.Span.End)
}

// LineCol converts a byte offset into 1-based line and column numbers
// for diagnostics. The column counts runes, not bytes.
func LineCol(src string, p Pos) (line, col int) {
	if int(p) > len(src) {
		p = Pos(len(src))
	}
	before := src[:p]
	line = 1 + strings.Count(before, "\n")
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		before = before[i+1:]
	}
	col = 1 + len([]rune(before))
	return line, col
}

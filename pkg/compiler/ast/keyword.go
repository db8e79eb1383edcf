package ast

// Keyword is a reserved word of the Sable language.
type Keyword uint8

const (
	KeywordIf Keyword = iota
	KeywordElse
	KeywordElseIf
	KeywordWhile
	KeywordFor
	KeywordForeach
	KeywordDo
	KeywordSwitch
	KeywordCase
	KeywordDefault
	KeywordBreak
	KeywordContinue
	KeywordReturn
	KeywordFunction
	KeywordClass
	KeywordInterface
	KeywordTrait
	KeywordExtends
	KeywordImplements
	KeywordInstanceof
	KeywordNew
	KeywordStatic
	KeywordPublic
	KeywordPrivate
	KeywordProtected
	KeywordConst
	KeywordFinal
	KeywordAbstract
	KeywordNamespace
	KeywordUse
	KeywordAs
	KeywordTry
	KeywordCatch
	KeywordFinally
	KeywordThrow
	KeywordEcho
	KeywordGlobal
	KeywordMatch
)

// MaxKeywordLength is the rune length of the longest keyword
// ("implements" and "instanceof"). The lexer uses it to bound how much
// of a word can possibly be a keyword.
const MaxKeywordLength = 10

var keywordNames = [...]string{
	KeywordIf:         "if",
	KeywordElse:       "else",
	KeywordElseIf:     "elseif",
	KeywordWhile:      "while",
	KeywordFor:        "for",
	KeywordForeach:    "foreach",
	KeywordDo:         "do",
	KeywordSwitch:     "switch",
	KeywordCase:       "case",
	KeywordDefault:    "default",
	KeywordBreak:      "break",
	KeywordContinue:   "continue",
	KeywordReturn:     "return",
	KeywordFunction:   "function",
	KeywordClass:      "class",
	KeywordInterface:  "interface",
	KeywordTrait:      "trait",
	KeywordExtends:    "extends",
	KeywordImplements: "implements",
	KeywordInstanceof: "instanceof",
	KeywordNew:        "new",
	KeywordStatic:     "static",
	KeywordPublic:     "public",
	KeywordPrivate:    "private",
	KeywordProtected:  "protected",
	KeywordConst:      "const",
	KeywordFinal:      "final",
	KeywordAbstract:   "abstract",
	KeywordNamespace:  "namespace",
	KeywordUse:        "use",
	KeywordAs:         "as",
	KeywordTry:        "try",
	KeywordCatch:      "catch",
	KeywordFinally:    "finally",
	KeywordThrow:      "throw",
	KeywordEcho:       "echo",
	KeywordGlobal:     "global",
	KeywordMatch:      "match",
}

var keywords = func() map[string]Keyword {
	m := make(map[string]Keyword, len(keywordNames))
	for k, name := range keywordNames {
		m[name] = Keyword(k)
	}
	return m
}()

// ParseKeyword resolves a candidate word against the vocabulary. It is a
// pure lookup; callers decide what a failed lookup means.
func ParseKeyword(word string) (Keyword, bool) {
	kw, ok := keywords[word]
	return kw, ok
}

func (k Keyword) String() string {
	if int(k) < len(keywordNames) {
		return keywordNames[k]
	}
	return "keyword(?)"
}

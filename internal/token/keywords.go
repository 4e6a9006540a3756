package token

var keywords = map[string]Kind{
	"abstract":   KwAbstract,
	"as":         KwAs,
	"base":       KwBase,
	"bool":       KwBool,
	"break":      KwBreak,
	"byte":       KwByte,
	"case":       KwCase,
	"catch":      KwCatch,
	"char":       KwChar,
	"checked":    KwChecked,
	"class":      KwClass,
	"const":      KwConst,
	"continue":   KwContinue,
	"decimal":    KwDecimal,
	"default":    KwDefault,
	"delegate":   KwDelegate,
	"do":         KwDo,
	"double":     KwDouble,
	"else":       KwElse,
	"enum":       KwEnum,
	"event":      KwEvent,
	"explicit":   KwExplicit,
	"extern":     KwExtern,
	"false":      KwFalse,
	"finally":    KwFinally,
	"fixed":      KwFixed,
	"float":      KwFloat,
	"for":        KwFor,
	"foreach":    KwForeach,
	"goto":       KwGoto,
	"if":         KwIf,
	"implicit":   KwImplicit,
	"in":         KwIn,
	"int":        KwInt,
	"interface":  KwInterface,
	"internal":   KwInternal,
	"is":         KwIs,
	"lock":       KwLock,
	"long":       KwLong,
	"namespace":  KwNamespace,
	"new":        KwNew,
	"null":       KwNull,
	"object":     KwObject,
	"operator":   KwOperator,
	"out":        KwOut,
	"override":   KwOverride,
	"params":     KwParams,
	"private":    KwPrivate,
	"protected":  KwProtected,
	"public":     KwPublic,
	"readonly":   KwReadonly,
	"ref":        KwRef,
	"return":     KwReturn,
	"sbyte":      KwSbyte,
	"sealed":     KwSealed,
	"short":      KwShort,
	"sizeof":     KwSizeof,
	"stackalloc": KwStackalloc,
	"static":     KwStatic,
	"string":     KwString,
	"struct":     KwStruct,
	"switch":     KwSwitch,
	"this":       KwThis,
	"throw":      KwThrow,
	"true":       KwTrue,
	"try":        KwTry,
	"typeof":     KwTypeof,
	"uint":       KwUint,
	"ulong":      KwUlong,
	"unchecked":  KwUnchecked,
	"unsafe":     KwUnsafe,
	"ushort":     KwUshort,
	"using":      KwUsing,
	"virtual":    KwVirtual,
	"void":       KwVoid,
	"volatile":   KwVolatile,
	"while":      KwWhile,
}

var kindTexts = func() map[Kind]string {
	out := make(map[Kind]string, len(keywords)+4)
	for text, k := range keywords {
		out[k] = text
	}
	out[KwGet] = "get"
	out[KwSet] = "set"
	out[KwAdd] = "add"
	out[KwRemove] = "remove"
	return out
}()

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only lowercase spellings match.
// Contextual words (get, set, add, remove, attribute targets) are
// deliberately absent: they arrive as Ident and the parser reclassifies.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

var punctTexts = map[Kind]string{
	Plus: "+", PlusPlus: "++", Minus: "-", MinusMinus: "--",
	Star: "*", Slash: "/", Percent: "%",
	Assign: "=", PlusAssign: "+=", MinusAssign: "-=", StarAssign: "*=",
	SlashAssign: "/=", PercentAssign: "%=", AmpAssign: "&=", PipeAssign: "|=",
	CaretAssign: "^=", ShlAssign: "<<=", ShrAssign: ">>=",
	EqEq: "==", Bang: "!", BangEq: "!=",
	Lt: "<", LtEq: "<=", Gt: ">", GtEq: ">=", Shl: "<<", Shr: ">>",
	Amp: "&", AndAnd: "&&", Pipe: "|", OrOr: "||", Caret: "^", Tilde: "~",
	Question: "?", Colon: ":", Semicolon: ";", Comma: ",", Dot: ".", Arrow: "->",
	LParen: "(", RParen: ")", LBrace: "{", RBrace: "}", LBracket: "[", RBracket: "]",
}

// KindText returns the canonical spelling of a keyword or punctuation kind,
// or an empty string for kinds without a fixed spelling.
func KindText(k Kind) string {
	if t, ok := kindTexts[k]; ok {
		return t
	}
	if t, ok := punctTexts[k]; ok {
		return t
	}
	return ""
}

// String renders the kind for diagnostics and dumps.
func (k Kind) String() string {
	if t := KindText(k); t != "" {
		return t
	}
	switch k {
	case Unknown:
		return "unknown"
	case EOF:
		return "end-of-file"
	case Ident:
		return "identifier"
	case NumberLit:
		return "number"
	case StringLit:
		return "string"
	case CharLit:
		return "character"
	case Directive:
		return "directive"
	default:
		return "invalid"
	}
}

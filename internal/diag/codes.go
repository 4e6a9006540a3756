package diag

import (
	"fmt"
)

// Code identifies a diagnostic category. Lexical codes live in the 1xxx
// range, syntactic codes in the 2xxx range.
type Code uint16

const (
	UnknownCode Code = 0

	// lexical
	LexUnterminatedBlockComment Code = 1001
	LexUnterminatedString       Code = 1002
	LexNewlineInConstant        Code = 1003
	LexEmptyCharLiteral         Code = 1004
	LexTooManyCharsInCharLit    Code = 1005
	LexUnrecognizedEscape       Code = 1006
	LexBadNumber                Code = 1007

	// syntactic
	SynTokenExpected          Code = 2001
	SynIdentifierExpected     Code = 2002
	SynTypeExpected           Code = 2003
	SynDeclarationExpected    Code = 2004
	SynNamespaceExpected      Code = 2005
	SynInvalidDirective       Code = 2006
	SynInvalidMemberDecl      Code = 2007
	SynGetOrSetExpected       Code = 2008
	SynAddOrRemoveExpected    Code = 2009
	SynDuplicateModifier      Code = 2010
	SynInvalidModifier        Code = 2011
	SynInvalidAttributeTarget Code = 2012
	SynBaseOrThisExpected     Code = 2013
	SynExpressionExpected     Code = 2014
)

var codeIDs = map[Code]string{
	UnknownCode: "UNKNOWN",

	LexUnterminatedBlockComment: "LEX-UNTERMINATED-COMMENT",
	LexUnterminatedString:       "LEX-UNTERMINATED-STRING",
	LexNewlineInConstant:        "LEX-NEWLINE-IN-CONSTANT",
	LexEmptyCharLiteral:         "LEX-EMPTY-CHAR",
	LexTooManyCharsInCharLit:    "LEX-CHAR-TOO-LONG",
	LexUnrecognizedEscape:       "LEX-BAD-ESCAPE",
	LexBadNumber:                "LEX-BAD-NUMBER",

	SynTokenExpected:          "SYN-TOKEN-EXPECTED",
	SynIdentifierExpected:     "SYN-IDENT-EXPECTED",
	SynTypeExpected:           "SYN-TYPE-EXPECTED",
	SynDeclarationExpected:    "SYN-DECL-EXPECTED",
	SynNamespaceExpected:      "SYN-NAMESPACE-EXPECTED",
	SynInvalidDirective:       "SYN-INVALID-DIRECTIVE",
	SynInvalidMemberDecl:      "SYN-INVALID-MEMBER",
	SynGetOrSetExpected:       "SYN-GET-OR-SET-EXPECTED",
	SynAddOrRemoveExpected:    "SYN-ADD-OR-REMOVE-EXPECTED",
	SynDuplicateModifier:      "SYN-DUPLICATE-MODIFIER",
	SynInvalidModifier:        "SYN-INVALID-MODIFIER",
	SynInvalidAttributeTarget: "SYN-INVALID-ATTR-TARGET",
	SynBaseOrThisExpected:     "SYN-BASE-OR-THIS-EXPECTED",
	SynExpressionExpected:     "SYN-EXPR-EXPECTED",
}

// ID returns the stable textual identifier for the code.
func (c Code) ID() string {
	if id, ok := codeIDs[c]; ok {
		return id
	}
	return fmt.Sprintf("CODE-%04d", uint16(c))
}

func (c Code) String() string { return c.ID() }

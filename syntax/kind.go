package syntax

import "strings"

// Kind identifies every token and node in a JavaScript syntax tree.
type Kind uint16

const (
	TokenTombstone Kind = iota
	TokenEOF

	// Trivia
	TokenWhitespace
	TokenNewline
	TokenComment
	TokenMultilineComment
	TokenError

	// Punctuation
	TokenSemicolon
	TokenComma
	TokenLParen
	TokenRParen
	TokenLCurly
	TokenRCurly
	TokenLBrack
	TokenRBrack
	TokenLAngle
	TokenRAngle
	TokenTilde
	TokenQuestion
	TokenQuestion2
	TokenQuestionDot
	TokenAmp
	TokenPipe
	TokenPlus
	TokenPlus2
	TokenStar
	TokenStar2
	TokenSlash
	TokenCaret
	TokenPercent
	TokenDot
	TokenDot3
	TokenColon
	TokenEq
	TokenEq2
	TokenEq3
	TokenFatArrow
	TokenBang
	TokenNeq
	TokenNeq2
	TokenMinus
	TokenMinus2
	TokenLtEq
	TokenGtEq
	TokenPlusEq
	TokenMinusEq
	TokenPipeEq
	TokenAmpEq
	TokenCaretEq
	TokenSlashEq
	TokenStarEq
	TokenPercentEq
	TokenAmp2
	TokenPipe2
	TokenShl
	TokenShr
	TokenUShr
	TokenShlEq
	TokenShrEq
	TokenUShrEq
	TokenAmp2Eq
	TokenPipe2Eq
	TokenStar2Eq
	TokenQuestion2Eq
	TokenAt
	TokenHash

	// Reserved words
	TokenBreak
	TokenCase
	TokenCatch
	TokenClass
	TokenConst
	TokenContinue
	TokenDebugger
	TokenDefault
	TokenDelete
	TokenDo
	TokenElse
	TokenExport
	TokenExtends
	TokenFalse
	TokenFinally
	TokenFor
	TokenFunction
	TokenIf
	TokenImport
	TokenIn
	TokenInstanceof
	TokenNew
	TokenNull
	TokenReturn
	TokenSuper
	TokenSwitch
	TokenThis
	TokenThrow
	TokenTrue
	TokenTry
	TokenTypeof
	TokenVar
	TokenVoid
	TokenWhile
	TokenWith

	// Contextual keywords, lexed as identifiers
	TokenLet
	TokenStatic
	TokenYield
	TokenAwait
	TokenAsync
	TokenOf
	TokenGet
	TokenSet

	// Literals and names
	TokenJsNumberLiteral
	TokenJsStringLiteral
	TokenJsRegexLiteral
	TokenIdent
	TokenTemplate
	TokenTemplateHead
	TokenTemplateMiddle
	TokenTemplateTail

	// Nodes
	KindList
	KindJsRoot
	KindJsDirective
	KindJsBlockStatement
	KindJsEmptyStatement
	KindJsExpressionStatement
	KindJsIfStatement
	KindJsElseClause
	KindJsWhileStatement
	KindJsDoWhileStatement
	KindJsReturnStatement
	KindJsBreakStatement
	KindJsContinueStatement
	KindJsLabeledStatement
	KindJsThrowStatement
	KindJsDebuggerStatement
	KindJsVariableStatement
	KindJsVariableDeclaration
	KindJsVariableDeclarator
	KindJsInitializerClause
	KindJsFunctionDeclaration
	KindJsFunctionExpression
	KindJsFunctionBody
	KindJsParameters
	KindJsRestParameter
	KindJsArrowFunctionExpression
	KindJsStringLiteralExpression
	KindJsNumberLiteralExpression
	KindJsBooleanLiteralExpression
	KindJsNullLiteralExpression
	KindJsRegexLiteralExpression
	KindJsTemplate
	KindJsTemplateChunkElement
	KindJsTemplateElement
	KindJsIdentifierExpression
	KindJsReferenceIdentifier
	KindJsName
	KindJsThisExpression
	KindJsArrayExpression
	KindJsArrayHole
	KindJsSpread
	KindJsObjectExpression
	KindJsPropertyObjectMember
	KindJsShorthandPropertyObjectMember
	KindJsLiteralMemberName
	KindJsComputedMemberName
	KindJsParenthesizedExpression
	KindJsSequenceExpression
	KindJsStaticMemberExpression
	KindJsComputedMemberExpression
	KindJsCallExpression
	KindJsCallArguments
	KindJsNewExpression
	KindJsUnaryExpression
	KindJsPreUpdateExpression
	KindJsPostUpdateExpression
	KindJsBinaryExpression
	KindJsLogicalExpression
	KindJsConditionalExpression
	KindJsAssignmentExpression
	KindJsIdentifierAssignment
	KindJsStaticMemberAssignment
	KindJsComputedMemberAssignment
	KindJsParenthesizedAssignment
	KindJsArrayAssignmentPattern
	KindJsArrayAssignmentPatternRestElement
	KindJsAssignmentWithDefault
	KindJsObjectAssignmentPattern
	KindJsObjectAssignmentPatternProperty
	KindJsObjectAssignmentPatternShorthandProperty
	KindJsObjectAssignmentPatternRest
	KindJsIdentifierBinding
	KindJsArrayBindingPattern
	KindJsArrayBindingPatternRestElement
	KindJsBindingPatternWithDefault
	KindJsObjectBindingPattern
	KindJsObjectBindingPatternProperty
	KindJsObjectBindingPatternShorthandProperty
	KindJsObjectBindingPatternRest
	KindJsUnknownStatement
	KindJsUnknownExpression
	KindJsUnknownMember
	KindJsUnknownAssignment
	KindJsUnknownBinding

	kindCount
)

type kindInfo struct {
	name string
	text string
}

var kindInfos = [kindCount]kindInfo{
	TokenTombstone:        {"TOMBSTONE", ""},
	TokenEOF:              {"EOF", ""},
	TokenWhitespace:       {"WHITESPACE", ""},
	TokenNewline:          {"NEWLINE", ""},
	TokenComment:          {"COMMENT", ""},
	TokenMultilineComment: {"MULTILINE_COMMENT", ""},
	TokenError:            {"ERROR_TOKEN", ""},

	TokenSemicolon:   {"SEMICOLON", ";"},
	TokenComma:       {"COMMA", ","},
	TokenLParen:      {"L_PAREN", "("},
	TokenRParen:      {"R_PAREN", ")"},
	TokenLCurly:      {"L_CURLY", "{"},
	TokenRCurly:      {"R_CURLY", "}"},
	TokenLBrack:      {"L_BRACK", "["},
	TokenRBrack:      {"R_BRACK", "]"},
	TokenLAngle:      {"L_ANGLE", "<"},
	TokenRAngle:      {"R_ANGLE", ">"},
	TokenTilde:       {"TILDE", "~"},
	TokenQuestion:    {"QUESTION", "?"},
	TokenQuestion2:   {"QUESTION2", "??"},
	TokenQuestionDot: {"QUESTION_DOT", "?."},
	TokenAmp:         {"AMP", "&"},
	TokenPipe:        {"PIPE", "|"},
	TokenPlus:        {"PLUS", "+"},
	TokenPlus2:       {"PLUS2", "++"},
	TokenStar:        {"STAR", "*"},
	TokenStar2:       {"STAR2", "**"},
	TokenSlash:       {"SLASH", "/"},
	TokenCaret:       {"CARET", "^"},
	TokenPercent:     {"PERCENT", "%"},
	TokenDot:         {"DOT", "."},
	TokenDot3:        {"DOT3", "..."},
	TokenColon:       {"COLON", ":"},
	TokenEq:          {"EQ", "="},
	TokenEq2:         {"EQ2", "=="},
	TokenEq3:         {"EQ3", "==="},
	TokenFatArrow:    {"FAT_ARROW", "=>"},
	TokenBang:        {"BANG", "!"},
	TokenNeq:         {"NEQ", "!="},
	TokenNeq2:        {"NEQ2", "!=="},
	TokenMinus:       {"MINUS", "-"},
	TokenMinus2:      {"MINUS2", "--"},
	TokenLtEq:        {"LT_EQ", "<="},
	TokenGtEq:        {"GT_EQ", ">="},
	TokenPlusEq:      {"PLUS_EQ", "+="},
	TokenMinusEq:     {"MINUS_EQ", "-="},
	TokenPipeEq:      {"PIPE_EQ", "|="},
	TokenAmpEq:       {"AMP_EQ", "&="},
	TokenCaretEq:     {"CARET_EQ", "^="},
	TokenSlashEq:     {"SLASH_EQ", "/="},
	TokenStarEq:      {"STAR_EQ", "*="},
	TokenPercentEq:   {"PERCENT_EQ", "%="},
	TokenAmp2:        {"AMP2", "&&"},
	TokenPipe2:       {"PIPE2", "||"},
	TokenShl:         {"SHL", "<<"},
	TokenShr:         {"SHR", ">>"},
	TokenUShr:        {"USHR", ">>>"},
	TokenShlEq:       {"SHL_EQ", "<<="},
	TokenShrEq:       {"SHR_EQ", ">>="},
	TokenUShrEq:      {"USHR_EQ", ">>>="},
	TokenAmp2Eq:      {"AMP2_EQ", "&&="},
	TokenPipe2Eq:     {"PIPE2_EQ", "||="},
	TokenStar2Eq:     {"STAR2_EQ", "**="},
	TokenQuestion2Eq: {"QUESTION2_EQ", "??="},
	TokenAt:          {"AT", "@"},
	TokenHash:        {"HASH", "#"},

	TokenBreak:      {"BREAK_KW", "break"},
	TokenCase:       {"CASE_KW", "case"},
	TokenCatch:      {"CATCH_KW", "catch"},
	TokenClass:      {"CLASS_KW", "class"},
	TokenConst:      {"CONST_KW", "const"},
	TokenContinue:   {"CONTINUE_KW", "continue"},
	TokenDebugger:   {"DEBUGGER_KW", "debugger"},
	TokenDefault:    {"DEFAULT_KW", "default"},
	TokenDelete:     {"DELETE_KW", "delete"},
	TokenDo:         {"DO_KW", "do"},
	TokenElse:       {"ELSE_KW", "else"},
	TokenExport:     {"EXPORT_KW", "export"},
	TokenExtends:    {"EXTENDS_KW", "extends"},
	TokenFalse:      {"FALSE_KW", "false"},
	TokenFinally:    {"FINALLY_KW", "finally"},
	TokenFor:        {"FOR_KW", "for"},
	TokenFunction:   {"FUNCTION_KW", "function"},
	TokenIf:         {"IF_KW", "if"},
	TokenImport:     {"IMPORT_KW", "import"},
	TokenIn:         {"IN_KW", "in"},
	TokenInstanceof: {"INSTANCEOF_KW", "instanceof"},
	TokenNew:        {"NEW_KW", "new"},
	TokenNull:       {"NULL_KW", "null"},
	TokenReturn:     {"RETURN_KW", "return"},
	TokenSuper:      {"SUPER_KW", "super"},
	TokenSwitch:     {"SWITCH_KW", "switch"},
	TokenThis:       {"THIS_KW", "this"},
	TokenThrow:      {"THROW_KW", "throw"},
	TokenTrue:       {"TRUE_KW", "true"},
	TokenTry:        {"TRY_KW", "try"},
	TokenTypeof:     {"TYPEOF_KW", "typeof"},
	TokenVar:        {"VAR_KW", "var"},
	TokenVoid:       {"VOID_KW", "void"},
	TokenWhile:      {"WHILE_KW", "while"},
	TokenWith:       {"WITH_KW", "with"},

	TokenLet:    {"LET_KW", "let"},
	TokenStatic: {"STATIC_KW", "static"},
	TokenYield:  {"YIELD_KW", "yield"},
	TokenAwait:  {"AWAIT_KW", "await"},
	TokenAsync:  {"ASYNC_KW", "async"},
	TokenOf:     {"OF_KW", "of"},
	TokenGet:    {"GET_KW", "get"},
	TokenSet:    {"SET_KW", "set"},

	TokenJsNumberLiteral: {"JS_NUMBER_LITERAL", ""},
	TokenJsStringLiteral: {"JS_STRING_LITERAL", ""},
	TokenJsRegexLiteral:  {"JS_REGEX_LITERAL", ""},
	TokenIdent:           {"IDENT", ""},
	TokenTemplate:        {"TEMPLATE", ""},
	TokenTemplateHead:    {"TEMPLATE_HEAD", ""},
	TokenTemplateMiddle:  {"TEMPLATE_MIDDLE", ""},
	TokenTemplateTail:    {"TEMPLATE_TAIL", ""},

	KindList:                                       {"LIST", ""},
	KindJsRoot:                                     {"JS_ROOT", ""},
	KindJsDirective:                                {"JS_DIRECTIVE", ""},
	KindJsBlockStatement:                           {"JS_BLOCK_STATEMENT", ""},
	KindJsEmptyStatement:                           {"JS_EMPTY_STATEMENT", ""},
	KindJsExpressionStatement:                      {"JS_EXPRESSION_STATEMENT", ""},
	KindJsIfStatement:                              {"JS_IF_STATEMENT", ""},
	KindJsElseClause:                               {"JS_ELSE_CLAUSE", ""},
	KindJsWhileStatement:                           {"JS_WHILE_STATEMENT", ""},
	KindJsDoWhileStatement:                         {"JS_DO_WHILE_STATEMENT", ""},
	KindJsReturnStatement:                          {"JS_RETURN_STATEMENT", ""},
	KindJsBreakStatement:                           {"JS_BREAK_STATEMENT", ""},
	KindJsContinueStatement:                        {"JS_CONTINUE_STATEMENT", ""},
	KindJsLabeledStatement:                         {"JS_LABELED_STATEMENT", ""},
	KindJsThrowStatement:                           {"JS_THROW_STATEMENT", ""},
	KindJsDebuggerStatement:                        {"JS_DEBUGGER_STATEMENT", ""},
	KindJsVariableStatement:                        {"JS_VARIABLE_STATEMENT", ""},
	KindJsVariableDeclaration:                      {"JS_VARIABLE_DECLARATION", ""},
	KindJsVariableDeclarator:                       {"JS_VARIABLE_DECLARATOR", ""},
	KindJsInitializerClause:                        {"JS_INITIALIZER_CLAUSE", ""},
	KindJsFunctionDeclaration:                      {"JS_FUNCTION_DECLARATION", ""},
	KindJsFunctionExpression:                       {"JS_FUNCTION_EXPRESSION", ""},
	KindJsFunctionBody:                             {"JS_FUNCTION_BODY", ""},
	KindJsParameters:                               {"JS_PARAMETERS", ""},
	KindJsRestParameter:                            {"JS_REST_PARAMETER", ""},
	KindJsArrowFunctionExpression:                  {"JS_ARROW_FUNCTION_EXPRESSION", ""},
	KindJsStringLiteralExpression:                  {"JS_STRING_LITERAL_EXPRESSION", ""},
	KindJsNumberLiteralExpression:                  {"JS_NUMBER_LITERAL_EXPRESSION", ""},
	KindJsBooleanLiteralExpression:                 {"JS_BOOLEAN_LITERAL_EXPRESSION", ""},
	KindJsNullLiteralExpression:                    {"JS_NULL_LITERAL_EXPRESSION", ""},
	KindJsRegexLiteralExpression:                   {"JS_REGEX_LITERAL_EXPRESSION", ""},
	KindJsTemplate:                                 {"JS_TEMPLATE", ""},
	KindJsTemplateChunkElement:                     {"JS_TEMPLATE_CHUNK_ELEMENT", ""},
	KindJsTemplateElement:                          {"JS_TEMPLATE_ELEMENT", ""},
	KindJsIdentifierExpression:                     {"JS_IDENTIFIER_EXPRESSION", ""},
	KindJsReferenceIdentifier:                      {"JS_REFERENCE_IDENTIFIER", ""},
	KindJsName:                                     {"JS_NAME", ""},
	KindJsThisExpression:                           {"JS_THIS_EXPRESSION", ""},
	KindJsArrayExpression:                          {"JS_ARRAY_EXPRESSION", ""},
	KindJsArrayHole:                                {"JS_ARRAY_HOLE", ""},
	KindJsSpread:                                   {"JS_SPREAD", ""},
	KindJsObjectExpression:                         {"JS_OBJECT_EXPRESSION", ""},
	KindJsPropertyObjectMember:                     {"JS_PROPERTY_OBJECT_MEMBER", ""},
	KindJsShorthandPropertyObjectMember:            {"JS_SHORTHAND_PROPERTY_OBJECT_MEMBER", ""},
	KindJsLiteralMemberName:                        {"JS_LITERAL_MEMBER_NAME", ""},
	KindJsComputedMemberName:                       {"JS_COMPUTED_MEMBER_NAME", ""},
	KindJsParenthesizedExpression:                  {"JS_PARENTHESIZED_EXPRESSION", ""},
	KindJsSequenceExpression:                       {"JS_SEQUENCE_EXPRESSION", ""},
	KindJsStaticMemberExpression:                   {"JS_STATIC_MEMBER_EXPRESSION", ""},
	KindJsComputedMemberExpression:                 {"JS_COMPUTED_MEMBER_EXPRESSION", ""},
	KindJsCallExpression:                           {"JS_CALL_EXPRESSION", ""},
	KindJsCallArguments:                            {"JS_CALL_ARGUMENTS", ""},
	KindJsNewExpression:                            {"JS_NEW_EXPRESSION", ""},
	KindJsUnaryExpression:                          {"JS_UNARY_EXPRESSION", ""},
	KindJsPreUpdateExpression:                      {"JS_PRE_UPDATE_EXPRESSION", ""},
	KindJsPostUpdateExpression:                     {"JS_POST_UPDATE_EXPRESSION", ""},
	KindJsBinaryExpression:                         {"JS_BINARY_EXPRESSION", ""},
	KindJsLogicalExpression:                        {"JS_LOGICAL_EXPRESSION", ""},
	KindJsConditionalExpression:                    {"JS_CONDITIONAL_EXPRESSION", ""},
	KindJsAssignmentExpression:                     {"JS_ASSIGNMENT_EXPRESSION", ""},
	KindJsIdentifierAssignment:                     {"JS_IDENTIFIER_ASSIGNMENT", ""},
	KindJsStaticMemberAssignment:                   {"JS_STATIC_MEMBER_ASSIGNMENT", ""},
	KindJsComputedMemberAssignment:                 {"JS_COMPUTED_MEMBER_ASSIGNMENT", ""},
	KindJsParenthesizedAssignment:                  {"JS_PARENTHESIZED_ASSIGNMENT", ""},
	KindJsArrayAssignmentPattern:                   {"JS_ARRAY_ASSIGNMENT_PATTERN", ""},
	KindJsArrayAssignmentPatternRestElement:        {"JS_ARRAY_ASSIGNMENT_PATTERN_REST_ELEMENT", ""},
	KindJsAssignmentWithDefault:                    {"JS_ASSIGNMENT_WITH_DEFAULT", ""},
	KindJsObjectAssignmentPattern:                  {"JS_OBJECT_ASSIGNMENT_PATTERN", ""},
	KindJsObjectAssignmentPatternProperty:          {"JS_OBJECT_ASSIGNMENT_PATTERN_PROPERTY", ""},
	KindJsObjectAssignmentPatternShorthandProperty: {"JS_OBJECT_ASSIGNMENT_PATTERN_SHORTHAND_PROPERTY", ""},
	KindJsObjectAssignmentPatternRest:              {"JS_OBJECT_ASSIGNMENT_PATTERN_REST", ""},
	KindJsIdentifierBinding:                        {"JS_IDENTIFIER_BINDING", ""},
	KindJsArrayBindingPattern:                      {"JS_ARRAY_BINDING_PATTERN", ""},
	KindJsArrayBindingPatternRestElement:           {"JS_ARRAY_BINDING_PATTERN_REST_ELEMENT", ""},
	KindJsBindingPatternWithDefault:                {"JS_BINDING_PATTERN_WITH_DEFAULT", ""},
	KindJsObjectBindingPattern:                     {"JS_OBJECT_BINDING_PATTERN", ""},
	KindJsObjectBindingPatternProperty:             {"JS_OBJECT_BINDING_PATTERN_PROPERTY", ""},
	KindJsObjectBindingPatternShorthandProperty:    {"JS_OBJECT_BINDING_PATTERN_SHORTHAND_PROPERTY", ""},
	KindJsObjectBindingPatternRest:                 {"JS_OBJECT_BINDING_PATTERN_REST", ""},
	KindJsUnknownStatement:                         {"JS_UNKNOWN_STATEMENT", ""},
	KindJsUnknownExpression:                        {"JS_UNKNOWN_EXPRESSION", ""},
	KindJsUnknownMember:                            {"JS_UNKNOWN_MEMBER", ""},
	KindJsUnknownAssignment:                        {"JS_UNKNOWN_ASSIGNMENT", ""},
	KindJsUnknownBinding:                           {"JS_UNKNOWN_BINDING", ""},
}

var (
	kindsByName = map[string]Kind{}
	kindsByText = map[string]Kind{}
)

func init() {
	for k := Kind(0); k < kindCount; k++ {
		info := kindInfos[k]
		kindsByName[info.name] = k
		if info.text != "" {
			kindsByText[info.text] = k
		}
	}
}

func (k Kind) String() string {
	if k < kindCount {
		return kindInfos[k].name
	}
	return "UNKNOWN_KIND"
}

// Text returns the fixed source text of punctuation and keyword kinds, or ""
// for kinds whose text varies.
func (k Kind) Text() string {
	if k < kindCount {
		return kindInfos[k].text
	}
	return ""
}

// Describe renders the kind for diagnostics: "`(`" for fixed tokens and the
// lower-case name otherwise.
func (k Kind) Describe() string {
	if t := k.Text(); t != "" {
		return "`" + t + "`"
	}
	switch k {
	case TokenEOF:
		return "the end of the file"
	case TokenIdent:
		return "an identifier"
	case TokenJsStringLiteral:
		return "a string literal"
	case TokenJsNumberLiteral:
		return "a number literal"
	}
	return strings.ToLower(strings.ReplaceAll(k.String(), "_", " "))
}

func (k Kind) IsNode() bool {
	return k >= KindList && k < kindCount
}

func (k Kind) IsToken() bool {
	return k < KindList
}

func (k Kind) IsTrivia() bool {
	switch k {
	case TokenWhitespace, TokenNewline, TokenComment, TokenMultilineComment:
		return true
	}
	return false
}

func (k Kind) IsPunct() bool {
	return k >= TokenSemicolon && k <= TokenHash
}

// IsKeyword reports reserved words and contextual keywords.
func (k Kind) IsKeyword() bool {
	return k >= TokenBreak && k <= TokenSet
}

func (k Kind) IsContextualKeyword() bool {
	return k >= TokenLet && k <= TokenSet
}

func (k Kind) IsLiteral() bool {
	switch k {
	case TokenJsNumberLiteral, TokenJsStringLiteral, TokenJsRegexLiteral, TokenTrue, TokenFalse, TokenNull:
		return true
	}
	return false
}

// IsUnknown reports the recovery node kinds.
func (k Kind) IsUnknown() bool {
	return k >= KindJsUnknownStatement && k <= KindJsUnknownBinding
}

// FromText looks up the punctuation or keyword kind spelled text.
func FromText(text string) (Kind, bool) {
	k, ok := kindsByText[text]
	return k, ok
}

// KindFromName looks up a kind by its String form, e.g. "JS_IF_STATEMENT".
func KindFromName(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// Kinds returns every defined kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

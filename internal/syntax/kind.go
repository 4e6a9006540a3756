package syntax

// NodeKind identifies the concrete variant of a tree node.
type NodeKind uint8

const (
	KindCompilationUnit NodeKind = iota
	KindUsingDirective
	KindAttributeSection
	KindAttribute
	KindAttributeArgumentList

	// declarations
	KindNamespaceDeclaration
	KindClassDeclaration
	KindStructDeclaration
	KindInterfaceDeclaration
	KindEnumDeclaration
	KindDelegateDeclaration
	KindFieldDeclaration
	KindEventFieldDeclaration
	KindEventDeclaration
	KindPropertyDeclaration
	KindIndexerDeclaration
	KindMethodDeclaration
	KindConstructorDeclaration
	KindDestructorDeclaration
	KindOperatorDeclaration
	KindConversionOperatorDeclaration
	KindEnumMemberDeclaration
	KindIncompleteMember
	KindAccessorDeclaration
	KindParameterList
	KindParameter
	KindBaseList
	KindConstructorInitializer
	KindExplicitInterface
	KindVariableDeclarator
	KindEqualsValueClause

	// types
	KindPredefinedType
	KindSimpleType
	KindQualifiedType
	KindPointerType
	KindArrayType
	KindArrayRankSpecifier

	// statements
	KindBlockStatement
	KindIfStatement
	KindElseClause
	KindSwitchStatement
	KindSwitchSection
	KindSwitchLabel
	KindForStatement
	KindForeachStatement
	KindWhileStatement
	KindDoStatement
	KindBreakStatement
	KindContinueStatement
	KindGotoStatement
	KindReturnStatement
	KindThrowStatement
	KindTryStatement
	KindCatchClause
	KindCatchDeclaration
	KindFinallyClause
	KindCheckedStatement
	KindLockStatement
	KindUsingStatement
	KindFixedStatement
	KindUnsafeStatement
	KindLabeledStatement
	KindDeclarationStatement
	KindVariableDeclaration
	KindVariableDeclarationOrExpressionList
	KindExpressionStatement
	KindEmptyStatement

	// expressions
	KindLiteralExpression
	KindIdentifierExpression
	KindThisExpression
	KindBaseExpression
	KindParenthesizedExpression
	KindMemberAccessExpression
	KindPointerMemberAccessExpression
	KindInvocationExpression
	KindElementAccessExpression
	KindArgumentList
	KindArgument
	KindPrefixUnaryExpression
	KindPostfixUnaryExpression
	KindBinaryExpression
	KindConditionalExpression
	KindAssignmentExpression
	KindIsExpression
	KindAsExpression
	KindCastExpression
	KindObjectCreationExpression
	KindArrayCreationExpression
	KindArrayInitializerExpression
	KindStackAllocExpression
	KindSizeOfExpression
	KindTypeOfExpression
	KindCheckedExpression
	KindPredefinedTypeExpression
	KindErrorExpression
	KindEmptyExpression
)

var kindNames = map[NodeKind]string{
	KindCompilationUnit:       "CompilationUnit",
	KindUsingDirective:        "UsingDirective",
	KindAttributeSection:      "AttributeSection",
	KindAttribute:             "Attribute",
	KindAttributeArgumentList: "AttributeArgumentList",

	KindNamespaceDeclaration:                "NamespaceDeclaration",
	KindClassDeclaration:                    "ClassDeclaration",
	KindStructDeclaration:                   "StructDeclaration",
	KindInterfaceDeclaration:                "InterfaceDeclaration",
	KindEnumDeclaration:                     "EnumDeclaration",
	KindDelegateDeclaration:                 "DelegateDeclaration",
	KindFieldDeclaration:                    "FieldDeclaration",
	KindEventFieldDeclaration:               "EventFieldDeclaration",
	KindEventDeclaration:                    "EventDeclaration",
	KindPropertyDeclaration:                 "PropertyDeclaration",
	KindIndexerDeclaration:                  "IndexerDeclaration",
	KindMethodDeclaration:                   "MethodDeclaration",
	KindConstructorDeclaration:              "ConstructorDeclaration",
	KindDestructorDeclaration:               "DestructorDeclaration",
	KindOperatorDeclaration:                 "OperatorDeclaration",
	KindConversionOperatorDeclaration:       "ConversionOperatorDeclaration",
	KindEnumMemberDeclaration:               "EnumMemberDeclaration",
	KindIncompleteMember:                    "IncompleteMember",
	KindAccessorDeclaration:                 "AccessorDeclaration",
	KindParameterList:                       "ParameterList",
	KindParameter:                           "Parameter",
	KindBaseList:                            "BaseList",
	KindConstructorInitializer:              "ConstructorInitializer",
	KindExplicitInterface:                   "ExplicitInterface",
	KindVariableDeclarator:                  "VariableDeclarator",
	KindEqualsValueClause:                   "EqualsValueClause",
	KindPredefinedType:                      "PredefinedType",
	KindSimpleType:                          "SimpleType",
	KindQualifiedType:                       "QualifiedType",
	KindPointerType:                         "PointerType",
	KindArrayType:                           "ArrayType",
	KindArrayRankSpecifier:                  "ArrayRankSpecifier",
	KindBlockStatement:                      "BlockStatement",
	KindIfStatement:                         "IfStatement",
	KindElseClause:                          "ElseClause",
	KindSwitchStatement:                     "SwitchStatement",
	KindSwitchSection:                       "SwitchSection",
	KindSwitchLabel:                         "SwitchLabel",
	KindForStatement:                        "ForStatement",
	KindForeachStatement:                    "ForeachStatement",
	KindWhileStatement:                      "WhileStatement",
	KindDoStatement:                         "DoStatement",
	KindBreakStatement:                      "BreakStatement",
	KindContinueStatement:                   "ContinueStatement",
	KindGotoStatement:                       "GotoStatement",
	KindReturnStatement:                     "ReturnStatement",
	KindThrowStatement:                      "ThrowStatement",
	KindTryStatement:                        "TryStatement",
	KindCatchClause:                         "CatchClause",
	KindCatchDeclaration:                    "CatchDeclaration",
	KindFinallyClause:                       "FinallyClause",
	KindCheckedStatement:                    "CheckedStatement",
	KindLockStatement:                       "LockStatement",
	KindUsingStatement:                      "UsingStatement",
	KindFixedStatement:                      "FixedStatement",
	KindUnsafeStatement:                     "UnsafeStatement",
	KindLabeledStatement:                    "LabeledStatement",
	KindDeclarationStatement:                "DeclarationStatement",
	KindVariableDeclaration:                 "VariableDeclaration",
	KindVariableDeclarationOrExpressionList: "VariableDeclarationOrExpressionList",
	KindExpressionStatement:                 "ExpressionStatement",
	KindEmptyStatement:                      "EmptyStatement",
	KindLiteralExpression:                   "LiteralExpression",
	KindIdentifierExpression:                "IdentifierExpression",
	KindThisExpression:                      "ThisExpression",
	KindBaseExpression:                      "BaseExpression",
	KindParenthesizedExpression:             "ParenthesizedExpression",
	KindMemberAccessExpression:              "MemberAccessExpression",
	KindPointerMemberAccessExpression:       "PointerMemberAccessExpression",
	KindInvocationExpression:                "InvocationExpression",
	KindElementAccessExpression:             "ElementAccessExpression",
	KindArgumentList:                        "ArgumentList",
	KindArgument:                            "Argument",
	KindPrefixUnaryExpression:               "PrefixUnaryExpression",
	KindPostfixUnaryExpression:              "PostfixUnaryExpression",
	KindBinaryExpression:                    "BinaryExpression",
	KindConditionalExpression:               "ConditionalExpression",
	KindAssignmentExpression:                "AssignmentExpression",
	KindIsExpression:                        "IsExpression",
	KindAsExpression:                        "AsExpression",
	KindCastExpression:                      "CastExpression",
	KindObjectCreationExpression:            "ObjectCreationExpression",
	KindArrayCreationExpression:             "ArrayCreationExpression",
	KindArrayInitializerExpression:          "ArrayInitializerExpression",
	KindStackAllocExpression:                "StackAllocExpression",
	KindSizeOfExpression:                    "SizeOfExpression",
	KindTypeOfExpression:                    "TypeOfExpression",
	KindCheckedExpression:                   "CheckedExpression",
	KindPredefinedTypeExpression:            "PredefinedTypeExpression",
	KindErrorExpression:                     "ErrorExpression",
	KindEmptyExpression:                     "EmptyExpression",
}

func (k NodeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

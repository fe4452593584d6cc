package main

type Expression interface {
	is_Expression()
}

// Literal wraps a single IDENTIFIER or NUMBER token.
type Literal struct {
	Token Token
}

func (v Literal) is_Expression() {}

type FunctionCall struct {
	Name      Token
	Arguments []Expression
}

func (v FunctionCall) is_Expression() {}

type BinaryOperation struct {
	Operator Token
	Left     Expression
	Right    Expression
}

func (v BinaryOperation) is_Expression() {}

type Statement interface {
	is_Statement()
}

type ExpressionStatement struct {
	Expression Expression
}

func (v ExpressionStatement) is_Statement() {}

type If struct {
	Test Expression
	Body []Statement
}

func (v If) is_Statement() {}

type FunctionDeclaration struct {
	Name       Token
	Parameters []Token
	Body       []Statement
}

func (v FunctionDeclaration) is_Statement() {}

type Return struct {
	Expression Expression
}

func (v Return) is_Statement() {}

type Local struct {
	Name       Token
	Expression Expression
}

func (v Local) is_Statement() {}

type AST []Statement

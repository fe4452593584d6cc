package main

// Parser turns a lexed token sequence into an AST. It holds no mutable
// state: every rule threads its cursor explicitly and the raw buffer is
// only read for diagnostics, so one Parser value can serve concurrent
// parses of the same input.
//
// Every rule returns (node, nextIndex, err) with a three-way meaning:
// a non-nil node is a match ending just before nextIndex; a nil node with
// a nil error means the production does not start at index, and the caller
// may try another production; a non-nil error means the production started
// but is malformed, which is fatal for the whole parse.
type Parser struct {
	raw    []rune
	tokens []Token
}

func NewParser(raw []rune, tokens []Token) Parser {
	return Parser{raw: raw, tokens: tokens}
}

func (p Parser) expectKeyword(index int, value string) bool {
	if index >= len(p.tokens) {
		return false
	}

	t := p.tokens[index]
	return t.Kind == KEYWORD && t.Value == value
}

func (p Parser) expectSyntax(index int, value string) bool {
	if index >= len(p.tokens) {
		return false
	}

	t := p.tokens[index]
	return t.Kind == SYNTAX && t.Value == value
}

func (p Parser) expectIdentifier(index int) bool {
	if index >= len(p.tokens) {
		return false
	}

	return p.tokens[index].Kind == IDENTIFIER
}

func (p Parser) expectNumber(index int) bool {
	if index >= len(p.tokens) {
		return false
	}

	return p.tokens[index].Kind == NUMBER
}

// errorAt builds a SyntaxError pointing at the token at index. A violation
// at the end of the sequence has no offending token, so the diagnostic
// anchors to the last token instead.
func (p Parser) errorAt(index int, message string) error {
	tok := p.tokens[len(p.tokens)-1]
	if index < len(p.tokens) {
		tok = p.tokens[index]
	}
	return SyntaxError{Message: message, Token: tok, Raw: p.raw}
}

// expressionEnders are the syntax tokens that terminate an expression
// rather than extend it into a binary operation.
var expressionEnders = map[string]bool{
	";": true,
	",": true,
	"(": true,
	")": true,
}

// parseExpression parses a literal, a function call, or a single binary
// operation between two literals. There is no operator precedence and no
// nesting beyond call arguments.
func (p Parser) parseExpression(index int) (Expression, int, error) {
	if !p.expectIdentifier(index) && !p.expectNumber(index) {
		return nil, index, nil
	}

	left := Literal{Token: p.tokens[index]}
	nextIndex := index + 1

	if p.expectSyntax(nextIndex, "(") {
		nextIndex++ // Skip past open paren

		var arguments []Expression
		for !p.expectSyntax(nextIndex, ")") {
			if len(arguments) > 0 {
				if !p.expectSyntax(nextIndex, ",") {
					return nil, index, p.errorAt(nextIndex, "Expected comma between function call arguments")
				}
				nextIndex++ // Skip past comma
			}

			argument, nextNextIndex, err := p.parseExpression(nextIndex)
			if err != nil {
				return nil, index, err
			}
			if argument == nil {
				return nil, index, p.errorAt(nextIndex, "Expected valid expression in function call arguments")
			}
			nextIndex = nextNextIndex
			arguments = append(arguments, argument)
		}
		nextIndex++ // Skip past close paren

		return FunctionCall{Name: p.tokens[index], Arguments: arguments}, nextIndex, nil
	}

	// A delimiter or a token of any non-syntax kind ends the expression as
	// a bare literal. Any other syntax token commits to a binary operation.
	if nextIndex >= len(p.tokens) || p.tokens[nextIndex].Kind != SYNTAX || expressionEnders[p.tokens[nextIndex].Value] {
		return left, nextIndex, nil
	}

	operator := p.tokens[nextIndex]
	nextIndex++ // Skip past operator

	if !p.expectIdentifier(nextIndex) && !p.expectNumber(nextIndex) {
		return nil, index, p.errorAt(nextIndex, "Expected valid right hand side binary operand")
	}
	right := Literal{Token: p.tokens[nextIndex]}
	nextIndex++ // Skip past right hand operand

	return BinaryOperation{Operator: operator, Left: left, Right: right}, nextIndex, nil
}

func (p Parser) parseFunction(index int) (Statement, int, error) {
	if !p.expectKeyword(index, "function") {
		return nil, index, nil
	}

	nextIndex := index + 1 // Skip past function
	if !p.expectIdentifier(nextIndex) {
		return nil, index, p.errorAt(nextIndex, "Expected valid identifier for function name")
	}
	name := p.tokens[nextIndex]
	nextIndex++ // Skip past name

	if !p.expectSyntax(nextIndex, "(") {
		return nil, index, p.errorAt(nextIndex, "Expected open parenthesis in function declaration")
	}
	nextIndex++ // Skip past open paren

	var parameters []Token
	for !p.expectSyntax(nextIndex, ")") {
		if len(parameters) > 0 {
			if !p.expectSyntax(nextIndex, ",") {
				return nil, index, p.errorAt(nextIndex, "Expected comma or close parenthesis after parameter in function declaration")
			}
			nextIndex++ // Skip past comma
		}

		if !p.expectIdentifier(nextIndex) {
			return nil, index, p.errorAt(nextIndex, "Expected valid identifier for function parameter")
		}
		parameters = append(parameters, p.tokens[nextIndex])
		nextIndex++ // Skip past parameter
	}
	nextIndex++ // Skip past close paren

	var body []Statement
	for !p.expectKeyword(nextIndex, "end") {
		statement, nextNextIndex, err := p.parseStatement(nextIndex)
		if err != nil {
			return nil, index, err
		}
		if statement == nil {
			return nil, index, p.errorAt(nextIndex, "Expected valid statement in function declaration")
		}
		nextIndex = nextNextIndex
		body = append(body, statement)
	}
	nextIndex++ // Skip past end

	return FunctionDeclaration{Name: name, Parameters: parameters, Body: body}, nextIndex, nil
}

func (p Parser) parseReturn(index int) (Statement, int, error) {
	if !p.expectKeyword(index, "return") {
		return nil, index, nil
	}

	nextIndex := index + 1 // Skip past return
	expression, nextNextIndex, err := p.parseExpression(nextIndex)
	if err != nil {
		return nil, index, err
	}
	if expression == nil {
		return nil, index, p.errorAt(nextIndex, "Expected valid expression in return statement")
	}
	nextIndex = nextNextIndex

	if !p.expectSyntax(nextIndex, ";") {
		return nil, index, p.errorAt(nextIndex, "Expected semicolon in return statement")
	}
	nextIndex++ // Skip past semicolon

	return Return{Expression: expression}, nextIndex, nil
}

func (p Parser) parseLocal(index int) (Statement, int, error) {
	if !p.expectKeyword(index, "local") {
		return nil, index, nil
	}

	nextIndex := index + 1 // Skip past local
	if !p.expectIdentifier(nextIndex) {
		return nil, index, p.errorAt(nextIndex, "Expected valid identifier for local name")
	}
	name := p.tokens[nextIndex]
	nextIndex++ // Skip past name

	expression, nextNextIndex, err := p.parseExpression(nextIndex)
	if err != nil {
		return nil, index, err
	}
	if expression == nil {
		return nil, index, p.errorAt(nextIndex, "Expected valid expression in local declaration")
	}
	nextIndex = nextNextIndex

	if !p.expectSyntax(nextIndex, ";") {
		return nil, index, p.errorAt(nextIndex, "Expected semicolon in local declaration")
	}
	nextIndex++ // Skip past semicolon

	return Local{Name: name, Expression: expression}, nextIndex, nil
}

func (p Parser) parseIf(index int) (Statement, int, error) {
	if !p.expectKeyword(index, "if") {
		return nil, index, nil
	}

	nextIndex := index + 1 // Skip past if
	test, nextNextIndex, err := p.parseExpression(nextIndex)
	if err != nil {
		return nil, index, err
	}
	if test == nil {
		return nil, index, p.errorAt(nextIndex, "Expected valid expression for if test")
	}
	nextIndex = nextNextIndex

	if !p.expectKeyword(nextIndex, "then") {
		return nil, index, p.errorAt(nextIndex, "Expected then keyword in if statement")
	}
	nextIndex++ // Skip past then

	var body []Statement
	for !p.expectKeyword(nextIndex, "end") {
		statement, nextNextIndex, err := p.parseStatement(nextIndex)
		if err != nil {
			return nil, index, err
		}
		if statement == nil {
			return nil, index, p.errorAt(nextIndex, "Expected valid statement in if body")
		}
		nextIndex = nextNextIndex
		body = append(body, statement)
	}
	nextIndex++ // Skip past end

	return If{Test: test, Body: body}, nextIndex, nil
}

func (p Parser) parseExpressionStatement(index int) (Statement, int, error) {
	expression, nextIndex, err := p.parseExpression(index)
	if err != nil {
		return nil, index, err
	}
	if expression == nil {
		return nil, index, nil
	}

	if !p.expectSyntax(nextIndex, ";") {
		return nil, index, p.errorAt(nextIndex, "Expected semicolon after expression")
	}
	nextIndex++ // Skip past semicolon

	return ExpressionStatement{Expression: expression}, nextIndex, nil
}

// parseStatement tries each statement production in a fixed order and
// returns the first match. The keyword-guarded rules cannot shadow each
// other; the expression statement only applies to identifier- or
// number-initial sequences, which no keyword rule claims.
func (p Parser) parseStatement(index int) (Statement, int, error) {
	parsers := []func(int) (Statement, int, error){
		p.parseIf,
		p.parseExpressionStatement,
		p.parseReturn,
		p.parseFunction,
		p.parseLocal,
	}

	for _, parse := range parsers {
		statement, nextIndex, err := parse(index)
		if err != nil {
			return nil, index, err
		}
		if statement != nil {
			return statement, nextIndex, nil
		}
	}

	return nil, index, nil
}

// Parse consumes the whole token sequence and returns the ordered list of
// top-level statements. The first syntax error aborts the parse; no
// partial AST is returned.
func (p Parser) Parse() (AST, error) {
	var ast AST
	index := 0
	for index < len(p.tokens) {
		statement, nextIndex, err := p.parseStatement(index)
		if err != nil {
			return nil, err
		}
		if statement == nil {
			return nil, p.errorAt(index, "Invalid token while parsing")
		}

		index = nextIndex
		ast = append(ast, statement)
	}

	return ast, nil
}

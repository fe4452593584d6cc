package main

import (
	"fmt"
	"strings"
)

func (v Literal) String() string {
	return v.Token.Value
}

func (v FunctionCall) String() string {
	var args []string
	for _, arg := range v.Arguments {
		args = append(args, fmt.Sprint(arg))
	}
	return fmt.Sprintf("%s(%s)", v.Name.Value, strings.Join(args, ", "))
}

func (v BinaryOperation) String() string {
	return fmt.Sprintf("%s %s %s", v.Left, v.Operator.Value, v.Right)
}

func (v ExpressionStatement) String() string {
	return fmt.Sprintf("%s;", v.Expression)
}

func (v Return) String() string {
	return fmt.Sprintf("return %s;", v.Expression)
}

func (v Local) String() string {
	return fmt.Sprintf("local %s %s;", v.Name.Value, v.Expression)
}

func (v If) String() string {
	return fmt.Sprintf("if %s then\n%send", v.Test, indented(v.Body))
}

func (v FunctionDeclaration) String() string {
	var params []string
	for _, param := range v.Parameters {
		params = append(params, param.Value)
	}
	return fmt.Sprintf("function %s(%s)\n%send", v.Name.Value, strings.Join(params, ", "), indented(v.Body))
}

func (a AST) String() string {
	var lines []string
	for _, stmt := range a {
		lines = append(lines, fmt.Sprint(stmt))
	}
	return strings.Join(lines, "\n")
}

func indented(body []Statement) string {
	var out strings.Builder
	for _, stmt := range body {
		for _, line := range strings.Split(fmt.Sprint(stmt), "\n") {
			out.WriteString("  ")
			out.WriteString(line)
			out.WriteString("\n")
		}
	}
	return out.String()
}

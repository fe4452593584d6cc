package main

import "fmt"

type UnexpectedCharacter struct {
	Character rune
	Location  Location
	Raw       []rune
}

func (e UnexpectedCharacter) Error() string {
	return e.Location.Debug(e.Raw, fmt.Sprintf("Unable to lex character '%c'", e.Character))
}

// SyntaxError is a fatal parse failure: a production committed past its
// leading token and found the input malformed.
type SyntaxError struct {
	Message string
	Token   Token
	Raw     []rune
}

func (e SyntaxError) Error() string {
	return e.Token.Loc.Debug(e.Raw, e.Message)
}

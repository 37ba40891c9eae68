package check

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ParseError describes why an example is not valid JSON
type ParseError struct {
	Msg    string `json:"msg"`
	Line   int    `json:"line,omitempty"`   // 1-based line inside the normalized text
	Column int    `json:"column,omitempty"` // 1-based column inside that line
	Char   int    `json:"char"`             // 0-based byte offset of the offending character
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s: line %d column %d (char %d)", e.Msg, e.Line, e.Column, e.Char)
}

// Parse attempts to decode text as JSON. It returns nil when the text is a
// single valid JSON value, otherwise a *ParseError.
func Parse(text string) error {
	var v any
	err := json.Unmarshal([]byte(text), &v)
	if err == nil {
		return nil
	}

	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return &ParseError{Msg: err.Error()}
	}

	char := int(syntaxErr.Offset) - 1
	if char < 0 {
		char = 0
	}
	if char > len(text) {
		char = len(text)
	}
	line, col := position(text, char)

	return &ParseError{
		Msg:    syntaxErr.Error(),
		Line:   line,
		Column: col,
		Char:   char,
	}
}

func position(text string, offset int) (line, col int) {
	before := text[:offset]
	line = strings.Count(before, "\n") + 1
	col = offset - strings.LastIndex(before, "\n")
	return line, col
}

package domain

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

const MaxInsertTextLength = 50

type TextProblem int

const (
	EmptyText TextProblem = iota + 1
	TextTooLong
	IllegalCharacter
)

func (p TextProblem) String() string {
	switch p {
	case EmptyText:
		return "empty text"
	case TextTooLong:
		return "text too long"
	case IllegalCharacter:
		return "illegal character"
	default:
		return "unknown"
	}
}

// TextError describes why a rename text was rejected. Char and Index are
// only set for IllegalCharacter.
type TextError struct {
	Problem TextProblem
	Char    rune
	Index   int
}

func (e *TextError) Error() string {
	switch e.Problem {
	case EmptyText:
		return "text to insert must not be empty"
	case TextTooLong:
		return fmt.Sprintf("text to insert must be at most %d characters", MaxInsertTextLength)
	case IllegalCharacter:
		return fmt.Sprintf("text to insert contains illegal character %q at index %d", e.Char, e.Index)
	default:
		return e.Problem.String()
	}
}

// ValidateInsertText accepts 1 to 50 letters, digits, underscores or dashes.
func ValidateInsertText(phrase string) error {
	n := utf8.RuneCountInString(phrase)
	if n == 0 {
		return &TextError{Problem: EmptyText}
	}
	if n > MaxInsertTextLength {
		return &TextError{Problem: TextTooLong}
	}
	index := 0
	for _, r := range phrase {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
			return &TextError{Problem: IllegalCharacter, Char: r, Index: index}
		}
		index++
	}
	return nil
}

package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmptyMessage   = errors.New("text is empty")
	ErrMessageTooLong = errors.New("text is too long")
)

// OutgoingMessage is a single chatbox send.
type OutgoingMessage struct {
	Text      string
	Immediate bool
}

// TextLength counts the characters of the trimmed text.
func TextLength(text string) int {
	return utf8.RuneCountInString(strings.TrimSpace(text))
}

// NewOutgoingMessage trims text and checks it against maxLength.
func NewOutgoingMessage(text string, immediate bool, maxLength int) (OutgoingMessage, error) {
	trimmed := strings.TrimSpace(text)
	n := utf8.RuneCountInString(trimmed)
	if n == 0 {
		return OutgoingMessage{}, ErrEmptyMessage
	}
	if n > maxLength {
		return OutgoingMessage{}, fmt.Errorf("%w: %d/%d characters", ErrMessageTooLong, n, maxLength)
	}
	return OutgoingMessage{Text: trimmed, Immediate: immediate}, nil
}

// Preview shortens text to n characters, marking the cut with "...".
func Preview(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}

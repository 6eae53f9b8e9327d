package session

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidInput marks text that is not a usable menu choice or quantity.
var ErrInvalidInput = errors.New("invalid input")

// prompt writes label and reads one line without its line ending. A final
// unterminated line is still returned; io.EOF is only reported once there
// is nothing left to read.
func (s *Session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)

	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Session) promptQuantity(label string) (int, error) {
	line, err := s.prompt(label)
	if err != nil {
		return 0, err
	}
	return parseQuantity(line)
}

func parseChoice(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < choiceMarket || n > choiceExit {
		return 0, fmt.Errorf("%w: menu choice %q", ErrInvalidInput, s)
	}
	return n, nil
}

// parseQuantity accepts a positive base-10 integer.
func parseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: quantity %q is not a whole number", ErrInvalidInput, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: quantity %d must be positive", ErrInvalidInput, n)
	}
	return n, nil
}

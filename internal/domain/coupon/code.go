package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidCode = errors.New("invalid coupon code format")

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

// Code is a canonicalized coupon code: trimmed, uppercased, alphanumeric.
type Code string

func NewCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !codeRegex.MatchString(s) {
		return "", ErrInvalidCode
	}
	return Code(s), nil
}

func (c Code) String() string {
	return string(c)
}

package greeting

import (
	"errors"
	"fmt"
)

// ErrInvalidGender is returned when a value is not one of the known genders.
var ErrInvalidGender = errors.New("invalid gender")

// Gender is a closed enumeration. Its wire value is the lowercase tag.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// genders is the explicit lookup table used at the input boundary.
// Matching is exact and case-sensitive.
var genders = map[string]Gender{
	string(Male):   Male,
	string(Female): Female,
}

// Genders returns the allowed values in declaration order.
func Genders() []Gender {
	return []Gender{Male, Female}
}

// ParseGender maps a wire tag to its Gender.
func ParseGender(s string) (Gender, error) {
	g, ok := genders[s]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidGender, s)
	}
	return g, nil
}

func (g Gender) Valid() bool {
	_, ok := genders[string(g)]
	return ok
}

func (g Gender) String() string {
	return string(g)
}

func (g Gender) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGender, string(g))
	}
	return []byte(g), nil
}

func (g *Gender) UnmarshalText(b []byte) error {
	parsed, err := ParseGender(string(b))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Package greeting holds the greeting messages served by the REST layer.
// Every function is pure: the same input always yields the same Greeting.
package greeting

import "fmt"

// Greeting is the single-key payload returned by every functional route.
type Greeting struct {
	Message string `json:"message"`
}

// Root greets callers of the service root.
func Root() Greeting {
	return Greeting{Message: "Hello World"}
}

// Welcome is the fixed greeting.
func Welcome() Greeting {
	return Greeting{Message: "Hello, you are welcome."}
}

// Named greets name verbatim, with no trimming or escaping.
func Named(name string) Greeting {
	return Greeting{Message: "Hello, " + name}
}

// Gendered greets according to g. Values outside the enumeration are
// rejected with ErrInvalidGender.
func Gendered(g Gender) (Greeting, error) {
	switch g {
	case Male:
		return Greeting{Message: "Hello, you are a man."}, nil
	case Female:
		return Greeting{Message: "Hello, you are a woman."}, nil
	}
	return Greeting{}, fmt.Errorf("%w: %q", ErrInvalidGender, string(g))
}

// internal/ui/rest/handlers/validation.go
package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/khedhrije/greeter/internal/domain/greeting"
)

// ValidationIssue describes one rejected input.
type ValidationIssue struct {
	Type  string            `json:"type"`
	Loc   []string          `json:"loc"`
	Msg   string            `json:"msg"`
	Input any               `json:"input"`
	Ctx   map[string]string `json:"ctx,omitempty"`
}

// ValidationError is the 422 response body.
type ValidationError struct {
	Detail []ValidationIssue `json:"detail"`
}

var registerOnce sync.Once

// RegisterValidators installs the custom binding tags on gin's validator.
// Safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		err = v.RegisterValidation("gender", validateGender)
	})
	return err
}

func validateGender(fl validator.FieldLevel) bool {
	_, err := greeting.ParseGender(fl.Field().String())
	return err == nil
}

// NewValidationError converts a binding error for the uri struct into
// the 422 body. Locations use the struct's uri tags.
func NewValidationError(err error, uri any) ValidationError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return ValidationError{Detail: []ValidationIssue{{
			Type: "value_error",
			Loc:  []string{"path"},
			Msg:  err.Error(),
		}}}
	}

	out := ValidationError{Detail: make([]ValidationIssue, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		issue := ValidationIssue{
			Loc:   []string{"path", uriName(uri, fe.StructField())},
			Input: rawInput(fe.Value()),
		}
		switch fe.Tag() {
		case "gender":
			expected := describeAllowed(greeting.Genders())
			issue.Type = "enum"
			issue.Msg = "Input should be " + expected
			issue.Ctx = map[string]string{"expected": expected}
		case "required":
			issue.Type = "missing"
			issue.Msg = "Field required"
		default:
			issue.Type = fe.Tag()
			issue.Msg = fmt.Sprintf("Input failed %s validation", fe.Tag())
		}
		out.Detail = append(out.Detail, issue)
	}
	return out
}

// rawInput strips named string types so the offending value is echoed
// as-is instead of going through the type's own marshaller.
func rawInput(v any) any {
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String()
	}
	return v
}

// uriName resolves the uri tag of field on the struct uri points to.
func uriName(uri any, field string) string {
	t := reflect.TypeOf(uri)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t != nil && t.Kind() == reflect.Struct {
		if f, ok := t.FieldByName(field); ok {
			if name := f.Tag.Get("uri"); name != "" {
				return name
			}
		}
	}
	return strings.ToLower(field)
}

// describeAllowed renders ['a','b','c'] as "'a', 'b' or 'c'".
func describeAllowed(values []greeting.Gender) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v.String() + "'"
	}
	if len(quoted) < 2 {
		return strings.Join(quoted, "")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}

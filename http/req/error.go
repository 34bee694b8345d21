package req

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xy-planning-network/wings"
)

// A ValidationError is an issue with a concrete value not matching the rule set on its field.
type ValidationError struct {
	Field string `json:"field"`
	Got   any    `json:"got"`
	Rule  string `json:"rule,omitempty"`
}

// ValidationErrors is a set of ValidationError.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, err := range v {
		msgs[i] = fmt.Sprintf("field=%q rule=%q got=%q", err.Field, err.Rule, fmt.Sprint(err.Got))
	}

	return strings.Join(msgs, "\n")
}

func (v ValidationErrors) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		E []ValidationError `json:"validationErrors,omitempty"`
	}{v})
}

func (ValidationErrors) Unwrap() error { return wings.ErrNotValid }

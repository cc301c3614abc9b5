// Package validate checks user input before it reaches a data service.
package validate

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// URL reports whether text is an absolute http(s) URL.
func URL(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	if !strings.HasPrefix(text, "http://") && !strings.HasPrefix(text, "https://") {
		return false
	}
	return validation.Validate(text, is.URL) == nil
}

// Email reports whether text is a well formed e-mail address.
func Email(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	return validation.Validate(text, is.EmailFormat) == nil
}

// Required reports whether text has any non blank content.
func Required(text string) bool {
	return validation.Validate(strings.TrimSpace(text), validation.Required) == nil
}

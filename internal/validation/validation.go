package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Rule describes the checks applied to a single form value. Length limits
// apply to strings after trimming, Min/Max apply to integers.
type Rule struct {
	Value     any
	Required  bool
	MinLength *int
	MaxLength *int
	Min       *int
	Max       *int
}

// Int is a helper for filling the optional Rule limits.
func Int(n int) *int {
	return &n
}

// Validate reports whether r.Value passes every limit set on r.
func Validate(r Rule) bool {
	valid := true

	if r.Required {
		valid = valid && r.Value != nil && strings.TrimSpace(fmt.Sprint(r.Value)) != ""
	}

	if s, ok := r.Value.(string); ok {
		n := utf8.RuneCountInString(strings.TrimSpace(s))
		if r.MinLength != nil {
			valid = valid && n >= *r.MinLength
		}
		if r.MaxLength != nil {
			valid = valid && n <= *r.MaxLength
		}
	}

	if n, ok := r.Value.(int); ok {
		if r.Min != nil {
			valid = valid && n >= *r.Min
		}
		if r.Max != nil {
			valid = valid && n <= *r.Max
		}
	}

	return valid
}

package validate

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Messages flattens an ozzo-validation result into an ordered list of
// human-readable violation messages, one per failed field. The order is
// deterministic (sorted by field name) so clients always see the same list
// for the same payload.
func Messages(err error) []string {
	if err == nil {
		return nil
	}

	var violations validation.Errors
	if !errors.As(err, &violations) {
		return []string{err.Error()}
	}

	fields := make([]string, 0, len(violations))
	for field := range violations {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, violations[field].Error())
	}
	return messages
}

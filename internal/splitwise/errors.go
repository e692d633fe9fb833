package splitwise

import (
	"encoding/json"
	"sort"
	"strings"
)

// errorList holds the error collection attached to write responses.
//
// The API is loose about the shape: it may be absent, null, an empty array,
// or an object mapping field names to one message or a list of messages.
type errorList struct {
	fields map[string][]string
}

func (e *errorList) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "" || trimmed == "null" || strings.HasPrefix(trimmed, "[") {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	for field, msg := range raw {
		var many []string
		if err := json.Unmarshal(msg, &many); err == nil {
			e.add(field, many...)
			continue
		}

		var one string
		if err := json.Unmarshal(msg, &one); err == nil {
			e.add(field, one)
			continue
		}

		e.add(field, string(msg))
	}

	return nil
}

func (e *errorList) add(field string, msgs ...string) {
	if e.fields == nil {
		e.fields = make(map[string][]string)
	}

	e.fields[field] = append(e.fields[field], msgs...)
}

func (e errorList) empty() bool {
	return len(e.fields) == 0
}

// flatten renders the collection as "field: msg1; msg2" pairs in a
// deterministic field order.
func (e errorList) flatten() string {
	fields := make([]string, 0, len(e.fields))
	for field := range e.fields {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e.fields[field], "; "))
	}

	return strings.Join(parts, ", ")
}

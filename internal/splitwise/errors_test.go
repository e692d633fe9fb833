package splitwise

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorListUnmarshal(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		wantEmpty bool
		wantFlat  string
	}{
		{
			name:      "Null",
			input:     `null`,
			wantEmpty: true,
		},
		{
			name:      "Empty array",
			input:     `[]`,
			wantEmpty: true,
		},
		{
			name:      "Empty object",
			input:     `{}`,
			wantEmpty: true,
		},
		{
			name:     "Field with message list",
			input:    `{"base": ["first", "second"]}`,
			wantFlat: "base: first; second",
		},
		{
			name:     "Field with single message",
			input:    `{"name": "can't be blank"}`,
			wantFlat: "name: can't be blank",
		},
		{
			name:     "Fields flatten in sorted order",
			input:    `{"user": ["cannot be invited"], "base": ["invalid request"]}`,
			wantFlat: "base: invalid request, user: cannot be invited",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var e errorList
			require.NoError(t, json.Unmarshal([]byte(tc.input), &e))

			require.Equal(t, tc.wantEmpty, e.empty())

			if tc.wantFlat != "" {
				require.Equal(t, tc.wantFlat, e.flatten())
			}
		})
	}
}

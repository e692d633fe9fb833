package configpkg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-split/pkg/errorspkg"
	"github.com/go-petr/pet-split/pkg/randompkg"
)

func TestValidateCredentials(t *testing.T) {
	apiKey := randompkg.String(32)
	consumerKey := randompkg.String(32)
	consumerSecret := randompkg.String(32)

	testCases := []struct {
		name      string
		config    Config
		wantErr   error
		wantInMsg string
	}{
		{
			name: "OK",
			config: Config{
				APIKey:         apiKey,
				ConsumerKey:    consumerKey,
				ConsumerSecret: consumerSecret,
			},
		},
		{
			name:      "All missing",
			config:    Config{},
			wantErr:   errorspkg.ErrUnconfigured,
			wantInMsg: "API_KEY, CONSUMER_KEY, CONSUMER_SECRET",
		},
		{
			name: "Consumer secret missing",
			config: Config{
				APIKey:      apiKey,
				ConsumerKey: consumerKey,
			},
			wantErr:   errorspkg.ErrUnconfigured,
			wantInMsg: "CONSUMER_SECRET",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.ValidateCredentials()

			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.True(t, errors.Is(err, tc.wantErr))
			require.Contains(t, err.Error(), tc.wantInMsg)
		})
	}
}

// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/go-petr/pet-split/pkg/errorspkg"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environement variables.
type Config struct {
	APIKey           string `mapstructure:"API_KEY"`
	ConsumerKey      string `mapstructure:"CONSUMER_KEY"`
	ConsumerSecret   string `mapstructure:"CONSUMER_SECRET"`
	SplitwiseAddress string `mapstructure:"SPLITWISE_ADDRESS"`
	ServerAddress    string `mapstructure:"SERVER_ADDRESS"`
	Environement     string `mapstructure:"GO_ENV"`
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = viper.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}

// ValidateCredentials checks that all required splitwise credentials are set.
//
// A missing credential is reported as errorspkg.ErrUnconfigured naming every
// absent field. Startup treats it as a warning so that the server still
// comes up and tool calls fail at the remote layer instead.
func (c Config) ValidateCredentials() error {
	var missing []string

	if c.APIKey == "" {
		missing = append(missing, "API_KEY")
	}

	if c.ConsumerKey == "" {
		missing = append(missing, "CONSUMER_KEY")
	}

	if c.ConsumerSecret == "" {
		missing = append(missing, "CONSUMER_SECRET")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", errorspkg.ErrUnconfigured, strings.Join(missing, ", "))
	}

	return nil
}

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configFileName = "dateconv"
	configFileType = "yaml"
	envPrefix      = "DATECONV"

	cfgKeyZone    = "zone"
	cfgKeyLocale  = "locale"
	cfgKeyDialect = "dialect"

	defaultDialect = "auto"
)

// loadConfig reads dateconv.yaml from the working directory or supplied path.
// Flags win over environment, environment wins over the file, a missing default file is not an error.
func loadConfig(cmd *cobra.Command, configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyDialect, defaultDialect)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	for _, key := range []string{cfgKeyZone, cfgKeyLocale, cfgKeyDialect} {
		if flag := cmd.Flags().Lookup(key); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %v: %w", key, err)
			}
		}
	}
	if configFile != "" {
		if _, err := os.Stat(configFile); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/concave-dev/tabula/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. TABULA_API or
// TABULA_LOG_LEVEL.
const EnvPrefix = "TABULA"

// DefaultConfigFile returns $HOME/.tabula/config.yaml, or "" when the home
// directory is unknown.
func DefaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tabula", "config.yaml")
}

// LoadConfig layers the config file and TABULA_* environment variables under
// the command's flags. Flags given on the command line always win; any other
// flag whose name appears as a key in the file or environment takes that
// value. A missing default config file is ignored; a missing file named with
// --config is an error.
func LoadConfig(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	configFile := Global.ConfigFile
	explicit := configFile != ""
	if !explicit {
		configFile = DefaultConfigFile()
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
			if explicit || !missing {
				return fmt.Errorf("failed to read config file %s: %w", configFile, err)
			}
		} else {
			logging.Debug("Loaded config file %s", v.ConfigFileUsed())
		}
	}

	var applyErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if applyErr != nil || f.Changed || f.Name == "config" || !v.IsSet(f.Name) {
			return
		}
		value := v.GetString(f.Name)
		if err := cmd.Flags().Set(f.Name, value); err != nil {
			applyErr = fmt.Errorf("invalid value %q for %s from config: %w", value, f.Name, err)
		}
	})
	return applyErr
}

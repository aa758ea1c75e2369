package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "ADDRBOOK"

type Settings struct {
	DataDir    string `mapstructure:"data_dir" yaml:"data_dir" json:"data_dir"`
	LogDir     string `mapstructure:"log_dir" yaml:"log_dir" json:"log_dir"`
	TableStyle string `mapstructure:"table_style" yaml:"table_style" json:"table_style"`
	Verbose    bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`
}

var current Settings

func Get() Settings { return current }

// DefaultDir is ~/.config/addrbook of the invoking user, also under sudo.
func DefaultDir() string {
	dir, _ := os.UserConfigDir()
	if su := os.Getenv("SUDO_USER"); su != "" {
		if u, err := user.Lookup(su); err == nil && u.HomeDir != "" {
			dir = filepath.Join(u.HomeDir, ".config")
		}
	}
	return filepath.Join(dir, "addrbook")
}

func setDefaults(v *viper.Viper) {
	base := DefaultDir()
	v.SetDefault("data_dir", filepath.Join(base, "data"))
	v.SetDefault("log_dir", filepath.Join(base, "logs"))
	v.SetDefault("table_style", "light")
	v.SetDefault("verbose", false)
}

// Load resolves settings from defaults, an optional YAML file, ADDRBOOK_*
// environment variables and flags, in increasing priority. Flags are looked
// up by the same key with '_' replaced by '-'.
func Load(configFile string, flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("%s: %w", configFile, err)
		}
	}
	if flags != nil {
		for _, key := range []string{"data_dir", "log_dir", "table_style", "verbose"} {
			if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, err
				}
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	current = s
	return s, nil
}

func (s Settings) Validate() error {
	if s.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	switch s.TableStyle {
	case "light", "rounded", "bold", "double", "default":
	default:
		return fmt.Errorf("unknown table_style: %s", s.TableStyle)
	}
	return nil
}

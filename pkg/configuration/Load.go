package configuration

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/wildme/dockerctl/pkg/static"
	"gopkg.in/yaml.v3"
)

// NewViper returns a viper instance with defaults and DOCKERCTL_ environment binding set up.
// Flags bound on it by the caller take precedence over the file.
func NewViper() *viper.Viper {
	v := viper.New()

	defaults := NewConfig()

	v.SetDefault("log", defaults.Log)
	v.SetDefault("platform", defaults.Platform)
	v.SetDefault("imagePrefixes", defaults.ImagePrefixes)
	v.SetDefault("portBase", defaults.PortBase)
	v.SetDefault("retries", defaults.Retries)
	v.SetDefault("interval", defaults.Interval)
	v.SetDefault("listen", defaults.Listen)

	v.SetEnvPrefix(static.ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetConfigType(static.CONFIG_TYPE)

	return v
}

// LoadDotEnv exports the variables in path unless they are already set. A missing file is fine.
func LoadDotEnv(path string) error {
	if path == "" {
		path = static.DEFAULT_DOT_ENV
	}

	err := godotenv.Load(path)

	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

// Load reads the config file at path, or looks for dockerctl.yaml in the working
// directory when path is empty. Without any file the defaults and environment are used.
func Load(v *viper.Viper, path string) (*Configuration, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(static.CONFIG_NAME)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError

		if path != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return unmarshal(v)
}

// ReadConfig loads the configuration from a YAML stream.
func ReadConfig(v *viper.Viper, reader io.Reader) (*Configuration, error) {
	if err := v.ReadConfig(reader); err != nil {
		return nil, err
	}

	return unmarshal(v)
}

func Save(config *Configuration, path string) error {
	yamlObj, err := yaml.Marshal(config)

	if err != nil {
		return err
	}

	return os.WriteFile(path, yamlObj, 0644)
}

func unmarshal(v *viper.Viper) (*Configuration, error) {
	configObj := &Configuration{}

	if err := v.Unmarshal(configObj); err != nil {
		return nil, err
	}

	if err := configObj.Validate(); err != nil {
		return nil, err
	}

	return configObj, nil
}

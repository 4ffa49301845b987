package utils

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"
)

// ReadConfig loads the env file (if any) and then the yaml config file into o.
// The config path comes from the `--config` flag, then falls back to defaultPath
// if that file exists.
func ReadConfig(cliCtx *cli.Context, defaultPath string, o interface{}) error {
	if err := LoadEnvFile(cliCtx.GlobalString(EnvFileFlag.Name)); err != nil {
		return err
	}

	configFilePath := cliCtx.GlobalString(ConfigFileFlag.Name)
	if configFilePath == "" {
		if _, err := os.Stat(defaultPath); err != nil {
			return nil
		}
		configFilePath = defaultPath
	}

	return ReadYamlConfig(configFilePath, o)
}

// LoadEnvFile loads the dotenv file, a missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "load env file %s failed", path)
	}

	return nil
}

func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	return b, nil
}

func ReadYamlConfig(path string, o interface{}) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return errors.Errorf("config path %s does not exist", path)
	}

	b, err := readFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s failed", path)
	}

	if err := yaml.Unmarshal(b, o); err != nil {
		return errors.Wrapf(err, "unable to parse config file %s", path)
	}

	return nil
}

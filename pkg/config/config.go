/*
Copyright © 2025 Jayson Grace <jayson.e.grace@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	log "github.com/cowdogmoo/xfer/pkg/logging"
	"github.com/cowdogmoo/xfer/pkg/model"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	GlobalConfig model.Config

	// EnvFile is loaded into the environment before the config is read,
	// when present.
	EnvFile = ".env"
)

func Init(cfgFile string) error {
	if err := loadEnvFile(EnvFile); err != nil {
		return err
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath(filepath.Join(home, ".xfer"))
		viper.AddConfigPath("/etc/xfer")
	}

	setDefaults()

	viper.SetEnvPrefix("XFER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Debug("No config file found, using defaults")
		} else {
			return fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Debug("Using config file: %s", viper.ConfigFileUsed())
	}

	if err := viper.Unmarshal(&GlobalConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	log.Init(GlobalConfig.Log.Format, GlobalConfig.Log.Level)

	return nil
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}

	log.Debug("Loaded environment from %s", path)
	return nil
}

func setDefaults() {
	viper.SetDefault("app.name", "xfer")

	viper.SetDefault("log.format", "text")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.enabled", true)
	viper.SetDefault("log.shared", true)

	viper.SetDefault("transfer.mode", "aspera")
}

func GetApplicationName() string {
	return GlobalConfig.App.Name
}

func GetTransferMode() string {
	return GlobalConfig.Transfer.Mode
}

func LogEnabled() bool {
	return GlobalConfig.Log.Enabled
}

func UseSharedLogger() bool {
	return GlobalConfig.Log.Shared
}

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

package model

import "fmt"

// TransferMode selects which transfer backend a client configuration is
// built for.
type TransferMode int

const (
	// Unknown is the zero value and is not a defined mode.
	Unknown TransferMode = iota
	// Aspera selects the Aspera high-speed transfer backend.
	Aspera
	// FileShare selects the file-share transfer backend.
	FileShare
)

func (m TransferMode) String() string {
	switch m {
	case Aspera:
		return "aspera"
	case FileShare:
		return "fileshare"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// Valid reports whether m is one of the defined transfer modes.
func (m TransferMode) Valid() bool {
	return m == Aspera || m == FileShare
}

// TransferModes returns every defined transfer mode in declaration order.
func TransferModes() []TransferMode {
	return []TransferMode{Aspera, FileShare}
}

// ClientConfiguration is a backend tuning record consumed by the transfer
// client.
type ClientConfiguration interface {
	Mode() TransferMode
	Common() CommonConfiguration
}

// CommonConfiguration holds the settings shared by every backend
type CommonConfiguration struct {
	// BadPathErrorsRetry retries transfers that fail on a bad path
	BadPathErrorsRetry bool `yaml:"bad_path_errors_retry" json:"bad_path_errors_retry"`

	// FileNotFoundErrorsRetry retries transfers that fail on a missing file
	FileNotFoundErrorsRetry bool `yaml:"file_not_found_errors_retry" json:"file_not_found_errors_retry"`

	// MaxHTTPRetryAttempts is the maximum number of HTTP retry attempts
	MaxHTTPRetryAttempts int `yaml:"max_http_retry_attempts" json:"max_http_retry_attempts"`

	// PreserveDates keeps source timestamps on transferred files
	PreserveDates bool `yaml:"preserve_dates" json:"preserve_dates"`

	// TargetDataRateMbps is the target transfer rate in megabits per second
	TargetDataRateMbps int `yaml:"target_data_rate_mbps" json:"target_data_rate_mbps"`
}

// AsperaClientConfiguration configures the Aspera backend
type AsperaClientConfiguration struct {
	CommonConfiguration `yaml:",inline"`

	// EncryptionCipher is the cipher used for data in transit
	EncryptionCipher string `yaml:"encryption_cipher" json:"encryption_cipher"`

	// OverwritePolicy controls when existing target files are replaced
	OverwritePolicy string `yaml:"overwrite_policy" json:"overwrite_policy"`

	// Policy is the bandwidth sharing policy
	Policy string `yaml:"policy" json:"policy"`
}

// Mode implements ClientConfiguration.
func (AsperaClientConfiguration) Mode() TransferMode { return Aspera }

// Common implements ClientConfiguration.
func (c AsperaClientConfiguration) Common() CommonConfiguration { return c.CommonConfiguration }

// FileShareClientConfiguration configures the file-share backend
type FileShareClientConfiguration struct {
	CommonConfiguration `yaml:",inline"`
}

// Mode implements ClientConfiguration.
func (FileShareClientConfiguration) Mode() TransferMode { return FileShare }

// Common implements ClientConfiguration.
func (c FileShareClientConfiguration) Common() CommonConfiguration { return c.CommonConfiguration }

// AppConfig contains application identity settings
type AppConfig struct {
	// Name is the application name reported to the logging backend
	Name string `yaml:"name"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	// Format is the log format (text, json)
	Format string `yaml:"format"`

	// Level is the log level (verbose, debug, info, warn, error, fatal, off)
	Level string `yaml:"level"`

	// Enabled turns transfer log forwarding on or off
	Enabled bool `yaml:"enabled"`

	// Shared makes the transfer log reuse the process-wide logger instead
	// of creating and owning its own
	Shared bool `yaml:"shared"`
}

// TransferDefaults contains default values for transfer client selection
type TransferDefaults struct {
	// Mode is the default transfer mode (aspera, fileshare)
	Mode string `yaml:"mode"`
}

// Config is the root configuration structure
type Config struct {
	// App configuration
	App AppConfig `yaml:"app"`

	// Log configuration
	Log LogConfig `yaml:"log"`

	// Transfer configuration defaults
	Transfer TransferDefaults `yaml:"transfer"`
}

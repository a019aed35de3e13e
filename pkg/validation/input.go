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

package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/cowdogmoo/xfer/pkg/model"
)

// ErrInvalidConfigurationValue is wrapped by every validation failure.
var ErrInvalidConfigurationValue = errors.New("configuration value is invalid")

var applicationNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._\- ]*$`)

func ParseTransferMode(mode string) (model.TransferMode, error) {
	if strings.TrimSpace(mode) == "" {
		return model.Unknown, fmt.Errorf("%w: transfer mode cannot be empty", ErrInvalidConfigurationValue)
	}

	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "aspera":
		return model.Aspera, nil
	case "fileshare", "file-share", "file_share":
		return model.FileShare, nil
	default:
		return model.Unknown, fmt.Errorf("%w: unknown transfer mode %q (expected aspera or fileshare)", ErrInvalidConfigurationValue, mode)
	}
}

func ValidateLogFormat(format string) error {
	switch strings.ToLower(format) {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("%w: invalid log format %q (expected text or json)", ErrInvalidConfigurationValue, format)
	}
}

func ValidateLogLevel(level string) error {
	switch strings.ToLower(level) {
	case "trace", "verbose", "debug", "info", "warn", "warning", "error", "fatal", "off", "disabled":
		return nil
	default:
		return fmt.Errorf("%w: invalid log level %q", ErrInvalidConfigurationValue, level)
	}
}

func ValidateOutputFormat(format string) error {
	switch strings.ToLower(format) {
	case "yaml", "json":
		return nil
	default:
		return fmt.Errorf("%w: invalid output format %q (expected yaml or json)", ErrInvalidConfigurationValue, format)
	}
}

func ValidateApplicationName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: application name cannot be empty", ErrInvalidConfigurationValue)
	}

	if len(name) > 128 {
		return fmt.Errorf("%w: application name must be at most 128 characters, got: %d", ErrInvalidConfigurationValue, len(name))
	}

	if !applicationNamePattern.MatchString(name) {
		return fmt.Errorf("%w: invalid application name format: %s", ErrInvalidConfigurationValue, name)
	}

	return nil
}

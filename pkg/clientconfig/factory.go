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

package clientconfig

import (
	"errors"
	"fmt"

	"github.com/cowdogmoo/xfer/pkg/model"
)

// ErrInvalidTransferMode is returned when a transfer mode outside the
// defined set is passed to Create.
var ErrInvalidTransferMode = errors.New("specified transfer mode enum value is invalid")

// InvalidTransferModeError carries the rejected mode value.
type InvalidTransferModeError struct {
	Mode model.TransferMode
}

func (e *InvalidTransferModeError) Error() string {
	return fmt.Sprintf("%s: %d", ErrInvalidTransferMode, int(e.Mode))
}

func (e *InvalidTransferModeError) Unwrap() error {
	return ErrInvalidTransferMode
}

const (
	defaultMaxHTTPRetryAttempts = 2
	defaultTargetDataRateMbps   = 5

	asperaEncryptionCipher = "AES_256"
	asperaOverwritePolicy  = "ALWAYS"
	asperaPolicy           = "FAIR"
)

func commonDefaults() model.CommonConfiguration {
	return model.CommonConfiguration{
		BadPathErrorsRetry:      false,
		FileNotFoundErrorsRetry: false,
		MaxHTTPRetryAttempts:    defaultMaxHTTPRetryAttempts,
		PreserveDates:           true,
		TargetDataRateMbps:      defaultTargetDataRateMbps,
	}
}

// Create returns a freshly built client configuration for mode.
func Create(mode model.TransferMode) (model.ClientConfiguration, error) {
	switch mode {
	case model.Aspera:
		return model.AsperaClientConfiguration{
			CommonConfiguration: commonDefaults(),
			EncryptionCipher:    asperaEncryptionCipher,
			OverwritePolicy:     asperaOverwritePolicy,
			Policy:              asperaPolicy,
		}, nil
	case model.FileShare:
		return model.FileShareClientConfiguration{
			CommonConfiguration: commonDefaults(),
		}, nil
	default:
		return nil, &InvalidTransferModeError{Mode: mode}
	}
}

// MustCreate is like Create but panics on an invalid mode.
func MustCreate(mode model.TransferMode) model.ClientConfiguration {
	cfg, err := Create(mode)
	if err != nil {
		panic(err)
	}
	return cfg
}

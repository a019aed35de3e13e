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
	"testing"

	"github.com/cowdogmoo/xfer/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommonDefaults(t *testing.T) {
	want := model.CommonConfiguration{
		BadPathErrorsRetry:      false,
		FileNotFoundErrorsRetry: false,
		MaxHTTPRetryAttempts:    2,
		PreserveDates:           true,
		TargetDataRateMbps:      5,
	}

	for _, mode := range model.TransferModes() {
		t.Run(mode.String(), func(t *testing.T) {
			cfg, err := Create(mode)
			require.NoError(t, err)
			require.NotNil(t, cfg)

			assert.Equal(t, mode, cfg.Mode())
			assert.Equal(t, want, cfg.Common())
		})
	}
}

func TestCreateAspera(t *testing.T) {
	cfg, err := Create(model.Aspera)
	require.NoError(t, err)

	aspera, ok := cfg.(model.AsperaClientConfiguration)
	require.True(t, ok, "Create(Aspera) returned %T", cfg)

	assert.Equal(t, "AES_256", aspera.EncryptionCipher)
	assert.Equal(t, "ALWAYS", aspera.OverwritePolicy)
	assert.Equal(t, "FAIR", aspera.Policy)
}

func TestCreateFileShare(t *testing.T) {
	cfg, err := Create(model.FileShare)
	require.NoError(t, err)

	_, ok := cfg.(model.FileShareClientConfiguration)
	assert.True(t, ok, "Create(FileShare) returned %T", cfg)
}

func TestCreateReturnsFreshRecords(t *testing.T) {
	first, err := Create(model.Aspera)
	require.NoError(t, err)
	second, err := Create(model.Aspera)
	require.NoError(t, err)

	a := first.(model.AsperaClientConfiguration)
	a.Policy = "HIGH"
	a.MaxHTTPRetryAttempts = 9

	b := second.(model.AsperaClientConfiguration)
	assert.Equal(t, "FAIR", b.Policy)
	assert.Equal(t, 2, b.MaxHTTPRetryAttempts)
}

func TestCreateInvalidMode(t *testing.T) {
	tests := []struct {
		name string
		mode model.TransferMode
	}{
		{"zero value", model.Unknown},
		{"negative", model.TransferMode(-1)},
		{"past last mode", model.FileShare + 1},
		{"large", model.TransferMode(999)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Create(tt.mode)
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTransferMode))

			var modeErr *InvalidTransferModeError
			require.True(t, errors.As(err, &modeErr))
			assert.Equal(t, tt.mode, modeErr.Mode)
		})
	}
}

func TestMustCreate(t *testing.T) {
	assert.NotPanics(t, func() {
		cfg := MustCreate(model.FileShare)
		assert.Equal(t, model.FileShare, cfg.Mode())
	})

	assert.Panics(t, func() {
		MustCreate(model.Unknown)
	})
}

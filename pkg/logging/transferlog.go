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

package logging

import (
	"errors"
	"fmt"
	"io"
)

// Logger is the leveled logging capability the transfer client writes to.
// Implementations may also implement io.Closer; TransferLog closes them
// when it owns them.
type Logger interface {
	Enabled() bool

	Info(template string, values ...interface{})
	InfoWithError(err error, template string, values ...interface{})
	Debug(template string, values ...interface{})
	DebugWithError(err error, template string, values ...interface{})
	Warn(template string, values ...interface{})
	WarnWithError(err error, template string, values ...interface{})
	Error(template string, values ...interface{})
	ErrorWithError(err error, template string, values ...interface{})
	Verbose(template string, values ...interface{})
	VerboseWithError(err error, template string, values ...interface{})
	Fatal(template string, values ...interface{})
	FatalWithError(err error, template string, values ...interface{})
}

// ErrNilLogger is returned when a TransferLog is built around a nil logger.
var ErrNilLogger = errors.New("logger cannot be nil")

// TransferLog forwards log calls to a wrapped Logger while enabled and
// closes the wrapped logger once if it owns it.
//
// A TransferLog is not safe for concurrent use; callers sharing one must
// serialize access or wrap a logger that is.
type TransferLog struct {
	logger   Logger
	owned    bool
	enabled  bool
	disposed bool
}

var _ Logger = (*TransferLog)(nil)

// NewTransferLog adopts defaultLogger without taking ownership when it is
// non-nil. Otherwise it builds a logger with factory (New when factory is
// nil), owns it and starts enabled.
func NewTransferLog(defaultLogger Logger, application string, factory Factory) (*TransferLog, error) {
	if defaultLogger != nil {
		return &TransferLog{
			logger:  defaultLogger,
			owned:   false,
			enabled: defaultLogger.Enabled(),
		}, nil
	}

	if factory == nil {
		factory = New
	}

	logger, err := factory(Options{
		System:           SystemName,
		SubSystem:        "",
		Application:      application,
		ConnectionString: "",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create transfer logger: %w", err)
	}
	if logger == nil {
		return nil, ErrNilLogger
	}

	return &TransferLog{
		logger:  logger,
		owned:   true,
		enabled: true,
	}, nil
}

// NewTransferLogFrom wraps logger. When owned is true, Close closes logger.
func NewTransferLogFrom(logger Logger, owned bool) (*TransferLog, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}

	return &TransferLog{
		logger:  logger,
		owned:   owned,
		enabled: logger.Enabled(),
	}, nil
}

func (t *TransferLog) Enabled() bool {
	return t.enabled
}

func (t *TransferLog) SetEnabled(enabled bool) {
	t.enabled = enabled
}

// Owned reports whether Close releases the wrapped logger.
func (t *TransferLog) Owned() bool {
	return t.owned
}

// Close releases the wrapped logger if this TransferLog owns it and it
// implements io.Closer. Only the first call has any effect.
func (t *TransferLog) Close() error {
	if t.disposed {
		return nil
	}
	t.disposed = true

	if !t.owned {
		return nil
	}
	if closer, ok := t.logger.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (t *TransferLog) Info(template string, values ...interface{}) {
	if !t.enabled {
		return
	}
	t.logger.Info(template, values...)
}

func (t *TransferLog) InfoWithError(err error, template string, values ...interface{}) {
	if !t.enabled {
		return
	}
	t.logger.InfoWithError(err, template, values...)
}

func (t *TransferLog) Debug(template string, values ...interface{}) {
	if !t.enabled {
		return
	}
	t.logger.Debug(template, values...)
}

func (t *TransferLog) DebugWithError(err error, template string, values ...interface{}) {
	if !t.enabled {
		return
	}
	t.logger.DebugWithError(err, template, values...)
}

func (t *TransferLog) Warn(template string, values ...interface{}) {
	if !t.enabled {
		return
	}
	t.logger.Warn(template, values...)
}

func (t *TransferLog) WarnWithError(err error, template string, values ...interface{}) {
	if !t.enabled {
		return
	}
	t.logger.WarnWithError(err, template, values...)
}

func (t *TransferLog) Error(template string, values ...interface{}) {
	if !t.enabled {
		return
	}
	t.logger.Error(template, values...)
}

func (t *TransferLog) ErrorWithError(err error, template string, values ...interface{}) {
	if !t.enabled {
		return
	}
	t.logger.ErrorWithError(err, template, values...)
}

func (t *TransferLog) Verbose(template string, values ...interface{}) {
	if !t.enabled {
		return
	}
	t.logger.Verbose(template, values...)
}

func (t *TransferLog) VerboseWithError(err error, template string, values ...interface{}) {
	if !t.enabled {
		return
	}
	t.logger.VerboseWithError(err, template, values...)
}

func (t *TransferLog) Fatal(template string, values ...interface{}) {
	if !t.enabled {
		return
	}
	t.logger.Fatal(template, values...)
}

func (t *TransferLog) FatalWithError(err error, template string, values ...interface{}) {
	if !t.enabled {
		return
	}
	t.logger.FatalWithError(err, template, values...)
}

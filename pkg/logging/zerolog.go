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
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// SystemName identifies this harness to the logging backend.
const SystemName = "TrAPI"

// Options describes a logger built by a Factory.
type Options struct {
	System           string
	SubSystem        string
	Application      string
	ConnectionString string
}

// Factory builds a new logger from Options.
type Factory func(Options) (Logger, error)

// ZerologLogger is the zerolog-backed Logger.
type ZerologLogger struct {
	log    zerolog.Logger
	closer io.Closer
}

var (
	_ Logger    = (*ZerologLogger)(nil)
	_ io.Closer = (*ZerologLogger)(nil)
	_ Factory   = New
)

// New is the default Factory. An empty ConnectionString logs to stderr;
// anything else is treated as a file path opened for append.
func New(opts Options) (Logger, error) {
	if opts.ConnectionString == "" {
		return newZerologLogger(output, currentFormat, currentLevel, opts), nil
	}

	file, err := os.OpenFile(opts.ConnectionString, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log destination %s: %w", opts.ConnectionString, err)
	}

	l := newZerologLogger(file, currentFormat, currentLevel, opts)
	l.closer = file
	return l, nil
}

// NewWithWriter returns a logger writing to w in the given format
// ("text" or "json") at the given minimum level.
func NewWithWriter(w io.Writer, format string, level string, opts Options) *ZerologLogger {
	return newZerologLogger(w, format, parseLevel(level), opts)
}

func newZerologLogger(w io.Writer, format string, level zerolog.Level, opts Options) *ZerologLogger {
	ctx := newBase(format, w).Level(level).With()
	if opts.System != "" {
		ctx = ctx.Str("system", opts.System)
	}
	if opts.SubSystem != "" {
		ctx = ctx.Str("subsystem", opts.SubSystem)
	}
	if opts.Application != "" {
		ctx = ctx.Str("application", opts.Application)
	}
	return &ZerologLogger{log: ctx.Logger()}
}

// Enabled reports whether the logger emits anything at all.
func (l *ZerologLogger) Enabled() bool {
	return l.log.GetLevel() != zerolog.Disabled
}

// Close releases the log destination, if the logger opened one.
func (l *ZerologLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	c := l.closer
	l.closer = nil
	return c.Close()
}

func write(ev *zerolog.Event, err error, template string, values []interface{}) {
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msgf(template, values...)
}

func (l *ZerologLogger) Info(template string, values ...interface{}) {
	write(l.log.Info(), nil, template, values)
}

func (l *ZerologLogger) InfoWithError(err error, template string, values ...interface{}) {
	write(l.log.Info(), err, template, values)
}

func (l *ZerologLogger) Debug(template string, values ...interface{}) {
	write(l.log.Debug(), nil, template, values)
}

func (l *ZerologLogger) DebugWithError(err error, template string, values ...interface{}) {
	write(l.log.Debug(), err, template, values)
}

func (l *ZerologLogger) Warn(template string, values ...interface{}) {
	write(l.log.Warn(), nil, template, values)
}

func (l *ZerologLogger) WarnWithError(err error, template string, values ...interface{}) {
	write(l.log.Warn(), err, template, values)
}

func (l *ZerologLogger) Error(template string, values ...interface{}) {
	write(l.log.Error(), nil, template, values)
}

func (l *ZerologLogger) ErrorWithError(err error, template string, values ...interface{}) {
	write(l.log.Error(), err, template, values)
}

func (l *ZerologLogger) Verbose(template string, values ...interface{}) {
	write(l.log.Trace(), nil, template, values)
}

func (l *ZerologLogger) VerboseWithError(err error, template string, values ...interface{}) {
	write(l.log.Trace(), err, template, values)
}

// Fatal logs at fatal level without exiting the process.
func (l *ZerologLogger) Fatal(template string, values ...interface{}) {
	write(l.log.WithLevel(zerolog.FatalLevel), nil, template, values)
}

func (l *ZerologLogger) FatalWithError(err error, template string, values ...interface{}) {
	write(l.log.WithLevel(zerolog.FatalLevel), err, template, values)
}

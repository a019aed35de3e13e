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

package cmd

import (
	"os"

	"github.com/cowdogmoo/xfer/pkg/config"
	log "github.com/cowdogmoo/xfer/pkg/logging"
	"github.com/cowdogmoo/xfer/pkg/validation"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	quiet   bool
)

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := config.Init(cfgFile); err != nil {
		log.Error("Failed to initialize config: %v", err)
		os.Exit(1)
	}

	format := config.GlobalConfig.Log.Format
	if err := validation.ValidateLogFormat(format); err != nil {
		log.Warn("%v, falling back to text", err)
		format = "text"
	}

	level := config.GlobalConfig.Log.Level
	if err := validation.ValidateLogLevel(level); err != nil {
		log.Warn("%v, falling back to info", err)
		level = "info"
	}

	switch {
	case verbose:
		level = "verbose"
	case quiet:
		level = "error"
	}

	log.Init(format, level)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xfer",
		Short: "xfer builds transfer client configurations",
		Long: `xfer (Transfer Sample) shows how a transfer client is configured for
one of its two backends, Aspera or FileShare, and how transfer log calls
are forwarded to the host logger.

Example:
  xfer config --mode aspera
  xfer config --mode fileshare --output json
  xfer modes`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.xfer/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output (trace level)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress all output except errors")

	rootCmd.AddCommand(newClientConfigCmd())
	rootCmd.AddCommand(newModesCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

var rootCmd = RootCmd()

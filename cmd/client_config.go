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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cowdogmoo/xfer/pkg/clientconfig"
	"github.com/cowdogmoo/xfer/pkg/completion"
	"github.com/cowdogmoo/xfer/pkg/config"
	log "github.com/cowdogmoo/xfer/pkg/logging"
	"github.com/cowdogmoo/xfer/pkg/model"
	"github.com/cowdogmoo/xfer/pkg/validation"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type clientConfigDocument struct {
	Mode          string                    `yaml:"mode" json:"mode"`
	Configuration model.ClientConfiguration `yaml:"configuration" json:"configuration"`
}

func newClientConfigCmd() *cobra.Command {
	var (
		mode   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the client configuration for a transfer mode",
		Long: `Build the client configuration for the selected transfer backend and
print it. The mode comes from --mode, or from transfer.mode in the config
file when the flag is not set.

Example:
  xfer config
  xfer config --mode fileshare --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			modeName := mode
			if modeName == "" {
				modeName = config.GetTransferMode()
			}

			transferMode, err := validation.ParseTransferMode(modeName)
			if err != nil {
				return fmt.Errorf("invalid transfer mode: %w", err)
			}

			if err := validation.ValidateOutputFormat(output); err != nil {
				return fmt.Errorf("invalid output format: %w", err)
			}

			transferLog, err := newTransferLog()
			if err != nil {
				return fmt.Errorf("failed to create transfer log: %w", err)
			}
			defer func() {
				if closeErr := transferLog.Close(); closeErr != nil {
					log.Warn("Failed to close transfer log: %v", closeErr)
				}
			}()

			clientCfg, err := clientconfig.Create(transferMode)
			if err != nil {
				transferLog.ErrorWithError(err, "Unable to create %s client configuration", transferMode)
				return err
			}
			transferLog.Info("Created %s client configuration", transferMode)
			transferLog.Verbose("Client configuration: %+v", clientCfg)

			return renderClientConfiguration(cmd.OutOrStdout(), clientCfg, output)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "transfer mode (aspera, fileshare); defaults to transfer.mode from config")
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format (yaml, json)")

	if err := cmd.RegisterFlagCompletionFunc("mode", modeCompletion); err != nil {
		log.Error("Failed to register mode completion: %v", err)
	}
	if err := cmd.RegisterFlagCompletionFunc("output", outputCompletion); err != nil {
		log.Error("Failed to register output completion: %v", err)
	}

	return cmd
}

// newTransferLog wraps the process-wide logger when log.shared is set and
// otherwise creates a logger it owns.
func newTransferLog() (*log.TransferLog, error) {
	appName := config.GetApplicationName()
	if err := validation.ValidateApplicationName(appName); err != nil {
		return nil, err
	}

	var shared log.Logger
	if config.UseSharedLogger() {
		shared = log.Default()
	}

	transferLog, err := log.NewTransferLog(shared, appName, log.New)
	if err != nil {
		return nil, err
	}

	if !config.LogEnabled() {
		transferLog.SetEnabled(false)
	}

	return transferLog, nil
}

func renderClientConfiguration(w io.Writer, cfg model.ClientConfiguration, format string) error {
	doc := clientConfigDocument{
		Mode:          cfg.Mode().String(),
		Configuration: cfg,
	}

	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode configuration as json: %w", err)
		}
		return nil
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode configuration as yaml: %w", err)
		}
		return enc.Close()
	}
}

func modeCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completion.Filter(completion.TransferModeNames(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

func outputCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completion.Filter(completion.OutputFormats(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

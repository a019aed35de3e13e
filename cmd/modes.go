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
	"fmt"

	"github.com/cowdogmoo/xfer/pkg/clientconfig"
	log "github.com/cowdogmoo/xfer/pkg/logging"
	"github.com/cowdogmoo/xfer/pkg/model"
	"github.com/spf13/cobra"
)

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the supported transfer modes",
		Long: `List every transfer mode with a summary of its client configuration.

Example:
  xfer modes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			modes := model.TransferModes()
			log.Debug("Listing %d transfer mode(s)", len(modes))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Mode       Retries  Rate (Mbps)  Preserve Dates  Cipher   Overwrite  Policy")
			fmt.Fprintln(out, "========== ======== ============ =============== ======== ========== ======")

			for _, mode := range modes {
				clientCfg, err := clientconfig.Create(mode)
				if err != nil {
					return fmt.Errorf("failed to create %s client configuration: %w", mode, err)
				}

				common := clientCfg.Common()
				cipher, overwrite, policy := "-", "-", "-"
				if aspera, ok := clientCfg.(model.AsperaClientConfiguration); ok {
					cipher, overwrite, policy = aspera.EncryptionCipher, aspera.OverwritePolicy, aspera.Policy
				}

				fmt.Fprintf(out, "%-10s %-8d %-12d %-15t %-8s %-10s %s\n",
					mode, common.MaxHTTPRetryAttempts, common.TargetDataRateMbps,
					common.PreserveDates, cipher, overwrite, policy)
			}

			return nil
		},
	}
}

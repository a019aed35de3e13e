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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cowdogmoo/xfer/pkg/clientconfig"
	"github.com/cowdogmoo/xfer/pkg/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs a fresh command tree against a temporary config file
// and returns what it wrote to stdout.
func executeCommand(t *testing.T, cfgContent string, args ...string) (string, error) {
	t.Helper()

	viper.Reset()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(cfgContent), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	cmd := RootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", cfgPath, "--quiet"}, args...))

	err := cmd.Execute()
	return stdout.String(), err
}

func TestRootCmd(t *testing.T) {
	if rootCmd.Use != "xfer" {
		t.Errorf("rootCmd.Use = %v, want %v", rootCmd.Use, "xfer")
	}

	if rootCmd.Short != "xfer builds transfer client configurations" {
		t.Errorf("rootCmd Short description incorrect")
	}

	for _, name := range []string{"config", "modes", "completion"} {
		found := false
		for _, sub := range rootCmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCmdFlags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
	}{
		{"config", "c"},
		{"verbose", "v"},
		{"quiet", "q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := rootCmd.PersistentFlags().Lookup(tt.name)
			if flag == nil {
				t.Fatalf("%s flag not registered", tt.name)
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("%s flag shorthand = %v, want %q", tt.name, flag.Shorthand, tt.shorthand)
			}
		})
	}
}

func TestClientConfigCmdYAML(t *testing.T) {
	out, err := executeCommand(t, "", "config", "--mode", "aspera")
	require.NoError(t, err)

	assert.Contains(t, out, "mode: aspera")
	assert.Contains(t, out, "max_http_retry_attempts: 2")
	assert.Contains(t, out, "target_data_rate_mbps: 5")
	assert.Contains(t, out, "preserve_dates: true")
	assert.Contains(t, out, "encryption_cipher: AES_256")
	assert.Contains(t, out, "overwrite_policy: ALWAYS")
	assert.Contains(t, out, "policy: FAIR")
}

func TestClientConfigCmdJSON(t *testing.T) {
	out, err := executeCommand(t, "", "config", "--mode", "fileshare", "--output", "json")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc), "output: %s", out)

	assert.Equal(t, "fileshare", doc["mode"])
	cfg, ok := doc["configuration"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, cfg["bad_path_errors_retry"])
	assert.Equal(t, false, cfg["file_not_found_errors_retry"])
	assert.Equal(t, float64(2), cfg["max_http_retry_attempts"])
	assert.Equal(t, true, cfg["preserve_dates"])
	assert.Equal(t, float64(5), cfg["target_data_rate_mbps"])
	assert.NotContains(t, cfg, "encryption_cipher")
}

func TestClientConfigCmdModeFromConfig(t *testing.T) {
	cfgContent := `
transfer:
  mode: fileshare
`
	out, err := executeCommand(t, cfgContent, "config")
	require.NoError(t, err)

	assert.Contains(t, out, "mode: fileshare")
	assert.NotContains(t, out, "encryption_cipher")
}

func TestClientConfigCmdOwnedDisabledLog(t *testing.T) {
	cfgContent := `
app:
  name: transfer-sample
log:
  enabled: false
  shared: false
`
	out, err := executeCommand(t, cfgContent, "config", "-m", "aspera")
	require.NoError(t, err)
	assert.Contains(t, out, "mode: aspera")
}

func TestClientConfigCmdErrors(t *testing.T) {
	tests := []struct {
		name      string
		cfg       string
		args      []string
		errSubstr string
	}{
		{
			name:      "unknown mode",
			args:      []string{"config", "--mode", "ftp"},
			errSubstr: "invalid transfer mode",
		},
		{
			name:      "bad output format",
			args:      []string{"config", "--mode", "aspera", "--output", "toml"},
			errSubstr: "invalid output format",
		},
		{
			name:      "bad application name",
			cfg:       "app:\n  name: \"-bad/name\"\n",
			args:      []string{"config", "--mode", "aspera"},
			errSubstr: "failed to create transfer log",
		},
		{
			name:      "extra args",
			args:      []string{"config", "unexpected"},
			errSubstr: "unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.cfg, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestModesCmd(t *testing.T) {
	out, err := executeCommand(t, "", "modes")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[2], "aspera"))
	assert.Contains(t, lines[2], "AES_256")
	assert.Contains(t, lines[2], "FAIR")
	assert.True(t, strings.HasPrefix(lines[3], "fileshare"))
	assert.NotContains(t, lines[3], "AES_256")
}

func TestCompletionCmd(t *testing.T) {
	out, err := executeCommand(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "xfer")

	_, err = executeCommand(t, "", "completion", "tcsh")
	assert.Error(t, err)

	_, err = executeCommand(t, "", "completion")
	assert.Error(t, err)
}

func TestModeCompletion(t *testing.T) {
	cmd := RootCmd()

	completions, directive := modeCompletion(cmd, nil, "a")
	assert.Equal(t, []string{"aspera"}, completions)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

	completions, _ = modeCompletion(cmd, nil, "")
	assert.Equal(t, []string{"aspera", "fileshare"}, completions)

	completions, _ = outputCompletion(cmd, nil, "j")
	assert.Equal(t, []string{"json"}, completions)
}

func TestRenderClientConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		mode   model.TransferMode
		format string
		want   []string
	}{
		{"aspera yaml", model.Aspera, "yaml", []string{"mode: aspera", "policy: FAIR"}},
		{"fileshare yaml", model.FileShare, "YAML", []string{"mode: fileshare", "preserve_dates: true"}},
		{"aspera json", model.Aspera, "json", []string{`"mode": "aspera"`, `"encryption_cipher": "AES_256"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, renderClientConfiguration(&buf, clientconfig.MustCreate(tt.mode), tt.format))
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

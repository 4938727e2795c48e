/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"dirpx.dev/yamx"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the yamx CLI and returns an error if any command fails.
//
// Logging goes to stderr at info level, or debug level with --verbose.
// The logger is attached to the command context and also installed as the
// library's fallback-diagnostics logger.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "yamx",
		Short:        "yamx re-serializes YAML documents with order-preserving dumpers",
		Long:         fmt.Sprintf("yamx formats YAML documents through named dumper configurations\n(%s), preserving mapping key order from input to output.", strings.Join(yamx.Dumpers(), ", ")),
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			ctx := withLogger(cmd.Context(), logger)
			cmd.SetContext(ctx)
			yamx.SetLogger(slogFromContext(ctx))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("yamx %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newFmtCmd())
	root.AddCommand(newDumpersCmd())

	return root.ExecuteContext(context.Background())
}

// newDumpersCmd lists the configuration catalogue.
func newDumpersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dumpers",
		Short: "List available dumper configurations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range yamx.Dumpers() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

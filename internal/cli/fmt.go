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
	"fmt"
	"io"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"dirpx.dev/yamx"
	"dirpx.dev/yamx/config"
	"dirpx.dev/yamx/dumper"
)

// newFmtCmd builds the fmt command: parse a YAML document (file or stdin)
// into an order-preserving document value and re-serialize it through a
// dumper configuration.
func newFmtCmd() *cobra.Command {
	var (
		dumperName string
		flowStr    string
		indent     int
		indentSeq  bool
		ascii      bool
		output     string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Re-serialize a YAML document through a dumper configuration",
		Long: `Fmt parses a YAML document, keeping mapping keys in source order,
and re-serializes it with the chosen dumper configuration. With no file
argument it reads from stdin.

Style flags override values from the config file; the config file
overrides built-in defaults.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			start := time.Now()

			explicit := configPath != ""
			if !explicit {
				configPath = defaultConfigPath()
			}
			cfg, err := loadConfig(configPath, explicit)
			if err != nil {
				return err
			}

			name := dumperName
			if name == "" {
				name = cfg.Dumper
			}
			if name == "" {
				name = dumper.FullName
			}

			opts, err := cfg.styleOptions()
			if err != nil {
				return err
			}
			opts, err = appendFlagOptions(cmd, opts, flowStr, indent, indentSeq, ascii)
			if err != nil {
				return err
			}

			data, src, err := readInput(args)
			if err != nil {
				return err
			}
			logger.Debug("parsed input", "source", src, "bytes", len(data))

			doc, err := yamx.Load(data)
			if err != nil {
				return err
			}
			logger.Debugf("document:\n%s", spew.Sdump(doc))

			out, err := yamx.DumpWith(name, doc, opts...)
			if err != nil {
				return err
			}

			if err := writeOutput(cmd.OutOrStdout(), output, out); err != nil {
				return err
			}
			logger.Info("formatted document",
				"dumper", name,
				"elapsed", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dumperName, "dumper", "d", "", "dumper configuration (Full, Safe, IndentedSafe)")
	cmd.Flags().StringVar(&flowStr, "flow", "", "flow mode: auto, never, always")
	cmd.Flags().IntVar(&indent, "indent", 0, "block indentation width")
	cmd.Flags().BoolVar(&indentSeq, "indent-sequences", false, "indent block sequences under their key")
	cmd.Flags().BoolVar(&ascii, "ascii", false, "escape non-ASCII characters")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/yamx/yamx.toml)")

	return cmd
}

// appendFlagOptions layers explicitly set style flags on top of opts.
// Only flags the user actually changed are applied, so config file values
// survive unless overridden.
func appendFlagOptions(cmd *cobra.Command, opts []config.Option, flowStr string, indent int, indentSeq, ascii bool) ([]config.Option, error) {
	if cmd.Flags().Changed("flow") {
		mode, err := flowModeFlag(flowStr)
		if err != nil {
			return nil, err
		}
		opts = append(opts, config.WithFlow(mode))
	}
	if cmd.Flags().Changed("indent") {
		opts = append(opts, config.WithIndent(indent))
	}
	if cmd.Flags().Changed("indent-sequences") {
		opts = append(opts, config.WithIndentSequences(indentSeq))
	}
	if cmd.Flags().Changed("ascii") {
		opts = append(opts, config.WithAllowUnicode(!ascii))
	}
	return opts, nil
}

// readInput reads the document from the file argument or stdin.
func readInput(args []string) ([]byte, string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "stdin", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("read input: %w", err)
	}
	return data, args[0], nil
}

// writeOutput writes the formatted text to path, or to w when no path was
// given.
func writeOutput(w io.Writer, path, text string) error {
	if path == "" {
		_, err := io.WriteString(w, text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

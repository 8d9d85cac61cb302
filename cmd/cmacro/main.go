package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/raymyers/cmacro/pkg/cmacro"
	"github.com/raymyers/cmacro/pkg/headers"
	"github.com/raymyers/cmacro/pkg/rustgen"
)

var version = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cmacro: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:   "cmacro",
		Short: "cmacro extracts #define macros from C headers",
		Long: `cmacro parses C header files, extracts #define macro definitions,
and can translate simple (non-function) macros into Rust constant
declarations for use with bindings to external libraries.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(errOut)
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(newExtractCmd(out))
	rootCmd.AddCommand(newTranslateCmd(out))
	rootCmd.AddCommand(newListCmd(out, errOut))
	return rootCmd
}

// newExtractCmd lists every #define in a single header file.
func newExtractCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "extract [file]",
		Short: "Print every #define found in a header file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			macros, err := extractHeader(args[0])
			if err != nil {
				return err
			}
			for _, m := range macros {
				fmt.Fprintln(out, headers.FormatDefine(m))
			}
			return nil
		},
	}
}

// newTranslateCmd translates simple macros in one header to Rust
// constants.
func newTranslateCmd(out io.Writer) *cobra.Command {
	var rulesPath, outputPath string
	cmd := &cobra.Command{
		Use:   "translate [file]",
		Short: "Translate simple macros in a header to Rust constants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			macros, err := extractHeader(args[0])
			if err != nil {
				return err
			}

			fn := rustgen.Func(rustgen.Translate)
			if rulesPath != "" {
				rules, err := rustgen.LoadRules(rulesPath)
				if err != nil {
					return err
				}
				fn = rules.Func()
			}

			src := rustgen.Generate(macros, fn)
			if outputPath != "" {
				if err := os.WriteFile(outputPath, []byte(src+"\n"), 0644); err != nil {
					return fmt.Errorf("writing %s: %w", outputPath, err)
				}
				fmt.Fprintf(out, "Generated %s\n", outputPath)
				return nil
			}
			fmt.Fprintln(out, src)
			return nil
		},
	}
	cmd.Flags().StringVar(&rulesPath, "rules", "", "YAML rules file (skip list and type overrides)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write generated source to a file instead of stdout")
	return cmd
}

// newListCmd walks a directory tree and prints every #define found in
// its headers. Files that fail to read or parse are reported and
// skipped without aborting the batch.
func newListCmd(out, errOut io.Writer) *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "Walk a directory and print every #define in its headers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := headers.ExtractDir(cmd.Context(), args[0], jobs)
			if err != nil {
				return err
			}
			for _, res := range results {
				if res.Err != nil {
					fmt.Fprintf(errOut, "cmacro: skipping %s: %v\n", res.Path, res.Err)
					continue
				}
				for _, m := range res.Macros {
					fmt.Fprintln(out, headers.FormatDefine(m))
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", headers.DefaultWorkers, "Number of files to process concurrently")
	return cmd
}

// extractHeader reads one header file and extracts its macros.
func extractHeader(path string) ([]cmacro.Macro, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	macros, err := cmacro.Extract(string(data))
	if err != nil {
		return nil, fmt.Errorf("extracting from %s: %w", path, err)
	}
	return macros, nil
}

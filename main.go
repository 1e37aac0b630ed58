package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/vadiminshakov/factorial/config"
	"github.com/vadiminshakov/factorial/terminal"
	"github.com/vadiminshakov/factorial/ui"
)

const version = "v0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(ui.Error(err.Error()))
	}
}

type options struct {
	noColor bool
	verbose bool
	prompt  string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "factorial",
		Short:         "Read an integer from stdin and print its factorial",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Report the run outcome on stderr")
	cmd.Flags().StringVar(&opts.prompt, "prompt", config.DefaultPrompt, "Prompt shown in interactive mode (empty restores the default)")

	return cmd
}

func runProgram(in io.Reader, out, errOut io.Writer, opts options) error {
	cfg := config.Default()
	cfg.Prompt = opts.prompt
	cfg.Interactive = in == os.Stdin && ui.IsInteractive()
	cfg.Color = !opts.noColor
	if err := cfg.Validate(); err != nil {
		return err
	}

	reader, err := newReader(in, cfg)
	if err != nil {
		return err
	}
	defer reader.Close()

	outcome, err := terminal.Run(reader, out, cfg)
	if err != nil {
		return err
	}

	if opts.verbose {
		log.New(errOut, "", 0).Printf("outcome: %s", outcome)
	}
	return nil
}

func newReader(in io.Reader, cfg config.Config) (ui.LineReader, error) {
	if cfg.Interactive {
		return ui.NewTerminalReader(cfg.Prompt)
	}
	return ui.NewStreamReader(in), nil
}

// Package cmd wires the CLI surface to the request pipeline in internal/llm.
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ad-si/cai/internal/config"
	"github.com/ad-si/cai/internal/llm"
	"github.com/ad-si/cai/internal/output"
	"github.com/ad-si/cai/internal/provider"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "cai [prompt]...",
	Short: "The fastest CLI tool for prompting LLMs",
	Long: `Cai sends a prompt to a hosted LLM provider and prints the response.

Without a subcommand the first provider with a configured API key is used
(Groq, then OpenAI, then Anthropic). Provider subcommands take a model alias
or a fully-qualified model id as their first argument.

Examples:
  cai Which year did the Titanic sink?
  cai anthropic haiku What is love?
  cai openai 4o --json 'List three planets as JSON'
  cai all Which blockchain will prevail?`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runPrompt(cmd, nil, llm.Options{}, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is called by main.main(). It runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("raw", "r", false, "print the response only, without metadata or colors")
	rootCmd.PersistentFlags().Bool("json", false, "request a JSON response from the model")
	rootCmd.PersistentFlags().String("json-schema", "", "request a response conforming to this JSON schema")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose logging")
}

// newLogger builds the stderr logger, gated by --verbose.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelError
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// execOptions collects the persistent execution flags.
func execOptions(cmd *cobra.Command) (llm.Options, error) {
	opts := llm.Options{}
	opts.Raw, _ = cmd.Flags().GetBool("raw")
	opts.JSON, _ = cmd.Flags().GetBool("json")

	if schemaArg, _ := cmd.Flags().GetString("json-schema"); schemaArg != "" {
		var schema map[string]any
		if err := json.Unmarshal([]byte(schemaArg), &schema); err != nil {
			return opts, fmt.Errorf("invalid --json-schema value: %w", err)
		}
		opts.Schema = schema
	}
	return opts, nil
}

// gatherPrompt joins the positional arguments and appends piped stdin.
func gatherPrompt(args []string) string {
	prompt := strings.Join(args, " ")

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		piped, err := io.ReadAll(os.Stdin)
		if err == nil && len(piped) > 0 {
			stdin := strings.TrimRight(string(piped), "\n")
			if prompt == "" {
				return stdin
			}
			return prompt + "\n\n" + stdin
		}
	}
	return prompt
}

// runPrompt executes one dispatch and renders the result. Failures are
// printed as one attributable unit (label plus error detail) to stderr.
func runPrompt(
	cmd *cobra.Command,
	spec *provider.ModelSpec,
	opts llm.Options,
	args []string,
) error {
	logger := newLogger(cmd)

	flagOpts, err := execOptions(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	opts.Raw = flagOpts.Raw
	if !opts.JSON {
		opts.JSON = flagOpts.JSON
	}
	if opts.Schema == nil {
		opts.Schema = flagOpts.Schema
	}

	cfg, secretsPath, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	prompt := gatherPrompt(args)
	colorize := output.Colorize()

	result, err := llm.Prompt(
		context.Background(), cfg, secretsPath, spec, opts, prompt, logger)
	if err != nil {
		label := ""
		var elapsed time.Duration
		var dispatchErr *llm.DispatchError
		if errors.As(err, &dispatchErr) {
			label = dispatchErr.Label
			elapsed = dispatchErr.Elapsed
		} else if spec != nil {
			label = spec.Label()
		}
		fmt.Fprint(os.Stderr, output.RenderError(label, elapsed, err, colorize))
		return err
	}

	fmt.Print(output.Render(result, opts.Raw, colorize))
	return nil
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/ad-si/cai/internal/config"
	"github.com/ad-si/cai/internal/llm"
	"github.com/ad-si/cai/internal/output"
	"github.com/ad-si/cai/internal/provider"
)

// broadcastModels are the per-provider defaults the `all` command fans
// out to.
var broadcastModels = []provider.ModelSpec{
	{Provider: provider.Groq, Model: "llama-3.1-8b-instant"},
	{Provider: provider.Anthropic, Model: "claude-3-5-haiku-latest"},
	{Provider: provider.OpenAI, Model: "gpt-4o-mini"},
	{Provider: provider.Ollama, Model: "llama3"},
	{Provider: provider.Llamafile, Model: ""},
}

var allCmd = &cobra.Command{
	Use:   "all <prompt>...",
	Short: "Send the prompt to every provider's default model simultaneously",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAll,
}

func init() {
	rootCmd.AddCommand(allCmd)
}

// runAll dispatches the prompt to every broadcast model concurrently. The
// dispatches share nothing but the read-only configuration snapshot, one
// provider's failure never affects its siblings, and each result is printed
// as one unit when it completes.
func runAll(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	opts, err := execOptions(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	cfg, secretsPath, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	prompt := gatherPrompt(args)
	colorize := output.Colorize()

	var (
		wg       sync.WaitGroup
		printMu  sync.Mutex
		failures int
	)

	for _, spec := range broadcastModels {
		wg.Add(1)
		go func(spec provider.ModelSpec) {
			defer wg.Done()

			result, err := llm.Prompt(
				context.Background(), cfg, secretsPath, &spec, opts, prompt, logger)

			printMu.Lock()
			defer printMu.Unlock()
			if err != nil {
				failures++
				var elapsed time.Duration
				var dispatchErr *llm.DispatchError
				if errors.As(err, &dispatchErr) {
					elapsed = dispatchErr.Elapsed
				}
				fmt.Fprint(os.Stderr, output.RenderError(spec.Label(), elapsed, err, colorize))
				fmt.Fprintln(os.Stderr)
				return
			}
			fmt.Print(output.Render(result, opts.Raw, colorize))
			fmt.Println()
		}(spec)
	}

	wg.Wait()

	if failures == len(broadcastModels) {
		return fmt.Errorf("all %d dispatches failed", failures)
	}
	return nil
}

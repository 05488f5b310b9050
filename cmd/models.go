package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/ollama/ollama/api"
	"github.com/spf13/cobra"

	"github.com/ad-si/cai/internal/config"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the models installed on the local Ollama server",
	Args:  cobra.NoArgs,
	RunE:  runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, args []string) error {
	cfg, _, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	client, err := ollamaClient(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	list, err := client.List(cmd.Context())
	if err != nil {
		err = fmt.Errorf("listing Ollama models (is the server running?): %w", err)
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	if len(list.Models) == 0 {
		fmt.Println("No models installed. Get some from https://ollama.com/library.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSIZE\tMODIFIED")
	for _, m := range list.Models {
		fmt.Fprintf(tw, "%s\t%.1f GB\t%s\n",
			m.Name,
			float64(m.Size)/1e9,
			m.ModifiedAt.Format("2006-01-02 15:04"),
		)
	}
	return tw.Flush()
}

// ollamaClient builds an Ollama API client, honoring the same base-URL
// override the chat path uses.
func ollamaClient(cfg map[string]string) (*api.Client, error) {
	if base := cfg["ollama_base_url"]; base != "" {
		parsed, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("invalid ollama_base_url: %w", err)
		}
		return api.NewClient(parsed, http.DefaultClient), nil
	}
	return api.ClientFromEnvironment()
}

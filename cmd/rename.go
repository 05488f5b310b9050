package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ad-si/cai/internal/config"
	"github.com/ad-si/cai/internal/llm"
	"github.com/ad-si/cai/internal/provider"
)

// fileAnalysisSchema constrains the model to the two fields the rename
// command needs.
var fileAnalysisSchema = map[string]any{
	"name":   "file_analysis",
	"strict": true,
	"schema": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"description": map[string]any{
				"type":        "string",
				"description": "A short (1-4 words) description that captures its main purpose",
			},
			"timestamp": map[string]any{
				"type": "string",
				"description": "Any timestamp/date found in the content. " +
					"If it includes only a date use the `YYYY-MM-DD` format. " +
					"If it includes date and time use the `YYYY-MM-DDThh:mmZ` format.",
			},
		},
		"required":             []string{"description", "timestamp"},
		"additionalProperties": false,
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <file>",
	Short: "Analyze a file and rename it with timestamp and description",
	Args:  cobra.ExactArgs(1),
	RunE:  runRename,
}

func init() {
	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	prompt := "Analyze following file content and return a file analysis JSON object:\n\n" +
		string(content) + "\n"

	cfg, secretsPath, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	spec := &provider.ModelSpec{Provider: provider.OpenAI, Model: "gpt-4o-mini"}
	result, err := llm.Prompt(
		context.Background(), cfg, secretsPath, spec,
		llm.Options{Schema: fileAnalysisSchema}, prompt, newLogger(cmd))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	var analysis struct {
		Description string `json:"description"`
		Timestamp   string `json:"timestamp"`
	}
	if err := json.Unmarshal([]byte(result.Outcome.Text), &analysis); err != nil {
		err = fmt.Errorf("parsing file analysis %q: %w", result.Outcome.Text, err)
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	newName := descriptionSlug(analysis.Description)
	if analysis.Timestamp != "" {
		newName = analysis.Timestamp + "_" + newName
	}
	newPath := filepath.Join(filepath.Dir(path), newName+filepath.Ext(path))

	if err := os.Rename(path, newPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	fmt.Printf("Renamed %s to %s\n", path, newPath)
	return nil
}

func descriptionSlug(description string) string {
	slug := strings.ToLower(strings.TrimSpace(description))
	return strings.ReplaceAll(slug, " ", "-")
}

package cmd

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ad-si/cai/internal/llm"
	"github.com/ad-si/cai/internal/provider"
)

var ocrCmd = &cobra.Command{
	Use:   "ocr <file>",
	Short: "Extract text from an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runOcr,
}

func init() {
	rootCmd.AddCommand(ocrCmd)
}

// runOcr sends the image as a vision request. The body is assembled here
// and handed to the pipeline as a complete JSON prompt, which passes
// through the payload shaper verbatim.
func runOcr(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	model := "gpt-4o"
	body, err := json.Marshal(map[string]any{
		"model":      model,
		"max_tokens": 4096,
		"messages": []map[string]any{{
			"role": "user",
			"content": []map[string]any{
				{
					"type": "text",
					"text": "Extract and return all text from this image.",
				},
				{
					"type": "image_url",
					"image_url": map[string]any{
						"url": "data:image/jpeg;base64," +
							base64.StdEncoding.EncodeToString(content),
					},
				},
			},
		}},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	spec := &provider.ModelSpec{Provider: provider.OpenAI, Model: model}
	return runPrompt(cmd, spec, llm.Options{}, []string{string(body)})
}

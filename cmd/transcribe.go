package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ad-si/cai/internal/llm"
	"github.com/ad-si/cai/internal/provider"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <audio-file>",
	Short: "Transcribe an audio file with Whisper on Groq",
	Args:  cobra.ExactArgs(1),
	RunE:  runTranscribe,
}

func init() {
	transcribeCmd.Flags().String("model", "whisper", "transcription model alias or id")
	rootCmd.AddCommand(transcribeCmd)
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	path := args[0]
	audio, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	model, _ := cmd.Flags().GetString("model")
	spec := &provider.ModelSpec{Provider: provider.Groq, Model: model}
	opts := llm.Options{
		Command:   "transcribe",
		Audio:     audio,
		AudioName: filepath.Base(path),
	}
	return runPrompt(cmd, spec, opts, []string{path})
}

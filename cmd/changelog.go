package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/ad-si/cai/internal/llm"
	"github.com/ad-si/cai/internal/provider"
)

var changelogCmd = &cobra.Command{
	Use:   "changelog <commit-hash>",
	Short: "Generate a changelog from the given commit using GPT-4o",
	Args:  cobra.ExactArgs(1),
	RunE:  runChangelog,
}

func init() {
	rootCmd.AddCommand(changelogCmd)
}

func runChangelog(cmd *cobra.Command, args []string) error {
	gitLog, err := exec.Command(
		"git", "log",
		"--date=short",
		"--pretty=format:%cd - %s%d",
		args[0]+"..HEAD",
	).Output()
	if err != nil {
		err = fmt.Errorf("running git log: %w", err)
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	prompt := "Summarize the following git commit log into a concise markdown changelog.\n" +
		"Only include user-facing changes (i.e. no code refactorings or similar).\n" +
		"Use the tags to group the changes, and if there are no tags use the dates.\n" +
		"Include the date and the tag in the header.\n" +
		"Don't sub-categorize the changes, just list them.\n" +
		"Insert a blank line after each header and sub-header.\n" +
		"\n\n" + string(gitLog)

	spec := &provider.ModelSpec{Provider: provider.OpenAI, Model: "gpt-4o"}
	return runPrompt(cmd, spec, llm.Options{}, []string{prompt})
}

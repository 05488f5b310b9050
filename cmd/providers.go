package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ad-si/cai/internal/llm"
	"github.com/ad-si/cai/internal/provider"
)

// newProviderCmd builds the subcommand for one provider. The first argument
// is a model alias or fully-qualified model id; the rest is the prompt.
func newProviderCmd(p provider.Provider, alias string) *cobra.Command {
	long := p.String() + " models. Following aliases are available:\n"
	for _, line := range provider.Aliases(p) {
		long += "  " + line + "\n"
	}
	if len(provider.Aliases(p)) == 0 {
		long = p.String() + " serves whatever model it was started with;\n" +
			"any model name is passed through unchanged.\n"
	}

	minArgs := 2
	use := p.Key() + " <model> <prompt>..."
	if p.Local() {
		// Local servers can run without naming a model.
		minArgs = 1
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: p.String(),
		Long:  long,
		Args:  cobra.MinimumNArgs(minArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := &provider.ModelSpec{Provider: p, Model: args[0]}
			return runPrompt(cmd, spec, llm.Options{}, args[1:])
		},
	}
	if alias != "" {
		cmd.Aliases = []string{alias}
	}
	return cmd
}

// newShortcutCmd builds a prompt-only command bound to a fixed model.
func newShortcutCmd(name, short string, spec provider.ModelSpec, opts llm.Options) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <prompt>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, &spec, opts, args)
		},
	}
}

func init() {
	providerAliases := map[provider.Provider]string{
		provider.Anthropic:  "an",
		provider.Cerebras:   "ce",
		provider.DeepSeek:   "de",
		provider.Google:     "goo",
		provider.Groq:       "gr",
		provider.Llamafile:  "lf",
		provider.Ollama:     "ol",
		provider.OpenAI:     "op",
		provider.Perplexity: "pe",
	}
	for _, p := range provider.All {
		rootCmd.AddCommand(newProviderCmd(p, providerAliases[p]))
	}

	shortcuts := []struct {
		name  string
		short string
		spec  provider.ModelSpec
		opts  llm.Options
	}{
		{"ll", "- Llama shortcut (🏆 Default)", provider.ModelSpec{Provider: provider.Groq, Model: "llama"}, llm.Options{}},
		{"mi", "- Mixtral shortcut", provider.ModelSpec{Provider: provider.Groq, Model: "mixtral"}, llm.Options{}},
		{"gp", "- GPT-4o shortcut", provider.ModelSpec{Provider: provider.OpenAI, Model: "gpt"}, llm.Options{}},
		{"gm", "- GPT-4o mini shortcut", provider.ModelSpec{Provider: provider.OpenAI, Model: "gpt-mini"}, llm.Options{}},
		{"cl", "- Claude Opus shortcut", provider.ModelSpec{Provider: provider.Anthropic, Model: "opus"}, llm.Options{}},
		{"so", "- Claude Sonnet shortcut", provider.ModelSpec{Provider: provider.Anthropic, Model: "sonnet"}, llm.Options{}},
		{"ha", "- Claude Haiku shortcut", provider.ModelSpec{Provider: provider.Anthropic, Model: "haiku"}, llm.Options{}},
		{"grok", "- Grok shortcut", provider.ModelSpec{Provider: provider.XAI, Model: "grok"}, llm.Options{}},
		{"image", "Generate an image with OpenAI", provider.ModelSpec{Provider: provider.OpenAI, Model: "image"}, llm.Options{Command: "image"}},
		{"tts", "Convert text to speech with OpenAI", provider.ModelSpec{Provider: provider.OpenAI, Model: "tts"}, llm.Options{}},
	}
	for _, s := range shortcuts {
		rootCmd.AddCommand(newShortcutCmd(s.name, s.short, s.spec, s.opts))
	}
}

// languageContexts maps a context subcommand to the language it scopes the
// prompt to. The answer comes from a fixed Anthropic model.
var languageContexts = map[string]string{
	"bash": "Bash",
	"c":    "C",
	"cpp":  "C++",
	"cs":   "C#",
	"elm":  "Elm",
	"fish": "Fish",
	"fs":   "F#",
	"gd":   "Godot and GDScript",
	"gl":   "Gleam",
	"go":   "Go",
	"hs":   "Haskell",
	"java": "Java",
	"js":   "JavaScript",
	"kt":   "Kotlin",
	"lua":  "Lua",
	"ly":   "LilyPond",
	"oc":   "OCaml",
	"pg":   "Postgres",
	"php":  "PHP",
	"ps":   "PureScript",
	"py":   "Python",
	"rb":   "Ruby",
	"rs":   "Rust",
	"sql":  "SQLite",
	"sw":   "Swift",
	"ts":   "TypeScript",
	"ty":   "Typst",
	"wl":   "Wolfram Language and Mathematica",
	"zig":  "Zig",
}

func newLanguageCmd(name, language string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <prompt>...",
		Short: "Use " + language + " development as the prompt context",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			context := "You're a professional " + language + " developer.\n" +
				"Answer the following question in the context of " + language + ".\n" +
				"Keep your answer concise and to the point.\n\n"
			spec := &provider.ModelSpec{Provider: provider.Anthropic, Model: "sonnet"}
			prompt := context + strings.Join(args, " ")
			return runPrompt(cmd, spec, llm.Options{}, []string{prompt})
		},
	}
}

func init() {
	for name, language := range languageContexts {
		rootCmd.AddCommand(newLanguageCmd(name, language))
	}
}

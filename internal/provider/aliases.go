package provider

// alias maps one short model name to its canonical vendor id.
// The tables are hand-maintained data; several aliases may point at the same
// id and that is fine. Lookup is an ordered, case-sensitive exact match.
type alias struct {
	from string
	to   string
}

var anthropicModels = []alias{
	{"opus", "claude-3-opus-latest"},
	{"op", "claude-3-opus-latest"},
	{"o", "claude-3-opus-latest"},
	{"sonnet", "claude-3-7-sonnet-latest"},
	{"so", "claude-3-7-sonnet-latest"},
	{"s", "claude-3-7-sonnet-latest"},
	{"haiku", "claude-3-5-haiku-latest"},
	{"ha", "claude-3-5-haiku-latest"},
	{"h", "claude-3-5-haiku-latest"},
}

var cerebrasModels = []alias{
	{"llama", "llama3.1-8b"},
	{"ll", "llama3.1-8b"},
	{"llama-70", "llama-3.3-70b"},
	{"ll70", "llama-3.3-70b"},
	{"qwen", "qwen-3-32b"},
	{"qw", "qwen-3-32b"},
	{"oss", "gpt-oss-120b"},
}

var deepseekModels = []alias{
	{"chat", "deepseek-chat"},
	{"ch", "deepseek-chat"},
	{"reasoner", "deepseek-reasoner"},
	{"re", "deepseek-reasoner"},
	{"r1", "deepseek-reasoner"},
}

var googleModels = []alias{
	{"pro", "gemini-2.5-pro"},
	{"flash", "gemini-2.5-flash"},
	{"fl", "gemini-2.5-flash"},
	{"flash-lite", "gemini-2.5-flash-lite"},
	{"fll", "gemini-2.5-flash-lite"},
	{"image", "gemini-2.0-flash-preview-image-generation"},
	{"im", "gemini-2.0-flash-preview-image-generation"},
}

var groqModels = []alias{
	{"llama", "llama-3.3-70b-versatile"},
	{"ll", "llama-3.3-70b-versatile"},
	{"llama-8", "llama-3.1-8b-instant"},
	{"ll8", "llama-3.1-8b-instant"},
	{"mixtral", "mixtral-8x7b-32768"},
	{"mix", "mixtral-8x7b-32768"},
	{"mi", "mixtral-8x7b-32768"},
	{"gemma", "gemma2-9b-it"},
	{"ge", "gemma2-9b-it"},
	{"r1", "deepseek-r1-distill-llama-70b"},
	{"oss", "openai/gpt-oss-120b"},
	{"whisper", "whisper-large-v3"},
	{"wh", "whisper-large-v3"},
}

// Llamafile serves whatever model it was started with, so there is nothing
// to map; every requested name passes through unchanged.
var llamafileModels = []alias{}

var ollamaModels = []alias{
	{"llama", "llama3"},
	{"ll", "llama3"},
	{"llama2", "llama2"},
	{"ll2", "llama2"},
	{"mix", "mixtral"},
	{"mi", "mixtral"},
	{"mis", "mistral"},
	{"ge", "gemma"},
	{"cg", "codegemma"},
	{"cr", "command-r"},
	{"crp", "command-r-plus"},
}

var openaiModels = []alias{
	{"gpt", "gpt-4o"},
	{"4o", "gpt-4o"},
	{"gpt-mini", "gpt-4o-mini"},
	{"4o-mini", "gpt-4o-mini"},
	{"4m", "gpt-4o-mini"},
	{"41", "gpt-4.1"},
	{"41m", "gpt-4.1-mini"},
	{"5", "gpt-5"},
	{"5m", "gpt-5-mini"},
	{"o3m", "o3-mini"},
	{"o4m", "o4-mini"},
	{"tts", "gpt-4o-mini-tts"},
	{"image", "gpt-image-1"},
	{"im", "gpt-image-1"},
	{"dalle", "dall-e-3"},
	{"whisper", "whisper-1"},
	{"wh", "whisper-1"},
}

var perplexityModels = []alias{
	{"sonar", "sonar"},
	{"so", "sonar"},
	{"pro", "sonar-pro"},
	{"reason", "sonar-reasoning"},
	{"re", "sonar-reasoning"},
	{"deep", "sonar-deep-research"},
	{"dr", "sonar-deep-research"},
}

var xaiModels = []alias{
	{"grok", "grok-4"},
	{"gr", "grok-4"},
	{"g3", "grok-3"},
	{"g3m", "grok-3-mini"},
	{"image", "grok-2-image-1212"},
	{"im", "grok-2-image-1212"},
}

func tableFor(p Provider) []alias {
	switch p {
	case Anthropic:
		return anthropicModels
	case Cerebras:
		return cerebrasModels
	case DeepSeek:
		return deepseekModels
	case Google:
		return googleModels
	case Groq:
		return groqModels
	case Llamafile:
		return llamafileModels
	case Ollama:
		return ollamaModels
	case OpenAI:
		return openaiModels
	case Perplexity:
		return perplexityModels
	case XAI:
		return xaiModels
	}
	return nil
}

// Resolve maps a short alias to the provider's canonical model id.
// Unknown names are returned unchanged so that fully-qualified model ids
// always work even without a table entry.
func Resolve(p Provider, model string) string {
	for _, a := range tableFor(p) {
		if a.from == model {
			return a.to
		}
	}
	return model
}

// Aliases returns a pretty listing of the provider's alias table, used by
// the CLI help output.
func Aliases(p Provider) []string {
	table := tableFor(p)
	out := make([]string, len(table))
	for i, a := range table {
		out[i] = a.from + " → " + a.to
	}
	return out
}

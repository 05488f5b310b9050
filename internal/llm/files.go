package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// fillerWords are dropped from prompt-derived filenames.
var fillerWords = map[string]bool{
	"a":   true,
	"an":  true,
	"the": true,
	"of":  true,
	"in":  true,
	"on":  true,
	"to":  true,
	"and": true,
}

const maxSlugLen = 30

// slugify derives a short filesystem-safe slug from the user prompt:
// lowercased, non-alphanumeric runs collapsed to single underscores, filler
// words removed, truncated to 30 characters. An empty result falls back to
// "output".
func slugify(prompt string) string {
	lower := strings.ToLower(prompt)
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	kept := words[:0]
	for _, w := range words {
		if !fillerWords[w] {
			kept = append(kept, w)
		}
	}

	slug := strings.Join(kept, "_")
	if len(slug) > maxSlugLen {
		// Back up to a rune boundary so multibyte prompts cannot produce an
		// invalid-UTF-8 filename.
		cut := maxSlugLen
		for cut > 0 && !utf8.RuneStart(slug[cut]) {
			cut--
		}
		slug = strings.TrimRight(slug[:cut], "_")
	}
	if slug == "" {
		slug = "output"
	}
	return slug
}

// saveFile writes data under a timestamp-prefixed, de-duplicated name in the
// current directory and returns the chosen path. When the name is taken, a
// numeric suffix is appended and incremented until a free name is found.
func saveFile(slug, ext string, data []byte) (string, error) {
	stamp := time.Now().Format("2006-01-02_15-04")
	base := stamp + "_" + slug

	name := base + "." + ext
	for n := 1; ; n++ {
		if _, err := os.Stat(name); os.IsNotExist(err) {
			break
		}
		name = fmt.Sprintf("%s_%d.%s", base, n, ext)
	}

	if err := os.WriteFile(name, data, 0o644); err != nil {
		return "", fmt.Errorf("saving %s: %w", name, err)
	}
	return name, nil
}

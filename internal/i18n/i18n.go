package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

//go:embed locales/*.json
var localesFS embed.FS

const (
	LangEN = "en"
	LangFR = "fr"
	LangSW = "sw"
	LangLG = "lg"

	DefaultLang = LangEN
)

// Languages lists the supported language codes in a stable order.
var Languages = []string{LangEN, LangFR, LangSW, LangLG}

// IsSupported reports whether code belongs to the closed supported set.
func IsSupported(code string) bool {
	switch code {
	case LangEN, LangFR, LangSW, LangLG:
		return true
	}
	return false
}

type contextKey struct{}

// Bundle holds every translation, preloaded from the embedded locale files.
// It is constructed once at startup and injected wherever text is rendered;
// there is no package-level singleton.
type Bundle struct {
	// translations maps lang -> dot-notation key -> translated string.
	translations map[string]map[string]string
}

// Load reads the embedded JSON locale files for every supported language.
func Load() (*Bundle, error) {
	b := &Bundle{translations: make(map[string]map[string]string)}
	for _, lang := range Languages {
		data, err := localesFS.ReadFile("locales/" + lang + ".json")
		if err != nil {
			return nil, fmt.Errorf("read %s.json: %w", lang, err)
		}
		var raw map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse %s.json: %w", lang, err)
		}
		flat := make(map[string]string)
		flatten("", raw, flat)
		b.translations[lang] = flat
	}
	log.Printf("i18n: loaded %d languages, %d keys each", len(b.translations), len(b.translations[DefaultLang]))
	return b, nil
}

// flatten recursively flattens nested JSON into dot-notation keys.
func flatten(prefix string, m map[string]any, out map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			flatten(key, val, out)
		}
	}
}

// WithLocale stores the locale in the context.
func WithLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, contextKey{}, lang)
}

// GetLocale returns the locale from the context, or DefaultLang.
func GetLocale(ctx context.Context) string {
	if lang, ok := ctx.Value(contextKey{}).(string); ok && lang != "" {
		return lang
	}
	return DefaultLang
}

// T translates a key using the locale from ctx.
// Optional args are used with fmt.Sprintf if the translated string contains %s/%d etc.
// Fallback chain: current lang -> EN -> the key itself.
func (b *Bundle) T(ctx context.Context, key string, args ...any) string {
	lang := GetLocale(ctx)

	if m, ok := b.translations[lang]; ok {
		if s, ok := m[key]; ok {
			return format(s, args)
		}
	}
	if lang != DefaultLang {
		if m, ok := b.translations[DefaultLang]; ok {
			if s, ok := m[key]; ok {
				return format(s, args)
			}
		}
	}
	return key
}

func format(s string, args []any) string {
	if len(args) == 0 || !strings.Contains(s, "%") {
		return s
	}
	return fmt.Sprintf(s, args...)
}

package i18n

import (
	"context"
	"testing"
)

func TestLoad(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	for _, lang := range Languages {
		if len(b.translations[lang]) == 0 {
			t.Errorf("no translations loaded for %q", lang)
		}
	}
	// Every language must cover the default language's keys.
	for key := range b.translations[DefaultLang] {
		for _, lang := range Languages {
			if _, ok := b.translations[lang][key]; !ok {
				t.Errorf("language %q missing key %q", lang, key)
			}
		}
	}
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"en", true},
		{"fr", true},
		{"sw", true},
		{"lg", true},
		{"de", false},
		{"EN", false},
		{"", false},
		{"english", false},
	}
	for _, tt := range tests {
		if got := IsSupported(tt.code); got != tt.want {
			t.Errorf("IsSupported(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func testBundle() *Bundle {
	return &Bundle{translations: map[string]map[string]string{
		"en": {"greeting": "Hello", "only.en": "English only", "count": "%d items"},
		"fr": {"greeting": "Bonjour"},
	}}
}

func TestT(t *testing.T) {
	b := testBundle()
	ctx := WithLocale(context.Background(), "fr")

	if got := b.T(ctx, "greeting"); got != "Bonjour" {
		t.Errorf("T(greeting) = %q, want Bonjour", got)
	}
	// Missing in fr, falls back to the default language.
	if got := b.T(ctx, "only.en"); got != "English only" {
		t.Errorf("T(only.en) = %q, want English only", got)
	}
	// Missing everywhere, returns the key.
	if got := b.T(ctx, "nope.nope"); got != "nope.nope" {
		t.Errorf("T(nope.nope) = %q, want the key back", got)
	}
}

func TestT_Format(t *testing.T) {
	b := testBundle()
	if got := b.T(context.Background(), "count", 3); got != "3 items" {
		t.Errorf("T(count, 3) = %q, want %q", got, "3 items")
	}
}

func TestGetLocale(t *testing.T) {
	if got := GetLocale(context.Background()); got != DefaultLang {
		t.Errorf("GetLocale(empty ctx) = %q, want %q", got, DefaultLang)
	}
	ctx := WithLocale(context.Background(), "sw")
	if got := GetLocale(ctx); got != "sw" {
		t.Errorf("GetLocale = %q, want sw", got)
	}
}

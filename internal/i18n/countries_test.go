package i18n

import "testing"

func TestLanguageForCountry(t *testing.T) {
	tests := []struct {
		cc   string
		want string
	}{
		{"UG", LangEN},
		{"US", LangEN},
		{"FR", LangFR},
		{"SN", LangFR},
		{"TZ", LangSW},
		{"KE", LangSW},
		{"fr", LangFR},   // case-insensitive
		{" ke ", LangSW}, // tolerant of whitespace
		{"JP", DefaultLang},
		{"", DefaultLang},
		{"XX", DefaultLang},
	}
	for _, tt := range tests {
		if got := LanguageForCountry(tt.cc); got != tt.want {
			t.Errorf("LanguageForCountry(%q) = %q, want %q", tt.cc, got, tt.want)
		}
	}
}

func TestCountryLanguage_NoOpinion(t *testing.T) {
	for _, cc := range []string{"", "JP", "BR", "ZZ"} {
		if lang, ok := CountryLanguage(cc); ok {
			t.Errorf("CountryLanguage(%q) = %q, want no opinion", cc, lang)
		}
	}
}

func TestCountryLanguages_AllSupported(t *testing.T) {
	for cc, lang := range countryLanguages {
		if !IsSupported(lang) {
			t.Errorf("country %s maps to unsupported language %q", cc, lang)
		}
	}
}

package i18n

import "testing"

func TestLanguageFromHeader(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"   ", ""},
		{"en", "en"},
		{"en-US,en;q=0.9", "en"},
		{"fr-FR,fr;q=0.9,en;q=0.8", "fr"},
		{"sw", "sw"},
		{"sw-TZ", "sw"},
		{"lg", "lg"},
		{"de-DE,sw;q=0.5", "sw"},
		{"de-DE", ""},
		{"pt-BR,pt;q=0.9", ""},
	}
	for _, tt := range tests {
		if got := LanguageFromHeader(tt.header); got != tt.want {
			t.Errorf("LanguageFromHeader(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

package handlers

import (
	"net/http"

	"nexthomelabs/internal/i18n"
	"nexthomelabs/internal/prefs"
)

type LangHandler struct {
	pref *prefs.Preferences
}

func NewLangHandler(pref *prefs.Preferences) *LangHandler {
	return &LangHandler{pref: pref}
}

// SetLang records an explicit language choice and redirects back to the
// referring page. The resolution epoch is bumped so any detection pass still
// in flight is discarded; a manual choice always wins.
func (h *LangHandler) SetLang(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if !i18n.IsSupported(lang) {
		lang = i18n.DefaultLang
	}

	h.pref.SaveLanguage(w, lang)
	h.pref.BumpEpoch(w, r)

	referer := r.Header.Get("Referer")
	if referer == "" {
		referer = "/"
	}
	http.Redirect(w, r, referer, http.StatusSeeOther)
}

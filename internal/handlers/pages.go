package handlers

import (
	"log"
	"net/http"

	"nexthomelabs/internal/content"
	"nexthomelabs/internal/i18n"
	"nexthomelabs/templates"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
)

type PageHandler struct {
	bundle  *i18n.Bundle
	library *content.Library
}

func NewPageHandler(bundle *i18n.Bundle, library *content.Library) *PageHandler {
	return &PageHandler{bundle: bundle, library: library}
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, templates.HomePage(h.bundle, h.library.Articles()))
}

func (h *PageHandler) News(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, templates.NewsPage(h.bundle, h.library.Articles()))
}

func (h *PageHandler) Article(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	article, ok := h.library.Article(slug)
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.render(w, r, templates.ArticlePage(h.bundle, article))
}

func (h *PageHandler) Team(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, templates.TeamPage(h.bundle, h.library.Team()))
}

func (h *PageHandler) Privacy(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, templates.LegalPage(h.bundle, "legal.privacy"))
}

func (h *PageHandler) Terms(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, templates.LegalPage(h.bundle, "legal.terms"))
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		log.Printf("pages: render %s: %v", r.URL.Path, err)
	}
}

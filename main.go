package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"nexthomelabs/internal/config"
	"nexthomelabs/internal/content"
	"nexthomelabs/internal/domains"
	"nexthomelabs/internal/geo"
	"nexthomelabs/internal/handlers"
	"nexthomelabs/internal/i18n"
	localemw "nexthomelabs/internal/middleware"
	"nexthomelabs/internal/prefs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	gorilla "github.com/gorilla/handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	bundle, err := i18n.Load()
	if err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	registry, err := domains.Load(cfg.DevHosts)
	if err != nil {
		log.Fatalf("Failed to load domain registry: %v", err)
	}

	library, err := content.Load()
	if err != nil {
		log.Fatalf("Failed to load content: %v", err)
	}

	geoOpts := []geo.Option{geo.WithBaseURLs(cfg.IPAPIURL, cfg.ReverseGeocodeURL)}
	if cfg.RedisAddr != "" {
		geoOpts = append(geoOpts, geo.WithCache(geo.NewRedisCache(cfg.RedisAddr)))
		log.Printf("geo: caching lookups in redis at %s", cfg.RedisAddr)
	}
	geoClient := geo.NewClient(geoOpts...)

	pref := prefs.New(prefs.CookieStore{})
	resolver := i18n.NewResolver(geoClient)

	pageHandler := handlers.NewPageHandler(bundle, library)
	langHandler := handlers.NewLangHandler(pref)
	localeHandler := handlers.NewLocaleHandler(resolver, pref)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	// Trust the reverse proxy's forwarded address so IP lookups see the
	// visitor, not the proxy.
	r.Use(gorilla.ProxyHeaders)
	r.Use(localemw.DomainBranding(registry))

	// Static files
	fileServer := http.FileServer(http.Dir("static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	// Locale API and language switcher, never locale-prefixed
	r.Get("/lang", langHandler.SetLang)
	r.Get("/api/locale", localeHandler.Current)
	r.Post("/api/locale/detect", localeHandler.Detect)

	// Pages, served unprefixed (default language) and under every language prefix
	r.Group(func(r chi.Router) {
		r.Use(localemw.LocaleRedirect(pref, cfg.GeoIPHeader))

		pages := func(r chi.Router) {
			r.Get("/", pageHandler.Home)
			r.Get("/news", pageHandler.News)
			r.Get("/news/{slug}", pageHandler.Article)
			r.Get("/team", pageHandler.Team)
			r.Get("/privacy", pageHandler.Privacy)
			r.Get("/terms", pageHandler.Terms)
		}
		pages(r)
		for _, lang := range i18n.Languages {
			r.Route("/"+lang, pages)
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		<-ctx.Done()
		log.Println("Shutting down server...")
		srv.Shutdown(context.Background())
	}()

	log.Printf("Server starting on http://localhost%s", addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
}

// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

// Command agrosan runs the Agrosan Makina corporate website: localized
// public pages in three languages, the JSON content API and the admin
// panel, all backed by flat JSON documents.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/agrosan/site/internal/cache"
	"github.com/agrosan/site/internal/config"
	"github.com/agrosan/site/internal/handler"
	"github.com/agrosan/site/internal/i18n"
	"github.com/agrosan/site/internal/imaging"
	"github.com/agrosan/site/internal/middleware"
	"github.com/agrosan/site/internal/render"
	"github.com/agrosan/site/internal/session"
	"github.com/agrosan/site/internal/store"
	"github.com/agrosan/site/internal/version"
	"github.com/agrosan/site/web"
)

// Build-time version information injected via ldflags.
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Agrosan Makina website server\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AGROSAN_SESSION_SECRET   Session/CSRF key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AGROSAN_DATA_DIR         Content JSON directory (default: ./data)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AGROSAN_UPLOADS_DIR      Upload directory (default: ./uploads)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AGROSAN_SERVER_PORT      Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AGROSAN_SITE_URL         Canonical origin for SEO tags\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AGROSAN_ENV              development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AGROSAN_REDIS_URL        Redis URL for the shared cache (optional)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if *showVersion {
		_, _ = fmt.Printf("agrosan %s\n", version.New(appVersion, appGitCommit, appBuildTime))
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	versionInfo := version.New(appVersion, appGitCommit, appBuildTime)

	i18n.InitCookies(cfg.IsDevelopment())

	// Content store
	for _, dir := range []string{cfg.DataDir, cfg.UploadsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	st, err := store.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing store: %w", err)
	}
	if err := st.Seed(cfg.AdminPassword); err != nil {
		return fmt.Errorf("seeding content: %w", err)
	}
	slog.Info("content store ready", "dir", cfg.DataDir)

	// Cache: Redis when configured, in-process memory otherwise
	var appCache cache.Cache
	if cfg.UseRedisCache() {
		appCache, err = cache.NewRedisCache(cfg.RedisURL, cfg.CachePrefix, time.Duration(cfg.CacheTTL)*time.Second)
		if err != nil {
			slog.Warn("redis unavailable, using memory cache", "error", err)
			appCache = cache.NewMemoryCache(time.Duration(cfg.CacheTTL)*time.Second, time.Minute)
		} else {
			slog.Info("cache initialized", "backend", "redis", "url", cfg.RedisURL)
		}
	} else {
		appCache = cache.NewMemoryCache(time.Duration(cfg.CacheTTL)*time.Second, time.Minute)
		slog.Info("cache initialized", "backend", "memory")
	}
	defer func() {
		if err := appCache.Close(); err != nil {
			slog.Error("closing cache", "error", err)
		}
	}()

	// Templates: embedded by default, disk override for markup editing
	var templatesFS fs.FS
	if cfg.TemplatesDir != "" {
		templatesFS = os.DirFS(cfg.TemplatesDir)
		slog.Info("using templates from disk", "dir", cfg.TemplatesDir)
	} else {
		templatesFS, err = fs.Sub(web.Templates, "templates")
		if err != nil {
			return fmt.Errorf("getting templates fs: %w", err)
		}
	}

	// Development skips the template cache so edits show up immediately.
	var templateCache cache.Cache
	if !cfg.IsDevelopment() {
		templateCache = appCache
	}
	renderer := render.New(render.Config{
		TemplatesFS: templatesFS,
		Cache:       templateCache,
		SiteURL:     cfg.SiteURL,
	})

	sessionManager := session.New(cfg.IsDevelopment())
	slog.Info("session manager initialized")

	loginProtection := middleware.NewLoginProtection()

	// Handlers
	frontendHandler := handler.NewFrontend(st, renderer)
	apiHandler := handler.NewAPI(st, frontendHandler)
	adminHandler := handler.NewAdmin(st, renderer)
	authHandler := handler.NewAuth(st, sessionManager, loginProtection, templatesFS)
	mediaHandler := handler.NewMedia(imaging.NewProcessor(cfg.UploadsDir))
	healthHandler := handler.NewHealth(st, appCache, versionInfo)
	sitemapHandler := handler.NewSitemap(st, frontendHandler, appCache, cfg.SiteURL, cfg.IsDevelopment())

	csrfMiddleware := middleware.CSRF(middleware.DefaultCSRFConfig(
		[]byte(cfg.SessionSecret), cfg.IsDevelopment(), fmt.Sprintf("%d", cfg.ServerPort)))

	r := chi.NewRouter()

	// Global middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(middleware.StripTrailingSlash)
	r.Use(middleware.Language)
	r.Use(middleware.LegacyRedirect(frontendHandler.Resolver))

	r.Get("/health", healthHandler.Check)
	r.Get("/sitemap.xml", sitemapHandler.ServeSitemap)
	r.Get("/robots.txt", sitemapHandler.ServeRobots)

	// Static assets (embedded) and uploads (disk)
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("getting static fs: %w", err)
	}
	r.Handle("/static/*", middleware.StaticCache(31536000)(
		http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))))
	r.Handle("/uploads/*", middleware.StaticCache(604800)(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir)))))

	// Public content API
	r.Route("/api", func(r chi.Router) {
		r.Get("/products", apiHandler.Products)
		r.Get("/products/{id}", apiHandler.Product)
		r.Get("/news", apiHandler.News)
		r.Get("/news/{slug}", apiHandler.NewsArticle)
		r.Get("/content/{doc}", apiHandler.Content)
		r.Get("/slugs", apiHandler.Slugs)
	})

	// Admin pages and login
	r.Route("/admin", func(r chi.Router) {
		r.Use(sessionManager.LoadAndSave)
		r.Use(csrfMiddleware)

		r.Get("/login", authHandler.LoginForm)
		r.With(loginProtection.Middleware()).Post("/login", authHandler.Login)
		r.Get("/logout", authHandler.Logout)
		r.Post("/logout", authHandler.Logout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(sessionManager))
			r.Use(middleware.LoadUser(sessionManager, st))
			r.Get("/", serveTemplate(templatesFS, "admin/index.html"))
		})
	})

	// Admin JSON API
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(sessionManager.LoadAndSave)
		r.Use(csrfMiddleware)
		r.Use(middleware.Auth(sessionManager))

		r.Get("/products", adminHandler.ListProducts)
		r.Post("/products", adminHandler.CreateProduct)
		r.Put("/products/{id}", adminHandler.UpdateProduct)
		r.Delete("/products/{id}", adminHandler.DeleteProduct)

		r.Get("/news", adminHandler.ListNews)
		r.Post("/news", adminHandler.CreateNews)
		r.Put("/news/{id}", adminHandler.UpdateNews)
		r.Delete("/news/{id}", adminHandler.DeleteNews)

		r.Put("/content/{doc}", adminHandler.SaveContent)

		r.Post("/media", mediaHandler.Upload)
		r.Delete("/media/{id}", mediaHandler.Delete)

		r.Post("/cache/clear", adminHandler.ClearCache)
	})

	// Everything else is a localized page path
	r.Get("/*", frontendHandler.Serve)

	// Periodic sitemap refresh keeps the cached copy warm
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every 1h", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := sitemapHandler.Rebuild(ctx); err != nil {
			slog.Error("scheduled sitemap rebuild failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("scheduling sitemap refresh: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // allow slow upload connections
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", appVersion)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// serveTemplate returns a handler serving one embedded HTML file verbatim.
func serveTemplate(templates fs.FS, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := fs.ReadFile(templates, name)
		if err != nil {
			slog.Error("loading page", "name", name, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	}
}

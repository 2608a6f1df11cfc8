package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/ai-heroes/storyquest/internal/api/http"
	auth "github.com/ai-heroes/storyquest/internal/auth/middleware"
	"github.com/ai-heroes/storyquest/internal/catalog"
	"github.com/ai-heroes/storyquest/internal/config"
	"github.com/ai-heroes/storyquest/internal/db"
	"github.com/ai-heroes/storyquest/internal/eventlog"
	"github.com/ai-heroes/storyquest/internal/i18n"
	"github.com/ai-heroes/storyquest/internal/rbac"
	"github.com/ai-heroes/storyquest/internal/session"
	"github.com/ai-heroes/storyquest/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	// --- Domain wiring ---
	cat := catalog.Default()
	res := i18n.NewResolver(cfg.DefaultLang)
	events := eventlog.NewRepo(dbh, "")
	svc := session.NewService(cat, session.NewSQLStore(dbh), session.WithEvents(events))

	// --- Auth (device-local onboarding tokens) ---
	authSvc := auth.NewAuthService(cfg.AuthHMACSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/onboard", auth.OnboardHandler(authSvc, dbh, cfg.EducatorPINHash))

	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))
		pr.Route("/assets", func(ar chi.Router) {
			api.MountAssets(ar, bs)
		})
	})

	// Protected API (JWT -> role in context -> RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		// Story catalog
		pr.With(rbac.Require("story:view")).
			Get("/stories", api.ListStoriesHandler(cat, res))
		pr.With(rbac.Require("story:view")).
			Get("/stories/{storyID}", api.GetStoryHandler(cat, res))
		pr.With(rbac.Require("resources:view")).
			Get("/stories/{storyID}/resources", api.GetStoryResourcesHandler(cat, res))

		// Session flow
		pr.With(rbac.Require("session:create")).
			Post("/sessions", api.CreateSessionHandler(svc, res))
		pr.With(rbac.RequireAny("session:view-own", "session:view-all")).
			Get("/sessions", api.ListSessionsHandler(svc))
		pr.With(rbac.RequireAny("session:view-own", "session:view-all")).
			Get("/sessions/{sessionID}", api.GetSessionHandler(svc))
		pr.With(rbac.RequireAny("session:view-own", "session:view-all")).
			Get("/sessions/{sessionID}/results", api.GetResultsHandler(svc))

		pr.With(rbac.Require("session:operate")).
			Post("/sessions/{sessionID}/quiz/answer", api.SelectOptionHandler(svc))
		pr.With(rbac.Require("session:operate")).
			Post("/sessions/{sessionID}/quiz/submit", api.SubmitQuizHandler(svc))
		pr.With(rbac.Require("session:operate")).
			Post("/sessions/{sessionID}/matching/place", api.PlaceTokenHandler(svc))
		pr.With(rbac.Require("session:operate")).
			Post("/sessions/{sessionID}/matching/clear", api.ClearSlotHandler(svc))
		pr.With(rbac.Require("session:operate")).
			Post("/sessions/{sessionID}/matching/submit", api.SubmitMatchingHandler(svc))
		pr.With(rbac.Require("session:operate")).
			Post("/sessions/{sessionID}/scramble/place", api.MoveLetterHandler(svc))
		pr.With(rbac.Require("session:operate")).
			Post("/sessions/{sessionID}/scramble/return", api.ReturnLetterHandler(svc))
		pr.With(rbac.Require("session:operate")).
			Post("/sessions/{sessionID}/scramble/submit", api.SubmitScrambleHandler(svc))

		// Printables (educator hub)
		pr.With(rbac.Require("printable:view")).
			Get("/printables/stories/{storyID}", api.PrintResourcesHandler(cat, res))
		pr.With(rbac.Require("printable:view")).
			Get("/printables/sessions/{sessionID}", api.PrintResultsHandler(cat, svc))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := dbh.PingContext(r.Context()); err != nil {
			http.Error(w, "db: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(200)
	})

	log.Printf("listening on %s (mode=%s, db=%s, lang=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver, cfg.DefaultLang)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

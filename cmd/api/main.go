package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	appbrand "github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/application/brand"
	apphistory "github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/application/history"
	"github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/config"
	branddomain "github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/domain/brand"
	historydomain "github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/domain/history"
	"github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/infra/ai/mock"
	openaiinfra "github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/infra/ai/openai"
	"github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/infra/db/postgres"
	"github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/infra/db/sqlite"
	"github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/infra/httpserver"
	minioStore "github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/infra/storage"
	"github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config (demo defaults apply when the file is missing)
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// open history store
	var db *sql.DB
	var repo historydomain.Repository
	switch cfg.Database.Driver {
	case "postgres":
		db, err = postgres.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		pgRepo := postgres.NewHistoryRepository(db)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			log.Fatalf("schema init error: %v", err)
		}
		repo = pgRepo
	default:
		db, err = sqlite.Connect(ctx, cfg.Database.Path)
		if err != nil {
			log.Fatalf("sqlite connect error: %v", err)
		}
		liteRepo := sqlite.NewHistoryRepository(db)
		if err := liteRepo.EnsureSchema(ctx); err != nil {
			log.Fatalf("schema init error: %v", err)
		}
		repo = liteRepo
	}
	defer db.Close()

	historySvc := apphistory.NewService(repo)

	// init AI collaborators
	var generator branddomain.Generator
	var persona branddomain.Persona
	var speech branddomain.Speech
	if cfg.AI.Provider == "openai" {
		var assets branddomain.AssetStore
		if cfg.Minio.Endpoint != "" {
			store, err := minioStore.New(ctx,
				cfg.Minio.Endpoint,
				cfg.Minio.Region,
				cfg.Minio.BucketName,
				cfg.Minio.AccessKey,
				cfg.Minio.SecretKey,
				cfg.Minio.UseSSL,
			)
			if err != nil {
				log.Fatalf("minio init error: %v", err)
			}
			assets = store
		}
		client := openaiinfra.NewClient(cfg.AI.APIKey, cfg.AI.Model, assets)
		generator, persona, speech = client, client, client
	} else {
		generator = mock.NewGenerator(cfg.Assets.MockData, cfg.GenerateLatency())
		persona = &mock.Persona{Latency: cfg.ChatLatency()}
		speech = mock.Speech{}
	}

	brandSvc := &appbrand.Service{
		Generator: generator,
		Persona:   persona,
		Speech:    speech,
		History:   historySvc,
	}

	// init router
	handler, err := httpserver.NewRouter(brandSvc, historySvc, httpserver.Config{
		AssetsDir:    cfg.Assets.Dir,
		TemplatesDir: cfg.Assets.Templates,
		Health: middleware.HealthHandler(map[string]middleware.HealthChecker{
			"database": &middleware.DatabaseHealthChecker{DB: db},
		}),
	})
	if err != nil {
		log.Fatalf("router init error: %v", err)
	}

	mux := chi.NewRouter()
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.RateLimitMiddleware(20, 5))
	mux.Mount("/", handler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

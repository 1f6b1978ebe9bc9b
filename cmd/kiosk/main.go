// cmd/kiosk/main.go
package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"

	"brewpos/internal/auth"
	"brewpos/internal/cart"
	"brewpos/internal/catalog"
	"brewpos/internal/checkout"
	"brewpos/internal/config"
	"brewpos/internal/discount"
	"brewpos/internal/receipt"
	"brewpos/internal/telemetry"
)

func main() {
	cfg := config.Load()

	shutdownTracing, err := telemetry.Setup(context.Background(), "brewpos", cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("telemetry setup: %v", err)
	}
	defer shutdownTracing(context.Background())

	var (
		menu       catalog.Catalog
		categories catalog.Categories
		authSvc    auth.Service
		discounts  discount.Service
		receipts   receipt.Store
	)

	switch cfg.DataSource {
	case "postgres":
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("database connect: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Fatalf("database ping: %v", err)
		}

		pg := catalog.NewPostgresCatalog(db)
		menu, categories = pg, pg
		authSvc = auth.NewPostgresService(db)
		discounts = discount.NewPostgresService(db)
		receipts = receipt.NewPostgresStore(db)
		log.Printf("using postgres data source")

	default:
		fc, err := catalog.NewFileCatalog(cfg.DataDir)
		if err != nil {
			log.Fatalf("load catalog: %v", err)
		}
		menu, categories = fc, fc
		if authSvc, err = auth.NewFileService(cfg.DataDir); err != nil {
			log.Fatalf("load users: %v", err)
		}
		if discounts, err = discount.NewFileService(cfg.DataDir); err != nil {
			log.Fatalf("load discounts: %v", err)
		}
		if receipts, err = receipt.NewFileStore(cfg.DataDir); err != nil {
			log.Fatalf("load receipts: %v", err)
		}
		log.Printf("using file data source in %s", cfg.DataDir)
	}

	tokens := auth.NewTokens(cfg.JWTSecret, time.Duration(cfg.JWTExpiresMinutes)*time.Minute)
	activeCart := cart.New()
	builder := receipt.NewBuilder(cfg.ShopName)
	gateway := checkout.NewBreakerGateway(&checkout.SimulatedGateway{Latency: cfg.GatewayLatency})
	orch := checkout.NewOrchestrator(activeCart, menu, receipts, builder, gateway, cfg.ChargeTimeout)

	go func() {
		for e := range orch.Events() {
			log.Printf("checkout %s: state=%s attempt=%s", e.Type, e.State, e.AttemptID)
		}
	}()

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	auth.NewHandler(authSvc, tokens).Routes(r)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSession(tokens))
		catalog.NewHandler(menu, categories).Routes(pr)
		cart.NewHandler(activeCart, menu).Routes(pr)
		discount.NewHandler(discounts).Routes(pr)
		receipt.NewHandler(receipts).Routes(pr)
		checkout.NewHandler(orch).Routes(pr)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)
		<-c
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("kiosk listening on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("listen: %v", err)
	}

	<-idleConnsClosed
	log.Println("server stopped")
}

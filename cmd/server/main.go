package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/shoplane/catalog-service/internal/app/catalog/queries"
	"github.com/shoplane/catalog-service/internal/app/catalog/queries/admin_list_products"
	"github.com/shoplane/catalog-service/internal/app/catalog/queries/get_product"
	"github.com/shoplane/catalog-service/internal/app/catalog/queries/list_categories"
	"github.com/shoplane/catalog-service/internal/app/catalog/queries/list_products"
	"github.com/shoplane/catalog-service/internal/app/catalog/repo"
	"github.com/shoplane/catalog-service/internal/app/catalog/usecases/create_product"
	"github.com/shoplane/catalog-service/internal/config"
	"github.com/shoplane/catalog-service/internal/logger"
	"github.com/shoplane/catalog-service/internal/pkg/clock"
	"github.com/shoplane/catalog-service/internal/pkg/committer"
	httpcatalog "github.com/shoplane/catalog-service/internal/transport/http/catalog"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.Server.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		zl.Info("shutdown signal received")
		cancel()
	}()

	client, err := spanner.NewClient(ctx, cfg.Spanner.Database)
	if err != nil {
		zl.Fatal("spanner client", zap.Error(err))
	}
	defer client.Close()

	clk := clock.RealClock{}
	categoryRepo := repo.NewCategoryRepo(client)
	productRepo := repo.NewProductRepo()
	cm := committer.NewAdapter(client)
	readModel := queries.NewSpannerReadModel(client)

	cmds := httpcatalog.Commands{
		Create: create_product.NewInteractor(categoryRepo, productRepo, cm, clk),
	}
	qrys := httpcatalog.Queries{
		List:       list_products.NewHandler(readModel, categoryRepo),
		AdminList:  admin_list_products.NewHandler(readModel, categoryRepo),
		Categories: list_categories.NewHandler(categoryRepo),
		Get:        get_product.NewHandler(readModel),
	}
	h := httpcatalog.NewHandler(cmds, qrys, zl)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	router.Route("/api/v1", h.RegisterRoutes)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		zl.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Error("serve", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("shutdown", zap.Error(err))
	}

	zl.Info("server stopped")
}

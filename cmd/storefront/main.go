package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	catalogapp "github.com/dwikikusuma/storefront-cart/internal/catalog/app"
	"github.com/dwikikusuma/storefront-cart/internal/catalog/infra/seed"
	"github.com/dwikikusuma/storefront-cart/internal/checkout/infra/adapter"
	orderapp "github.com/dwikikusuma/storefront-cart/internal/order/app"
	"github.com/dwikikusuma/storefront-cart/internal/projection"
	storefronthttp "github.com/dwikikusuma/storefront-cart/internal/storefront/http"
	"github.com/dwikikusuma/storefront-cart/pkg/config"
	"github.com/dwikikusuma/storefront-cart/pkg/logger"
	"github.com/dwikikusuma/storefront-cart/pkg/shutdown"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	productRepo, err := seed.NewProductRepoFromFile(cfg.CatalogFile)
	if err != nil {
		log.Error("catalog load failed", slog.Any("err", err), slog.String("file", cfg.CatalogFile))
		os.Exit(1)
	}
	catalogSvc := catalogapp.NewService(productRepo)

	orderSvc := orderapp.NewService(nil, nil)
	renderer := projection.NewRenderer(projection.NewFormatter(cfg.Locale, cfg.Currency))

	srv, err := storefronthttp.NewServer(catalogSvc, adapter.NewOrderServicePlacer(orderSvc), renderer, storefronthttp.Options{
		StorageKey:   cfg.StorageKey,
		CookieSecure: cfg.CookieSecure,
		ShopName:     cfg.ShopName,
	}, log)
	if err != nil {
		log.Error("storefront init failed", slog.Any("err", err))
		os.Exit(1)
	}

	httpAddr := fmt.Sprintf(":%d", cfg.HTTPPort)
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	grpcAddr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Error("listen failed", slog.Any("err", err), slog.String("addr", grpcAddr))
		os.Exit(1)
	}

	healthSrv := health.NewServer()
	grpcServer := grpc.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthSrv)
	reflection.Register(grpcServer)
	healthSrv.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthSrv.SetServingStatus("storefront", grpc_health_v1.HealthCheckResponse_SERVING)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", httpAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		log.Info("grpc health starting", slog.String("addr", grpcAddr))
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")

		return shutdown.Run(10*time.Second, log,
			shutdown.Step{Name: "grpc health", Stop: func(context.Context) error {
				healthSrv.Shutdown()
				return nil
			}},
			shutdown.Step{Name: "http", Stop: httpServer.Shutdown},
			shutdown.Step{Name: "grpc", Stop: shutdown.Graceful(grpcServer.GracefulStop, grpcServer.Stop)},
		)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("bye")
}

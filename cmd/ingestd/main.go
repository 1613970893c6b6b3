package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	ingestpb "github.com/kunle-oseni/resume-ingest/gen/proto/ingest/v1"
	"github.com/kunle-oseni/resume-ingest/internal/common"
	"github.com/kunle-oseni/resume-ingest/internal/extract"
	"github.com/kunle-oseni/resume-ingest/internal/llm/openai"
	"github.com/kunle-oseni/resume-ingest/internal/parser"
	"github.com/kunle-oseni/resume-ingest/internal/pipeline"
	"github.com/kunle-oseni/resume-ingest/internal/queue"
	repo "github.com/kunle-oseni/resume-ingest/internal/repository"
	"github.com/kunle-oseni/resume-ingest/internal/resume"
	svc "github.com/kunle-oseni/resume-ingest/internal/server"
	"github.com/kunle-oseni/resume-ingest/internal/storage"
	"github.com/kunle-oseni/resume-ingest/internal/worker"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	q, err := queue.NewRedisQueue(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Error("failed to connect to redis", "addr", cfg.Redis.Addr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := q.Close(); err != nil {
			logger.Error("failed to close queue", "error", err)
		}
	}()

	store, err := openStore(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to open document store", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}

	extractor := buildExtractor(cfg, logger)
	textExtractor := extract.NewDocumentExtractor(logger)
	ingester := repo.NewIngester(entc, logger)
	processor := pipeline.NewProcessor(store, textExtractor, extractor, ingester, logger)

	consumer := worker.NewConsumer(q, processor, logger,
		worker.WithWorkers(cfg.Worker.Concurrency),
		worker.WithProcessTimeout(cfg.Worker.ProcessTimeout),
		worker.WithMaxAttempts(cfg.Worker.MaxAttempts),
	)
	consumer.Start(ctx)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	usersRepo := repo.NewUserRepository(entc, logger)
	readinessRepo := repo.NewReadinessRepository(entc, logger)
	ingestpb.RegisterIngestionServiceServer(grpcServer, svc.NewIngestionServer(q, usersRepo, readinessRepo, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("resume-ingest listening", "addr", cfg.Server.GRPCAddr,
		"extractor", cfg.Worker.Extractor, "storage", cfg.Storage.Backend)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	consumer.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
}

func openStore(ctx context.Context, cfg common.StorageConfig, logger *slog.Logger) (storage.ObjectStore, error) {
	if cfg.Backend == "local" {
		return storage.NewLocalStore(cfg.LocalDir)
	}
	return storage.NewGCSStore(ctx, cfg.Bucket, logger)
}

func buildExtractor(cfg *common.Config, logger *slog.Logger) resume.Extractor {
	if cfg.Worker.Extractor == "heuristic" {
		return parser.NewEngine(logger)
	}
	return openai.NewClient(openai.Config{
		Model:       cfg.LLM.Model,
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
}

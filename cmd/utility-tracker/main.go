package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/huisbeheer/utility-tracker/gen/proto/utilitytracker/v1"
	"github.com/huisbeheer/utility-tracker/internal/async"
	"github.com/huisbeheer/utility-tracker/internal/common"
	"github.com/huisbeheer/utility-tracker/internal/export"
	"github.com/huisbeheer/utility-tracker/internal/ingest"
	"github.com/huisbeheer/utility-tracker/internal/parse"
	"github.com/huisbeheer/utility-tracker/internal/pdftext"
	"github.com/huisbeheer/utility-tracker/internal/pipeline"
	repo "github.com/huisbeheer/utility-tracker/internal/repository"
	svc "github.com/huisbeheer/utility-tracker/internal/server"
)

func main() {
	// Structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	invoicesRepo := repo.NewInvoiceRepository(entc, logger)
	addressesRepo := repo.NewAddressRepository(entc, logger)
	readingsRepo := repo.NewMeterReadingRepository(entc, logger)
	sessionsRepo := repo.NewTimeSessionRepository(entc, logger)
	pricesRepo := repo.NewUtilityPriceRepository(entc, logger)

	if err := pricesRepo.EnsureDefaults(ctx); err != nil {
		logger.Error("failed to seed default tariffs", "error", err)
		os.Exit(1)
	}

	accounts, err := parse.LoadAccountTable(cfg.Parser.AccountsFile)
	if err != nil {
		logger.Error("failed to load account table", "path", cfg.Parser.AccountsFile, "error", err)
		os.Exit(1)
	}
	reader := pdftext.NewReader(pdftext.Config{
		MaxPages:     cfg.Parser.MaxPages,
		MaxFileBytes: cfg.Parser.MaxFileBytes,
	}, logger)
	parser := parse.NewParser(reader, accounts, logger)

	processor := pipeline.NewProcessor(parser, invoicesRepo, addressesRepo, pipeline.Config{
		DueDays: cfg.Parser.DefaultDueDays,
	}, logger)
	queue := async.NewProcessorQueue(
		async.FileProcessorFunc(func(ctx context.Context, path string) error {
			_, _, err := processor.ProcessFile(ctx, path)
			return err
		}),
		logger,
		async.WithWorkers(cfg.Ingest.Workers),
		async.WithQueueSize(cfg.Ingest.QueueSize),
		async.WithProcessTimeout(cfg.Ingest.ProcessTimeout),
	)
	ingestor := ingest.NewFSIngestor(logger)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(svc.RequestIDInterceptor(logger)))

	pb.RegisterInvoicesServiceServer(grpcServer,
		svc.NewInvoicesService(invoicesRepo, addressesRepo, parser, cfg.Parser.DefaultDueDays, logger))
	pb.RegisterMeterReadingsServiceServer(grpcServer,
		svc.NewMeterReadingsService(readingsRepo, addressesRepo, logger))
	pb.RegisterTimeTrackerServiceServer(grpcServer,
		svc.NewTimeTrackerService(sessionsRepo, logger))
	pb.RegisterUtilityPricesServiceServer(grpcServer,
		svc.NewUtilityPricesService(pricesRepo, logger))
	pb.RegisterImportServiceServer(grpcServer,
		svc.NewImportServiceServer(ingestor, processor, queue, logger))
	pb.RegisterExportServiceServer(grpcServer,
		svc.NewExportServer(export.NewService(invoicesRepo, readingsRepo, sessionsRepo, logger), logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	// Optional drop-folder watcher: every PDF landing under WATCH_DIR is
	// queued for import.
	if watchDir := os.Getenv("WATCH_DIR"); watchDir != "" {
		evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:    []string{watchDir},
			Debounce: 2 * time.Second,
		}, logger)
		if err != nil {
			logger.Error("failed to start watcher", "dir", watchDir, "error", err)
			os.Exit(1)
		}
		logger.Info("watching drop folder", "dir", watchDir)
		go func() {
			for evCh != nil || errCh != nil {
				select {
				case path, ok := <-evCh:
					if !ok {
						evCh = nil
						continue
					}
					_ = queue.Enqueue(ctx, async.Job{Path: path, SubmittedAt: time.Now().UTC()})
				case _, ok := <-errCh:
					if !ok {
						errCh = nil
					}
				}
			}
		}()
	}

	logger.Info("utility-tracker listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/nryeo/QRCODE-APP01/internal/config"
	grpcv2 "github.com/nryeo/QRCODE-APP01/internal/grpc/v2"
	"github.com/nryeo/QRCODE-APP01/internal/handlers"
	"github.com/nryeo/QRCODE-APP01/internal/logger"
	"github.com/nryeo/QRCODE-APP01/internal/qr"
	"github.com/nryeo/QRCODE-APP01/internal/router"
	"github.com/nryeo/QRCODE-APP01/internal/service"
	"github.com/nryeo/QRCODE-APP01/internal/shortener"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP and gRPC servers",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func newService(cfg *config.Config, log *zap.Logger) *service.QRService {
	var short service.Shortener = shortener.Disabled{}
	if cfg.ShortenerEnabled {
		short = shortener.NewTinyURL(cfg.ShortenerEndpoint, cfg.ShortenerTimeout, log.Named("shortener"))
	}
	return service.NewQRService(qr.NewEncoder(), short, log.Named("service"), cfg.DefaultStyle)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Инициализация конфигурации
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer log.Sync()

	svc := newService(cfg, log)
	handler := handlers.NewHandler(svc, log.Named("http"), cfg.DefaultStyle)
	r := router.NewRouter(handler, log.Named("http"))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// gRPC слушаем первым: ошибку порта лучше получить до старта HTTP
	var (
		grpcSrv *grpc.Server
		grpcLis net.Listener
	)
	if cfg.GRPCAddress != "" {
		grpcLis, err = net.Listen("tcp", cfg.GRPCAddress)
		if err != nil {
			return fmt.Errorf("listen grpc %s: %w", cfg.GRPCAddress, err)
		}
		grpcSrv = grpcv2.NewServer(grpcv2.NewGRPCServer(svc, cfg.DefaultStyle), log.Named("grpc"))
	}

	errCh := make(chan error, 2)

	httpSrv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("HTTP server started",
			zap.String("address", cfg.ServerAddress),
			zap.Bool("https", cfg.EnableHTTPS),
			zap.Bool("shortener", cfg.ShortenerEnabled),
		)
		var err error
		if cfg.EnableHTTPS {
			err = httpSrv.ListenAndServeTLS(cfg.TLSCertPath, cfg.TLSKeyPath)
		} else {
			err = httpSrv.ListenAndServe()
		}
		if !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	if grpcSrv != nil {
		go func() {
			log.Info("gRPC server started", zap.String("address", cfg.GRPCAddress))
			if err := grpcSrv.Serve(grpcLis); err != nil {
				errCh <- fmt.Errorf("grpc server: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case runErr = <-errCh:
		log.Error("server failed", zap.Error(runErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", zap.Error(err))
	}
	if grpcSrv != nil {
		grpcSrv.GracefulStop()
	}
	return runErr
}

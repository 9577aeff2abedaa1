// Command relay-server starts the im-relay gRPC server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/and161185/im-relay/internal/broker"
	"github.com/and161185/im-relay/internal/chat"
	"github.com/and161185/im-relay/internal/config"
	"github.com/and161185/im-relay/internal/crypto"
	"github.com/and161185/im-relay/internal/limiter"
	"github.com/and161185/im-relay/internal/migrate"
	"github.com/and161185/im-relay/internal/provider/memnet"
	grpcserver "github.com/and161185/im-relay/internal/server/grpc"
	"github.com/and161185/im-relay/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, wires the session broker over the in-memory
// network and serves the relay API until SIGINT or SIGTERM.
func main() {
	if len(os.Args) > 1 && os.Args[1] == "hash-password" {
		if err := hashPassword(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	// Flags override the config file.
	cfgPath := flag.StringP("config", "c", "", "YAML config file (default $"+config.EnvConfig+")")
	addr := flag.String("listen", "", "listen address")
	certFile := flag.String("tls-cert", "", "TLS certificate (PEM)")
	keyFile := flag.String("tls-key", "", "TLS private key (PEM)")
	insecureFlag := flag.Bool("insecure", false, "serve without TLS (dev only)")
	dev := flag.Bool("dev", false, "enable server reflection (dev only)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *addr != "" {
		cfg.Listen = *addr
	}
	if *certFile != "" {
		cfg.TLS.Cert = *certFile
	}
	if *keyFile != "" {
		cfg.TLS.Key = *keyFile
	}
	if flag.CommandLine.Changed("insecure") {
		cfg.TLS.Insecure = *insecureFlag
	}
	if flag.CommandLine.Changed("dev") {
		cfg.Dev = *dev
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config:\n%v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Listen),
		zap.Int("accounts", len(cfg.Network.Accounts)),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lim, closeLim, err := openLimiter(ctx, cfg.Limiter, logger)
	if err != nil {
		logger.Fatal("limiter", zap.Error(err))
	}
	defer closeLim()

	nw, err := memnet.New(cfg.Network, logger.Named("memnet"))
	if err != nil {
		logger.Fatal("network", zap.Error(err))
	}
	policy, err := broker.ParseCredentialPolicy(cfg.Sessions.CredentialPolicy)
	if err != nil {
		logger.Fatal("credential policy", zap.Error(err))
	}
	reg := broker.NewRegistry(broker.Config{
		Provider: nw,
		Policy:   policy,
		TTL:      cfg.Sessions.TTL.D(),
		Logger:   logger.Named("broker"),
	})
	defer reg.Close()
	go reg.Run(ctx, cfg.Sessions.SweepInterval.D())

	// Services
	authSvc := service.NewAuthService(reg, lim, logger.Named("auth"))
	msgSvc := service.NewMessageService(reg, service.MessageConfig{
		History: &chat.Aggregator{
			PageSize:      cfg.History.PageSize,
			MaxPages:      cfg.History.MaxPages,
			DefaultWindow: cfg.History.DefaultWindow.D(),
			Resolution:    cfg.History.Resolution.D(),
			Logger:        logger.Named("history"),
		},
		Stream: chat.StreamConfig{
			PollInterval: cfg.Stream.PollInterval.D(),
			QueueLimit:   cfg.Stream.QueueLimit,
			Logger:       logger.Named("stream"),
		},
		FriendsWait:   cfg.Sessions.FriendsWait.D(),
		MaxMessageLen: cfg.Sessions.MaxMessageLen,
		Logger:        logger.Named("messages"),
	})

	// gRPC server with interceptors
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(logger),
			grpcserver.LoggingUnary(logger),
		),
		grpc.ChainStreamInterceptor(
			grpcserver.RecoverStream(logger),
			grpcserver.LoggingStream(logger),
		),
	}
	if cfg.TLS.Insecure {
		logger.Warn("serving without TLS")
	} else {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLS.Cert, cfg.TLS.Key)
		if err != nil {
			logger.Fatal("failed to load TLS cert/key", zap.Error(err))
		}
		opts = append(opts, grpc.Creds(creds))
	}
	s := grpc.NewServer(opts...)

	grpcserver.New(authSvc, msgSvc, logger.Named("grpc")).Register(s)

	// Health & reflection (dev)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	if cfg.Dev {
		reflection.Register(s)
	}

	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		logger.Fatal("listen", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Listen), zap.Bool("tls", !cfg.TLS.Insecure))
		errCh <- s.Serve(lis)
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		hs.Shutdown()
		// Streams end when their sessions close.
		reg.Close()
		done := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			s.Stop()
		}
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}

func newLogger(c config.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

// openLimiter builds the configured login limiter and its cleanup.
func openLimiter(ctx context.Context, c config.Limiter, log *zap.Logger) (limiter.Limiter, func(), error) {
	switch c.Backend {
	case "postgres":
		if err := migrate.Up(ctx, c.DSN); err != nil {
			return nil, nil, fmt.Errorf("migrate up: %w", err)
		}
		pool, err := limiter.OpenPool(ctx, c.DSN)
		if err != nil {
			return nil, nil, err
		}
		log.Info("login limiter", zap.String("backend", "postgres"))
		return limiter.NewPG(pool, c.Window.D(), c.MaxFails, c.BlockFor.D()), pool.Close, nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: c.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		log.Info("login limiter", zap.String("backend", "redis"), zap.String("addr", c.RedisAddr))
		return limiter.NewRedis(rdb, "", c.Window.D(), c.MaxFails, c.BlockFor.D()), func() { _ = rdb.Close() }, nil
	case "", "none":
		log.Warn("login limiter disabled")
		return limiter.Nop{}, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown limiter backend %q", c.Backend)
	}
}

// hashPassword prints the PHC hash of a password read from the terminal,
// for use as network.accounts[].password_hash.
func hashPassword() error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("hash-password needs a terminal")
	}
	fmt.Fprint(os.Stderr, "password: ")
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return err
	}
	if len(pw) == 0 {
		return errors.New("empty password")
	}
	h, err := crypto.HashPassword(string(pw))
	if err != nil {
		return err
	}
	fmt.Println(h)
	return nil
}

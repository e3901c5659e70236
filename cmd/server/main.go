package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	gcsstorage "cloud.google.com/go/storage"
	"connectrpc.com/connect"
	"github.com/castlemilk/cuentas/api/cuentas/v1/cuentasv1connect"
	"github.com/castlemilk/cuentas/internal/auth"
	"github.com/castlemilk/cuentas/internal/config"
	"github.com/castlemilk/cuentas/internal/export"
	"github.com/castlemilk/cuentas/internal/logger"
	"github.com/castlemilk/cuentas/internal/notify"
	"github.com/castlemilk/cuentas/internal/search"
	"github.com/castlemilk/cuentas/internal/service"
	"github.com/castlemilk/cuentas/internal/store"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	var storeImpl store.Store
	var firebaseAuth *auth.FirebaseAuth
	var pusher notify.Pusher
	var exportWriter export.ObjectWriter

	if cfg.UseMemoryStore {
		log.Info().Msg("using in-memory store for local development")
		storeImpl = store.NewMemoryStore()

		// Local development always runs with mock authentication.
		log.Info().Msg("using mock authentication for local development")
	} else {
		firestoreClient, err := firestore.NewClient(ctx, cfg.ProjectID)
		if err != nil {
			return fmt.Errorf("create firestore client: %w", err)
		}
		defer firestoreClient.Close()
		storeImpl = store.NewFirestoreStore(firestoreClient, logger.Component(log, "store"))

		app, err := auth.NewFirebaseApp(ctx, cfg.ProjectID)
		if err != nil {
			return fmt.Errorf("initialize firebase: %w", err)
		}

		if cfg.SkipAuth {
			log.Warn().Msg("SKIP_AUTH enabled: mock authentication with Firestore (for seeding/testing only)")
		} else {
			firebaseAuth, err = auth.NewFirebaseAuth(ctx, app)
			if err != nil {
				return fmt.Errorf("initialize firebase auth: %w", err)
			}
		}

		messagingClient, err := app.Messaging(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("firebase messaging unavailable, push notifications disabled")
		} else {
			pusher = notify.NewFCMPusher(messagingClient)
		}

		if cfg.ExportBucket != "" {
			gcsClient, err := gcsstorage.NewClient(ctx)
			if err != nil {
				return fmt.Errorf("create storage client: %w", err)
			}
			defer gcsClient.Close()
			exportWriter = export.NewBucketWriter(gcsClient.Bucket(cfg.ExportBucket))
			log.Info().Str("bucket", cfg.ExportBucket).Msg("movement exports stored in cloud storage")
		}
	}

	financeService := service.NewFinanceService(storeImpl,
		service.WithLogger(logger.Component(log, "service")),
		service.WithClock(time.Now, cfg.Location),
		service.WithReminderDays(cfg.ReminderDays),
		service.WithSchedulerSecret(cfg.SchedulerSecret),
	)
	if pusher != nil {
		financeService.SetPusher(pusher)
	}
	if exportWriter != nil {
		financeService.SetExportWriter(exportWriter)
	}

	if cfg.AlgoliaEnabled() {
		algolia, err := search.NewAlgoliaClient(search.Config{
			AppID:     cfg.AlgoliaAppID,
			APIKey:    cfg.AlgoliaAPIKey,
			IndexName: cfg.AlgoliaIndex,
		}, logger.Component(log, "search"))
		if err != nil {
			log.Warn().Err(err).Msg("algolia unavailable, movement search uses the store")
		} else {
			financeService.SetSearchIndex(algolia)
			log.Info().Str("index", cfg.AlgoliaIndex).Msg("algolia search enabled")
		}
	}

	interceptors := []connect.Interceptor{
		logger.RequestInterceptor(logger.Component(log, "rpc")),
		// Debug impersonation runs before auth so it can set the claims.
		auth.DebugAuthInterceptor(cfg.SkipAuth),
	}
	if firebaseAuth != nil {
		interceptors = append(interceptors, auth.AuthInterceptor(firebaseAuth,
			cuentasv1connect.FinanceServiceSendDueRemindersProcedure))
	} else {
		interceptors = append(interceptors, auth.LocalDevInterceptor())
	}

	path, handler := cuentasv1connect.NewFinanceServiceHandler(
		financeService,
		connect.WithInterceptors(interceptors...),
	)

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Connect-Protocol-Version",
			"Connect-Timeout-Ms",
			"Content-Type",
			"User-Agent",
			"X-User-Agent",
			"X-Scheduler-Secret",
			"X-Debug-Impersonate-User",
		},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h2c.NewHandler(c.Handler(mux), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

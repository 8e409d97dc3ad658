package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"pssports/config"
	"pssports/internal/delivery"
	"pssports/internal/delivery/http"
	"pssports/internal/delivery/http/middleware"
	"pssports/internal/delivery/http/router/handler"
	"pssports/internal/infra/auth"
	logs "pssports/internal/infra/log"
	"pssports/internal/infra/persistence/postgres"
	"pssports/internal/infra/qrcode"
	"pssports/internal/usecase"
	"pssports/internal/usecase/impl"

	"go.uber.org/fx"
)

// sessionCleanupInterval is how often expired sessions are swept.
const sessionCleanupInterval = time.Hour

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
			startSessionCleanup,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewRoleRepository,
			postgres.NewSchoolRepository,
			postgres.NewTrainerRepository,
			postgres.NewPlayerRepository,
			postgres.NewGuardianRepository,
			postgres.NewModalityRepository,
			postgres.NewCategoryRepository,
			postgres.NewClassRepository,
			postgres.NewEnrollmentRepository,
			postgres.NewLeadRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewRoleService,
			impl.NewSchoolService,
			impl.NewTrainerService,
			impl.NewPlayerService,
			impl.NewGuardianService,
			impl.NewModalityService,
			impl.NewCategoryService,
			impl.NewClassService,
			impl.NewEnrollmentService,
			impl.NewLeadService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewRoleHandler,
			handler.NewSchoolHandler,
			handler.NewTrainerHandler,
			handler.NewPlayerHandler,
			handler.NewGuardianHandler,
			handler.NewModalityHandler,
			handler.NewCategoryHandler,
			handler.NewClassHandler,
			handler.NewEnrollmentHandler,
			handler.NewLeadHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

// startSessionCleanup sweeps expired refresh-token sessions once at startup
// and then on every tick.
func startSessionCleanup(ctx context.Context, authUsecase usecase.AuthUsecase, logger *slog.Logger) {
	go func() {
		ticker := time.NewTicker(sessionCleanupInterval)
		defer ticker.Stop()

		for {
			if err := authUsecase.CleanupExpiredSessions(ctx); err != nil {
				logger.Error("Session cleanup failed", slog.Any("error", err))
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"vita/config"
	"vita/internal/delivery"
	"vita/internal/delivery/http"
	"vita/internal/delivery/http/middleware"
	"vita/internal/delivery/http/router/handler"
	"vita/internal/domain/service"
	"vita/internal/infra/auth"
	"vita/internal/infra/clock"
	logs "vita/internal/infra/log"
	"vita/internal/infra/persistence/postgres"
	"vita/internal/usecase"
	"vita/internal/usecase/impl"

	"go.uber.org/fx"
)

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
			postgres.NewProfileRepository,
			postgres.NewWaterRepository,
			postgres.NewSunlightRepository,
			postgres.NewMeditationRepository,
			postgres.NewSleepRepository,
			postgres.NewActivityRepository,
			postgres.NewTaskRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			clock.New,
			newTokenService,
		),
	)
}

// newTokenService creates the JWT service when owner authentication is
// configured. Without an auth section every endpoint is open and no token
// service exists.
func newTokenService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil {
		return nil, nil // Owner auth is optional
	}

	svc, err := auth.NewJWTService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return svc, nil
}

// newAuthUsecase wires the owner-auth usecase only when an auth section is
// present; the router skips the token routes otherwise.
func newAuthUsecase(
	cfg *config.Config,
	tokens service.TokenService,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.AuthUsecase {
	if cfg.Auth == nil {
		return nil
	}

	return impl.NewAuthService(tokens, hasher, cfg.Auth.PasswordHash, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewWaterService,
			impl.NewSunlightService,
			impl.NewMeditationService,
			impl.NewSleepService,
			impl.NewActivityService,
			impl.NewTaskService,
			newAuthUsecase,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProfileHandler,
			handler.NewWaterHandler,
			handler.NewSunlightHandler,
			handler.NewMeditationHandler,
			handler.NewSleepHandler,
			handler.NewActivityHandler,
			handler.NewTaskHandler,
			handler.NewAuthHandler,
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

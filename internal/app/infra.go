package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/iwantdrugsxd/mind-ease/config"
	"github.com/iwantdrugsxd/mind-ease/internal/intent"
	"github.com/iwantdrugsxd/mind-ease/internal/repo"
	"github.com/iwantdrugsxd/mind-ease/pkg/database"
	"github.com/iwantdrugsxd/mind-ease/pkg/email"
	"github.com/iwantdrugsxd/mind-ease/pkg/observability"
	redispkg "github.com/iwantdrugsxd/mind-ease/pkg/redis"
	"github.com/iwantdrugsxd/mind-ease/pkg/sms"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideEntClient),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideEmailClient),
	fx.Provide(ProvideSMSClient),
	fx.Provide(ProvideOTel),
	fx.Provide(ProvideNatsClient),
	fx.Provide(ProvideIntentModel),
)

func ProvideEntClient(lc fx.Lifecycle, cfg *config.Config) (*repo.Client, error) {
	client, err := database.NewEntClient(cfg.Database)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing main database connection")
			return client.Close()
		},
	})
	return client, nil
}

func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	rdb, err := redispkg.NewRedisFromCentral(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.ShutdownSave(ctx).Err()
		},
	})
	return rdb, nil
}

func ProvideEmailClient(cfg *config.Config) (*email.Client, error) {
	return email.NewFromCentral(cfg.Email)
}

func ProvideSMSClient(cfg *config.Config) (*sms.Client, error) {
	return sms.NewFromConfig(cfg.SMS)
}

func ProvideNatsClient(lc fx.Lifecycle, cfg *config.Config) (*nats.Conn, error) {
	nc, err := nats.Connect(cfg.Nats.URL)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("draining NATS connection")
			return nc.Drain()
		},
	})
	return nc, nil
}

// ProvideIntentModel loads the trained intent artifact, falling back to
// training from the bundled dataset when no artifact exists. A nil model
// is a valid result: chat degrades to emotion and keyword signals only.
func ProvideIntentModel(cfg *config.Config) *intent.Model {
	if cfg.Intent.ModelPath != "" {
		model, err := intent.Load(cfg.Intent.ModelPath)
		if err == nil {
			slog.Info("intent model loaded", "path", cfg.Intent.ModelPath)
			return model
		}
		if !errors.Is(err, intent.ErrModelUnavailable) {
			slog.Error("intent model load failed", "path", cfg.Intent.ModelPath, "err", err)
			return nil
		}
		slog.Warn("intent model artifact missing, training from bundled dataset",
			"path", cfg.Intent.ModelPath)
	}

	ds, err := loadIntentDataset(cfg)
	if err != nil {
		slog.Error("intent dataset load failed", "err", err)
		return nil
	}

	model, err := intent.Train(ds, intent.TrainOptions{})
	if err != nil {
		slog.Error("intent model training failed", "err", err)
		return nil
	}
	return model
}

func loadIntentDataset(cfg *config.Config) (*intent.Dataset, error) {
	if cfg.Intent.DatasetPath != "" {
		return intent.LoadDataset(cfg.Intent.DatasetPath)
	}
	return intent.DefaultDataset()
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.Config{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		Environment:    cfg.Server.Environment,
		OTLPEndpoint:   cfg.Observability.Tracing.OTLPEndpoint,
		OTLPInsecure:   cfg.Observability.Tracing.OTLPInsecure,
		SamplingRate:   cfg.Observability.Tracing.SamplingRate,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}

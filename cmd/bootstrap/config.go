package bootstrap

import (
	"roombook/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.AuthConfig { return cfg.Auth },
		func(cfg config.Config) config.SMTPConfig { return cfg.SMTP },
		func(cfg config.Config) config.OTPConfig { return cfg.OTP },
		func(cfg config.Config) config.StorageConfig { return cfg.Storage },
	),
)

package bootstrap

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"repairbook/internal/pkg/config"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		LoadConfig,
	),
)

// LoadConfig reads .env when present (local development), then the
// process environment.
func LoadConfig() (config.Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "reason", err.Error())
	}
	return config.LoadConfig()
}

package config_fx

import (
	"go.uber.org/fx"
	"planmyday/internal/config"
)

var Module = fx.Provide(config.Load)

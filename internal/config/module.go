package config

import "go.uber.org/fx"

// Module exposes the configuration loaded from flags and environment.
var Module = fx.Module("config", fx.Provide(Load))

package router

import "go.uber.org/fx"

// Module registers HTTP router construction for fx runtime.
var Module = fx.Module("router", fx.Provide(Setup))

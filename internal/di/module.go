package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/usersapi/internal/app"
	"github.com/polkiloo/usersapi/internal/config"
	"github.com/polkiloo/usersapi/internal/logger"
	"github.com/polkiloo/usersapi/internal/server/http/router"
	"github.com/polkiloo/usersapi/internal/storage"
	"github.com/polkiloo/usersapi/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		storage.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

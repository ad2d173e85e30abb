//go:build wireinject
// +build wireinject

package main

import (
	"Circle/config"
	"Circle/dao"
	"Circle/dao/cache"
	"Circle/handler"
	"Circle/pkg/client"
	"Circle/pkg/database"
	"Circle/pkg/server"
	"Circle/service"
	"Circle/socket"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideModerationConfig,
		config.ProvideUploadConfig,
		socket.NewHub,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Follow), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.Comment), "*"),
		wire.Struct(new(handler.GroupHandler), "*"),
		wire.Struct(new(handler.GroupMemberHandler), "*"),
		wire.Struct(new(handler.Message), "*"),
		wire.Struct(new(handler.Upload), "*"),
		wire.Struct(new(handler.WebSocket), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}

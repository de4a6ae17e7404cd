package handler

import (
	"github.com/jazzyjasmine/multipage-group-chat-application/internal/app/chat"
	"github.com/jazzyjasmine/multipage-group-chat-application/internal/configs"
)

type AppDeps struct {
	Registry *chat.Registry
	Store    *chat.Store
	Config   *configs.AppConfig
}

package server

import (
	"Circle/handler"
)

type Handlers struct {
	Auth        *handler.Auth
	User        *handler.User
	Follow      *handler.Follow
	Post        *handler.Post
	Comment     *handler.Comment
	Group       *handler.GroupHandler
	GroupMember *handler.GroupMemberHandler
	Message     *handler.Message
	Upload      *handler.Upload
	WebSocket   *handler.WebSocket
}

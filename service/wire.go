package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewBcryptHasher,
	wire.Bind(new(PasswordHasher), new(*BcryptHasher)),

	NewModerationService,
	wire.Bind(new(IModerationService), new(*ModerationService)),

	wire.Struct(new(PermService), "*"),
	wire.Bind(new(IPermService), new(*PermService)),

	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(FollowService), "*"),
	wire.Bind(new(IFollowService), new(*FollowService)),

	wire.Struct(new(PostService), "*"),
	wire.Bind(new(IPostService), new(*PostService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(CommentService), "*"),
	wire.Bind(new(ICommentService), new(*CommentService)),

	wire.Struct(new(GroupService), "*"),
	wire.Bind(new(IGroupService), new(*GroupService)),

	wire.Struct(new(GroupMemberService), "*"),
	wire.Bind(new(IGroupMemberService), new(*GroupMemberService)),

	wire.Struct(new(MessageService), "*"),
	wire.Bind(new(IMessageService), new(*MessageService)),

	wire.Struct(new(UploadService), "*"),
	wire.Bind(new(IUploadService), new(*UploadService)),
)

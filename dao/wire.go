//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewUserStatsDAO,
	NewUserFollowDAO,
	NewPostDAO,
	NewPostStatsDAO,
	NewPostLikeDAO,
	NewCommentDAO,
	NewGroupDAO,
	NewGroupMemberDAO,
	NewGroupMessageDAO,
	NewDirectMessageDAO,
	NewImageDAO,
)

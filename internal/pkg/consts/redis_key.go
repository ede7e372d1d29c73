package consts

const (
	TokenBlacklistKey     = "token:blacklist:"
	UserFollowerKey       = "user:follower:"
	UserFollowingKey      = "user:following:"
	UserFollowerCountKey  = "user:follower:count:"
	UserFollowingCountKey = "user:following:count:"
)

const (
	UserMetricDailyLock = "user:metric:daily:lock:"
)

package api

import "Habitude/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler        *handler.UserHandler
	CategoryHandler    *handler.CategoryHandler
	HabitHandler       *handler.HabitHandler
	UserFollowHandler  *handler.UserFollowHandler
	ActivityHandler    *handler.ActivityHandler
	UserMetricsHandler *handler.UserMetricsHandler
}

package api

import (
	"Habitude/internal/api/middleware"
	"Habitude/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
				authGroup.PUT("/info", group.UserHandler.UpdateUserInfo)
				authGroup.GET("/search", group.UserHandler.SearchUser)
			}
		}

		apiGroup.GET("/categories", group.CategoryHandler.GetCategories)

		habitGroup := apiGroup.Group("/habits")
		{
			habitGroup.Use(middleware.AuthMiddleware())
			{
				habitGroup.GET("", group.HabitHandler.GetHabits)
				habitGroup.POST("", group.HabitHandler.CreateHabit)
				habitGroup.GET("/:habit_id", group.HabitHandler.GetHabitDetail)
				habitGroup.PUT("/:habit_id", group.HabitHandler.UpdateHabit)
				habitGroup.DELETE("/:habit_id", group.HabitHandler.DeleteHabit)
				habitGroup.POST("/:habit_id/checkin", group.HabitHandler.CheckIn)
				habitGroup.DELETE("/:habit_id/checkin", group.HabitHandler.RemoveCheckIn)
				habitGroup.GET("/:habit_id/stats", group.HabitHandler.GetHabitStats)
				habitGroup.GET("/:habit_id/streak", group.HabitHandler.GetCurrentStreak)
			}
		}

		socialGroup := apiGroup.Group("/social")
		{
			socialGroup.Use(middleware.AuthMiddleware())
			{
				socialGroup.GET("/followers", group.UserFollowHandler.GetUserFollowers)
				socialGroup.GET("/followers/count", group.UserFollowHandler.GetUserFollowersCount)
				socialGroup.GET("/following", group.UserFollowHandler.GetUserFollowings)
				socialGroup.GET("/following/count", group.UserFollowHandler.GetUserFollowingCount)
				socialGroup.GET("/isfollow/:target_id", group.UserFollowHandler.GetSomeoneIsFollowing)
				socialGroup.POST("/follow/:target_id", group.UserFollowHandler.Follow)
				socialGroup.DELETE("/follow/:target_id", group.UserFollowHandler.Unfollow)
				socialGroup.GET("/feed", group.ActivityHandler.GetActivityFeed)
				socialGroup.GET("/leaderboard", group.ActivityHandler.GetLeaderboard)
			}
		}

		metricsGroup := apiGroup.Group("/metrics")
		{
			metricsGroup.Use(middleware.AuthMiddleware())
			{
				metricsGroup.GET("/user/7d", group.UserMetricsHandler.GetMetrics7Days)
				metricsGroup.GET("/user/30d", group.UserMetricsHandler.GetMetrics30Days)
			}
		}
	}

	return r
}

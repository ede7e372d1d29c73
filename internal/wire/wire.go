package wire

import (
	"Habitude/internal/api"
	"Habitude/internal/api/config"
	"Habitude/internal/api/handler"
	"Habitude/internal/job"
	"Habitude/internal/pkg/cron"
	"Habitude/internal/repository"
	"Habitude/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router          *gin.Engine
	DB              *gorm.DB
	CronMgr         *cron.Manager
	CategoryService service.CategoryService
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	habitRepo := repository.NewHabitRepo(db)
	completionRepo := repository.NewHabitCompletionRepo(db)
	userFollowRepo := repository.NewUserFollowRepo(db)
	userMetricRepo := repository.NewUserMetricRepo(db)

	userService := service.NewUserService(userRepo, userFollowRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	habitService := service.NewHabitService(habitRepo, completionRepo, categoryRepo)
	userFollowService := service.NewUserFollowService(userFollowRepo, userRepo)
	activityService := service.NewActivityService(userFollowRepo, completionRepo, habitRepo, userRepo)
	userMetricsService := service.NewUserMetricsService(userMetricRepo, completionRepo, habitRepo)

	handlers := &api.HandlersGroup{
		UserHandler:        handler.NewUserHandler(userService),
		CategoryHandler:    handler.NewCategoryHandler(categoryService),
		HabitHandler:       handler.NewHabitHandler(habitService),
		UserFollowHandler:  handler.NewUserFollowHandler(userFollowService),
		ActivityHandler:    handler.NewActivityHandler(activityService),
		UserMetricsHandler: handler.NewUserMetricsHandler(userMetricsService),
	}

	router := api.SetupRouter(handlers)

	userMetricJob := job.NewUserMetricJob(userMetricsService)
	cronMgr := cron.NewCronManager(userMetricJob)

	return &ApplicationContainer{
		Router:          router,
		DB:              db,
		CronMgr:         cronMgr,
		CategoryService: categoryService,
	}, nil
}

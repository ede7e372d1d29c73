package handler

import (
	"Habitude/internal/pkg/consts"
	"Habitude/internal/pkg/response"
	"Habitude/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activitySvc service.ActivityService
}

func NewActivityHandler(activitySvc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activitySvc: activitySvc}
}

func (s *ActivityHandler) GetLeaderboard(c *gin.Context) {
	userId := c.GetUint64("user_id")
	period := c.DefaultQuery("period", consts.PeriodWeek)

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	entries, err := s.activitySvc.GetLeaderboard(c.Request.Context(), userId, period, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, entries)
}

func (s *ActivityHandler) GetActivityFeed(c *gin.Context) {
	userId := c.GetUint64("user_id")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	items, err := s.activitySvc.GetActivityFeed(c.Request.Context(), userId, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

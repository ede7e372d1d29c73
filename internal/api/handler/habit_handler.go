package handler

import (
	"Habitude/internal/api/dto"
	"Habitude/internal/pkg/response"
	"Habitude/internal/pkg/util"
	"Habitude/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type HabitHandler struct {
	habitSvc service.HabitService
}

func NewHabitHandler(habitSvc service.HabitService) *HabitHandler {
	return &HabitHandler{habitSvc: habitSvc}
}

func (s *HabitHandler) GetHabits(c *gin.Context) {
	userId := c.GetUint64("user_id")

	// 默认返回启用的习惯，?active=false 返回已停用的
	active := c.DefaultQuery("active", "true") == "true"

	habits, err := s.habitSvc.GetHabits(c.Request.Context(), userId, active)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, habits)
}

func (s *HabitHandler) GetHabitDetail(c *gin.Context) {
	userId := c.GetUint64("user_id")
	habitId, err := s.parseHabitId(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	detail, err := s.habitSvc.GetHabitDetail(c.Request.Context(), userId, habitId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, detail)
}

func (s *HabitHandler) CreateHabit(c *gin.Context) {
	userId := c.GetUint64("user_id")

	var habitDTO dto.HabitBaseDTO
	err := c.ShouldBind(&habitDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&habitDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	habit, err := s.habitSvc.CreateHabit(c.Request.Context(), userId, &habitDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, habit)
}

func (s *HabitHandler) UpdateHabit(c *gin.Context) {
	userId := c.GetUint64("user_id")
	habitId, err := s.parseHabitId(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var habitDTO dto.HabitBaseDTO
	if err = c.ShouldBind(&habitDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&habitDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	if err = s.habitSvc.UpdateHabit(c.Request.Context(), userId, habitId, &habitDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *HabitHandler) DeleteHabit(c *gin.Context) {
	userId := c.GetUint64("user_id")
	habitId, err := s.parseHabitId(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.habitSvc.DeleteHabit(c.Request.Context(), userId, habitId); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *HabitHandler) CheckIn(c *gin.Context) {
	userId := c.GetUint64("user_id")
	habitId, err := s.parseHabitId(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	// body 可为空，缺省打今天的卡
	var checkInDTO dto.CheckInDTO
	_ = c.ShouldBind(&checkInDTO)
	if err = util.ValidateDTO(&checkInDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	completion, err := s.habitSvc.CheckIn(c.Request.Context(), userId, habitId, &checkInDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, completion)
}

func (s *HabitHandler) RemoveCheckIn(c *gin.Context) {
	userId := c.GetUint64("user_id")
	habitId, err := s.parseHabitId(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var date *string
	if v := c.Query("date"); v != "" {
		date = &v
	}

	if err = s.habitSvc.RemoveCheckIn(c.Request.Context(), userId, habitId, date); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *HabitHandler) GetHabitStats(c *gin.Context) {
	userId := c.GetUint64("user_id")
	habitId, err := s.parseHabitId(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	stats, err := s.habitSvc.GetHabitStats(c.Request.Context(), userId, habitId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

func (s *HabitHandler) GetCurrentStreak(c *gin.Context) {
	userId := c.GetUint64("user_id")
	habitId, err := s.parseHabitId(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	streak, err := s.habitSvc.GetCurrentStreak(c.Request.Context(), userId, habitId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int{"currentStreak": streak})
}

func (s *HabitHandler) parseHabitId(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("habit_id"), 10, 64)
}

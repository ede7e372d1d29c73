package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid            = errors.New("参数错误")
	ErrUserNotFound            = errors.New("用户不存在")
	ErrUserUsernameExist       = errors.New("用户名已存在")
	ErrUserEmailExist          = errors.New("邮箱已注册")
	ErrPasswordIncorrect       = errors.New("密码错误")
	ErrMissingLoginCredentials = errors.New("缺少登录凭据")
	ErrHabitNotFound           = errors.New("习惯不存在")
	ErrHabitNameExist          = errors.New("已存在同名的启用习惯")
	ErrCategoryNotFound        = errors.New("分类不存在")
	ErrCompletionExist         = errors.New("该日期已打卡")
	ErrCompletionNotFound      = errors.New("该日期没有打卡记录")
	ErrUserFollowExist         = errors.New("用户已关注")
	ErrUserFollowSelf          = errors.New("用户不能关注自己")
	ErrUserFollowNotFound      = errors.New("关注关系不存在")
	ErrPeriodInvalid           = errors.New("无效的时间窗口")
	UnExpectedError            = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrUserNotFound:            NotFound,
	ErrUserUsernameExist:       Conflict,
	ErrUserEmailExist:          Conflict,
	ErrPasswordIncorrect:       Unauthorized,
	ErrMissingLoginCredentials: Unauthorized,
	ErrHabitNotFound:           NotFound,
	ErrHabitNameExist:          Conflict,
	ErrCategoryNotFound:        NotFound,
	ErrCompletionExist:         Conflict,
	ErrCompletionNotFound:      NotFound,
	ErrUserFollowExist:         Conflict,
	ErrUserFollowSelf:          BadRequest,
	ErrUserFollowNotFound:      NotFound,
	ErrPeriodInvalid:           BadRequest,
	UnExpectedError:            InternalServerError,
}

package service

import (
	"Habitude/internal/pkg/consts"
	"time"
)

// 打卡日期统一使用 UTC 零点作为日历天的基准，写入和各类读聚合都走同一套归一化

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CurrentStreak 计算截止 today 的连续打卡天数。
// dates 要求按完成日期倒序且已归一到零点；today 作为参数注入，便于测试。
// 从 today 开始逐日向前比对，遇到第一个不连续的日期立即停止；
// today 本身没有打卡则连击为 0。
func CurrentStreak(dates []time.Time, today time.Time) int {
	today = midnightUTC(today)

	streak := 0
	for i, d := range dates {
		expected := today.AddDate(0, 0, -i)
		if !midnightUTC(d).Equal(expected) {
			break
		}
		streak++
	}
	return streak
}

// periodStart 把排行榜窗口 token 翻译为完成日期下界（含），all 返回 nil
func periodStart(period string, now time.Time) (*time.Time, error) {
	switch period {
	case consts.PeriodWeek:
		since := midnightUTC(now).AddDate(0, 0, -7)
		return &since, nil
	case consts.PeriodMonth:
		since := midnightUTC(now).AddDate(0, 0, -30)
		return &since, nil
	case consts.PeriodAll:
		return nil, nil
	default:
		return nil, ErrPeriodInvalid
	}
}

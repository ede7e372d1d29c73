package service_test

import (
	"Habitude/internal/service"
	"testing"
	"time"
)

func TestCurrentStreak(t *testing.T) {
	today := date(2024, 1, 10)

	tests := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{
			name:  "无打卡记录",
			dates: []time.Time{},
			want:  0,
		},
		{
			name: "中间断档在第三天后停止",
			dates: []time.Time{
				date(2024, 1, 10),
				date(2024, 1, 9),
				date(2024, 1, 8),
				date(2024, 1, 6),
			},
			want: 3,
		},
		{
			name: "今天没打卡连击归零",
			dates: []time.Time{
				date(2024, 1, 9),
				date(2024, 1, 8),
			},
			want: 0,
		},
		{
			name: "仅今天打卡",
			dates: []time.Time{
				date(2024, 1, 10),
			},
			want: 1,
		},
		{
			name: "连续到列表末尾",
			dates: []time.Time{
				date(2024, 1, 10),
				date(2024, 1, 9),
				date(2024, 1, 8),
				date(2024, 1, 7),
			},
			want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.CurrentStreak(tt.dates, today)
			if got != tt.want {
				t.Errorf("CurrentStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCurrentStreakNormalizesTime(t *testing.T) {
	// 打卡日期和 today 带时分秒也应按日历天比对
	dates := []time.Time{
		time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC),
		time.Date(2024, 3, 4, 1, 30, 0, 0, time.UTC),
	}
	today := time.Date(2024, 3, 5, 8, 15, 0, 0, time.UTC)

	if got := service.CurrentStreak(dates, today); got != 2 {
		t.Errorf("CurrentStreak() = %d, want 2", got)
	}
}

package consts

const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodAll   = "all"
)

const (
	DefaultAvatarURL = "default_avatar.png"
)

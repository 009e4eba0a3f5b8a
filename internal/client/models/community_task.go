package models

// CommunityTask is a recurring duty in a community.
type CommunityTask struct {
	CommunityName string `json:"communityName"`
	Title         string `json:"title"`
	WeeklyTasks   string `json:"weeklyTasks"`
	Notes         string `json:"notes"`
	ReminderDate  string `json:"reminderDate"`
}

func (c CommunityTask) Kind() Kind { return KindCommunityTask }

func (c CommunityTask) Validate() error {
	return requireFields(
		field{"community name", c.CommunityName},
		field{"title", c.Title},
		field{"weekly tasks", c.WeeklyTasks},
		field{"reminder date", c.ReminderDate},
	)
}

package dto

type UserItem struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Initials string `json:"initials"`
}

type AppearanceItem struct {
	Theme      string            `json:"theme"`
	Dark       bool              `json:"dark"`
	Attributes map[string]string `json:"document_attributes"`
}

type DayItem struct {
	Date  string     `json:"date"`
	Tasks []TaskItem `json:"tasks"`
}

type DashboardResponse struct {
	User       UserItem       `json:"user"`
	Appearance AppearanceItem `json:"appearance"`
	Month      string         `json:"month"`
	Filter     string         `json:"filter"`
	Saving     bool           `json:"saving"`
	Days       []DayItem      `json:"days"`
}

type CalendarDay struct {
	Date      string `json:"date"`
	TaskCount int    `json:"task_count"`
	Selected  bool   `json:"selected"`
	Today     bool   `json:"today"`
}

type CalendarResponse struct {
	User          UserItem       `json:"user"`
	Appearance    AppearanceItem `json:"appearance"`
	Month         string         `json:"month"`
	SelectedDate  string         `json:"selected_date"`
	Filter        string         `json:"filter"`
	Saving        bool           `json:"saving"`
	Days          []CalendarDay  `json:"days"`
	SelectedTasks []TaskItem     `json:"selected_tasks"`
}

type SettingsResponse struct {
	User        UserItem       `json:"user"`
	Appearance  AppearanceItem `json:"appearance"`
	ThemeColors []string       `json:"theme_colors"`
}

type ThemeRequest struct {
	Theme string `json:"theme" form:"theme" binding:"required"`
}

type DarkModeRequest struct {
	Dark *bool `json:"dark" form:"dark" binding:"required"`
}

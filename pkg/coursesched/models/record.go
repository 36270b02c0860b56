package models

// Schedule types carried by CourseRecord.ScheduleType.
const (
	ScheduleDynamic = "dynamic"
	ScheduleFixed   = "fixed"
)

// CourseRecord is one weekly course session on a single weekday.
type CourseRecord struct {
	// Name is "<coach> - <level> - <pattern> - <time>".
	Name string `json:"name"`
	// Instructor is the instructor-of-record label.
	Instructor string `json:"instructor"`
	// ProfessorName is the coach actually teaching the course.
	ProfessorName string `json:"professorName"`
	// Level is the proficiency tier (BBG, ABG, IG, ...).
	Level string `json:"level"`
	// Schedule is the weekday pair code (MW, TT, FS, SS).
	Schedule string `json:"schedule"`
	// DayOfWeek is the English weekday name.
	DayOfWeek string `json:"dayOfWeek"`
	// Time is the literal time string from the sheet.
	Time string `json:"time"`
	// ZoomLink may be empty.
	ZoomLink string `json:"zoomLink"`
	// TelegramGroup may be empty.
	TelegramGroup string `json:"telegramGroup"`
	// ScheduleType is "dynamic" or "fixed".
	ScheduleType string `json:"schedule_type"`
	// Description is a human-readable summary.
	Description string `json:"description"`
}

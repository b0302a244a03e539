package domain

import "strings"

// Day is a teaching day of the week.
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
)

// Days lists the schedule days in week order.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// ParseDay accepts a day name in any letter case.
func ParseDay(s string) (Day, bool) {
	d := Day(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Days {
		if d == known {
			return d, true
		}
	}
	return "", false
}

// Title returns the capitalised day name.
func (d Day) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// Colors is the palette a class entry can be tagged with; the first is the default.
var Colors = []string{"#3b82f6", "#ef4444", "#10b981", "#f59e0b", "#8b5cf6", "#ec4899"}

// ScheduleItem is one recurring class slot in the weekly timetable.
type ScheduleItem struct {
	ID        string `json:"id"`
	Subject   string `json:"subject"`
	Teacher   string `json:"teacher"`
	Day       Day    `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Classroom string `json:"classroom"`
	Color     string `json:"color"`
}

// ScheduleDraft carries the user-editable fields of a schedule item.
type ScheduleDraft struct {
	Subject   string
	Teacher   string
	Day       Day
	StartTime string
	EndTime   string
	Classroom string
	Color     string
}

// NewScheduleItem builds an item from a draft under the given id.
// An empty colour takes the first palette entry.
func NewScheduleItem(id string, draft ScheduleDraft) ScheduleItem {
	color := draft.Color
	if color == "" {
		color = Colors[0]
	}
	return ScheduleItem{
		ID:        id,
		Subject:   draft.Subject,
		Teacher:   draft.Teacher,
		Day:       draft.Day,
		StartTime: draft.StartTime,
		EndTime:   draft.EndTime,
		Classroom: draft.Classroom,
		Color:     color,
	}
}

// Draft returns the editable fields of the item.
func (s ScheduleItem) Draft() ScheduleDraft {
	return ScheduleDraft{
		Subject:   s.Subject,
		Teacher:   s.Teacher,
		Day:       s.Day,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Classroom: s.Classroom,
		Color:     s.Color,
	}
}

package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// WeekStart is the first column of the month calendar.
type WeekStart string

const (
	WeekStartsMonday WeekStart = "monday"
	WeekStartsSunday WeekStart = "sunday"
)

// AppSettings holds the user's display preferences.
type AppSettings struct {
	Notifications   bool      `json:"notifications"`
	AutoSave        bool      `json:"autoSave"`
	CompactView     bool      `json:"compactView"`
	ShowCompleted   bool      `json:"showCompleted"`
	DefaultPriority Priority  `json:"defaultPriority"`
	WeekStartsOn    WeekStart `json:"weekStartsOn"`
}

// DefaultSettings returns the settings a fresh install starts with.
func DefaultSettings() AppSettings {
	return AppSettings{
		Notifications:   true,
		AutoSave:        true,
		CompactView:     false,
		ShowCompleted:   true,
		DefaultPriority: PriorityMedium,
		WeekStartsOn:    WeekStartsMonday,
	}
}

// SettingKeys lists the names accepted by With, in display order.
var SettingKeys = []string{"notifications", "autoSave", "compactView", "showCompleted", "defaultPriority", "weekStartsOn"}

// With returns a copy with the named setting changed. Keys match the JSON
// field names, case-insensitively.
func (s AppSettings) With(key, value string) (AppSettings, error) {
	var err error
	value = strings.TrimSpace(value)
	switch strings.ToLower(key) {
	case "notifications":
		err = setBool(&s.Notifications, key, value)
	case "autosave":
		err = setBool(&s.AutoSave, key, value)
	case "compactview":
		err = setBool(&s.CompactView, key, value)
	case "showcompleted":
		err = setBool(&s.ShowCompleted, key, value)
	case "defaultpriority":
		p, ok := ParsePriority(value)
		if !ok {
			return s, fmt.Errorf("%s must be one of low, medium, high", key)
		}
		s.DefaultPriority = p
	case "weekstartson":
		ws := WeekStart(strings.ToLower(value))
		if ws != WeekStartsMonday && ws != WeekStartsSunday {
			return s, fmt.Errorf("%s must be monday or sunday", key)
		}
		s.WeekStartsOn = ws
	default:
		return s, fmt.Errorf("unknown setting %q", key)
	}
	return s, err
}

// Value returns the named setting formatted for display.
func (s AppSettings) Value(key string) (string, bool) {
	switch strings.ToLower(key) {
	case "notifications":
		return strconv.FormatBool(s.Notifications), true
	case "autosave":
		return strconv.FormatBool(s.AutoSave), true
	case "compactview":
		return strconv.FormatBool(s.CompactView), true
	case "showcompleted":
		return strconv.FormatBool(s.ShowCompleted), true
	case "defaultpriority":
		return string(s.DefaultPriority), true
	case "weekstartson":
		return string(s.WeekStartsOn), true
	}
	return "", false
}

func setBool(dst *bool, key, value string) error {
	switch strings.ToLower(value) {
	case "true", "on", "yes", "1":
		*dst = true
	case "false", "off", "no", "0":
		*dst = false
	default:
		return fmt.Errorf("%s must be true or false", key)
	}
	return nil
}

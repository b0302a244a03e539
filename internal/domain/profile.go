package domain

import "strings"

// UserProfile describes the student using the planner.
type UserProfile struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Avatar      string   `json:"avatar"`
	Bio         string   `json:"bio"`
	Institution string   `json:"institution"`
	Career      string   `json:"career"`
	Semester    string   `json:"semester"`
	Goals       []string `json:"goals"`
}

// DefaultProfile returns the empty profile with no goals.
func DefaultProfile() UserProfile {
	return UserProfile{Goals: []string{}}
}

// Initials returns up to two upper-cased initials taken from the words of the name.
func (p UserProfile) Initials() string {
	var initials []rune
	for _, word := range strings.Split(p.Name, " ") {
		if word == "" {
			continue
		}
		initials = append(initials, []rune(strings.ToUpper(word))[0])
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}

// WithGoal returns a copy with goal appended; blank goals are ignored.
func (p UserProfile) WithGoal(goal string) (UserProfile, bool) {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return p, false
	}
	goals := make([]string, 0, len(p.Goals)+1)
	goals = append(goals, p.Goals...)
	p.Goals = append(goals, goal)
	return p, true
}

// WithoutGoal returns a copy with the goal at index removed.
func (p UserProfile) WithoutGoal(index int) (UserProfile, bool) {
	if index < 0 || index >= len(p.Goals) {
		return p, false
	}
	goals := make([]string, 0, len(p.Goals)-1)
	goals = append(goals, p.Goals[:index]...)
	p.Goals = append(goals, p.Goals[index+1:]...)
	return p, true
}

package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ChatSchedule is the weekly window in which the chat widget is enabled.
// ActiveDays uses 0 for Sunday; 7 is accepted and read as Sunday.
type ChatSchedule struct {
	EnableTime  string `json:"enableTime" yaml:"enableTime"`
	DisableTime string `json:"disableTime" yaml:"disableTime"`
	ActiveDays  []int  `json:"activeDays" yaml:"activeDays"`
}

// DefaultChatSchedule is used when the config record carries no schedule
func DefaultChatSchedule() ChatSchedule {
	return ChatSchedule{
		EnableTime:  "08:00",
		DisableTime: "20:00",
		ActiveDays:  []int{1, 2, 3, 4, 5},
	}
}

// ScheduleDecision is the outcome of evaluating a schedule at an instant
type ScheduleDecision struct {
	Enabled bool
	Reason  string
}

// Validate checks the schedule is complete and well formed
func (s ChatSchedule) Validate() error {
	if _, err := parseClock(s.EnableTime); err != nil {
		return fmt.Errorf("%w: enableTime: %v", ErrInvalidInput, err)
	}
	if _, err := parseClock(s.DisableTime); err != nil {
		return fmt.Errorf("%w: disableTime: %v", ErrInvalidInput, err)
	}
	if len(s.ActiveDays) == 0 {
		return fmt.Errorf("%w: activeDays must not be empty", ErrInvalidInput)
	}
	for _, d := range s.ActiveDays {
		if d < 0 || d > 7 {
			return fmt.Errorf("%w: activeDays entry %d out of range 0-7", ErrInvalidInput, d)
		}
	}
	return nil
}

// Evaluate decides whether the widget should be on at now. now must already be
// expressed in the reference timezone.
func (s ChatSchedule) Evaluate(now time.Time) ScheduleDecision {
	if s.EnableTime == "" || s.DisableTime == "" || len(s.ActiveDays) == 0 {
		return ScheduleDecision{Enabled: false, Reason: "incomplete chatSchedule"}
	}
	enable, err := parseClock(s.EnableTime)
	if err != nil {
		return ScheduleDecision{Enabled: false, Reason: fmt.Sprintf("invalid enableTime %q", s.EnableTime)}
	}
	disable, err := parseClock(s.DisableTime)
	if err != nil {
		return ScheduleDecision{Enabled: false, Reason: fmt.Sprintf("invalid disableTime %q", s.DisableTime)}
	}

	weekday := NormalizeWeekday(int(now.Weekday()))
	minute := now.Hour()*60 + now.Minute()
	stamp := fmt.Sprintf("%s %02d:%02d", now.Weekday().String()[:3], now.Hour(), now.Minute())
	window := s.EnableTime + "-" + s.DisableTime

	if !s.activeOn(weekday) {
		return ScheduleDecision{Enabled: false, Reason: fmt.Sprintf("%s is not an active day", stamp)}
	}
	if !inWindow(minute, enable, disable) {
		return ScheduleDecision{Enabled: false, Reason: fmt.Sprintf("%s outside %s", stamp, window)}
	}
	return ScheduleDecision{Enabled: true, Reason: fmt.Sprintf("%s within %s", stamp, window)}
}

func (s ChatSchedule) activeOn(weekday int) bool {
	for _, d := range s.ActiveDays {
		if NormalizeWeekday(d) == weekday {
			return true
		}
	}
	return false
}

// NormalizeWeekday folds the 1-7 (Monday-Sunday) numbering onto 0-6 (Sunday-Saturday)
func NormalizeWeekday(d int) int {
	if d == 7 {
		return 0
	}
	return d
}

// inWindow treats [enable, disable) as half open. enable > disable wraps past midnight.
func inWindow(minute, enable, disable int) bool {
	if enable <= disable {
		return minute >= enable && minute < disable
	}
	return minute >= enable || minute < disable
}

// parseClock converts "HH:MM" to minutes after midnight
func parseClock(v string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(v), ":")
	if !ok {
		return 0, fmt.Errorf("expected HH:MM, got %q", v)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("bad hour in %q", v)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 || len(mm) != 2 {
		return 0, fmt.Errorf("bad minute in %q", v)
	}
	return h*60 + m, nil
}

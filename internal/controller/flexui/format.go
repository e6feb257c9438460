// Package flexui builds the LINE flex cards the bot replies with. The
// callback data embedded in buttons is the postback protocol the
// controller routes on.
package flexui

import (
	"fmt"
	"time"

	"github.com/yuchiehk/coachbot/internal/model"
)

// Postback data prefixes.
const (
	DataDate          = "DATE|"
	DataSlot          = "SLOT|"
	DataConfirm       = "CONFIRM|"
	DataCancelTarget  = "CANCEL_TARGET|"
	DataCancelConfirm = "CANCEL_CONFIRM|"
	DataBackToDates   = "BACK|DATE"
	DataCoachDay      = "COACH_DAY|"
)

var weekdayNames = [7]string{"日", "一", "二", "三", "四", "五", "六"}

// DisplayDate renders "2024-06-03" as "6/3（週一）". Unparseable input
// is shown as-is rather than dropped.
func DisplayDate(date string) string {
	d, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d/%d（週%s）", int(d.Month()), d.Day(), weekdayNames[d.Weekday()])
}

// WeekdayName returns the single-character weekday label for a date.
func WeekdayName(d time.Time) string {
	return weekdayNames[d.Weekday()]
}

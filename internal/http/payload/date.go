package payload

import "time"

const (
	displayDateLayout = "Mon Jan 02 2006"
	InvalidDate       = "Invalid Date"
)

// DisplayDate renders a stored YYYY-MM-DD date as e.g. "Sun Mar 05 2023".
// The date is read as a calendar date, so no timezone can move it to a
// neighbouring day.
func DisplayDate(isoDate string) string {
	t, err := time.Parse(time.DateOnly, isoDate)
	if err != nil {
		return InvalidDate
	}
	return t.Format(displayDateLayout)
}

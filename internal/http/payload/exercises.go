package payload

import (
	"encoding/json"
	"exercisetracker/internal/core"
	"net/url"
	"strconv"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

// AddExerciseRequest carries a new exercise. Duration is in minutes and is
// accepted both as a JSON number and as a numeric string.
type AddExerciseRequest struct {
	Description string      `json:"description"`
	Duration    json.Number `json:"duration"`
	Date        string      `json:"date,omitempty"`
}

func (a *AddExerciseRequest) FromForm(values url.Values) {
	a.Description = values.Get("description")
	a.Duration = json.Number(values.Get("duration"))
	a.Date = values.Get("date")
}

func (a AddExerciseRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Description, validation.Required, notBlank),
		validation.Field(&a.Duration, validation.Required, is.Int, intInRange),
	)
}

// ToCoreExerciseMessage expects a validated request.
func (a AddExerciseRequest) ToCoreExerciseMessage(userID string) core.ExerciseMessage {
	duration, _ := strconv.Atoi(a.Duration.String())
	return core.ExerciseMessage{
		UserID:      userID,
		Description: a.Description,
		Duration:    duration,
		Date:        a.Date,
	}
}

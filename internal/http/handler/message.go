package handler

const (
	oopsErr         = "Oops! Something went wrong. Please try again later."
	unexpectedError = "unexpected error occurred"
	noUsersMessage  = "There are no users in the database!"
	noUserWithID    = "There are no users with that ID in the database!"
)

type Response struct {
	Message string `json:"message,omitempty"` // short message for humans
	Error   string `json:"error,omitempty"`   // error detail (if any)
}

type UserResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

type CreateUserResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// ExerciseResponse echoes a created exercise. ID is the owner's id.
type ExerciseResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"_id"`
}

type LogEntryResponse struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type LogResponse struct {
	ID       string             `json:"_id"`
	Username string             `json:"username"`
	Count    int                `json:"count"`
	Log      []LogEntryResponse `json:"log"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

type DeleteResponse struct {
	Message string       `json:"message"`
	Result  DeleteResult `json:"result"`
}

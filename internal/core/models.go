package core

type User struct {
	ID       string
	Username string
}

type ExerciseMessage struct {
	UserID      string
	Description string
	Duration    int
	Date        string // YYYY-MM-DD, empty for today
}

// ExerciseRecord is a stored exercise together with its owner.
type ExerciseRecord struct {
	UserID      string
	Username    string
	Description string
	Duration    int
	Date        string
}

type LogQuery struct {
	UserID string
	From   string
	To     string
	Limit  int
}

type LogEntry struct {
	Description string
	Duration    int
	Date        string
}

type ExerciseLog struct {
	UserID   string
	Username string
	Entries  []LogEntry
}

package repository

type User struct {
	ID       string `gorm:"primaryKey;autoIncrement:false"`
	Username string `gorm:"type:text;not null"`
	Seq      int64  `gorm:"autoIncrement"` // insertion order
}

type Exercise struct {
	ID     string `gorm:"primaryKey;autoIncrement:false"`
	UserID string `gorm:"type:varchar(64);not null;index"`
	// Username is a copy of the owner's username taken when the exercise
	// was created. It is not updated afterwards.
	Username    string `gorm:"type:text;not null"`
	Description string `gorm:"type:text;not null"`
	Duration    int    `gorm:"not null"`                 // minutes
	Date        string `gorm:"type:text;not null;index"` // YYYY-MM-DD, stored as given
	Seq         int64  `gorm:"autoIncrement"`            // insertion order
}

// ExerciseFilter selects a user's exercises dated within [From, To].
// Empty bounds default to the epoch and today, a Limit of zero or less
// means unbounded.
type ExerciseFilter struct {
	UserID string
	From   string
	To     string
	Limit  int
}

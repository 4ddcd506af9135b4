package repository

import (
	"context"
	"errors"
	"exercisetracker/internal/db"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrUserNotFound error = errors.New("user not found")

// TimeNow is the clock used for date defaults.
var TimeNow = time.Now

const (
	DateLayout = time.DateOnly
	EpochDate  = "1970-01-01"
)

var exerciseLogColumns = []string{"description", "duration", "date"}

type TrackerRepository struct {
	db Database
}

func NewTrackerRepository(db Database) *TrackerRepository {
	return &TrackerRepository{
		db: db,
	}
}

func (r *TrackerRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Exercise{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *TrackerRepository) GetAllUsers(ctx context.Context) ([]User, error) {
	users := []User{}
	err := r.db.GetAll(ctx, "seq", &users)
	if err != nil {
		return nil, fmt.Errorf("get all users: %w", err)
	}

	return users, nil
}

func (r *TrackerRepository) CreateUser(ctx context.Context, username string) (User, error) {
	user := User{
		ID:       uuid.NewString(),
		Username: username,
	}

	err := r.db.Insert(ctx, &user)
	if err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *TrackerRepository) GetUserByID(ctx context.Context, userID string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "id", userID, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

func (r *TrackerRepository) DeleteAllUsers(ctx context.Context) (int64, error) {
	count, err := r.db.DeleteAll(ctx, &User{})
	if err != nil {
		return 0, fmt.Errorf("delete all users: %w", err)
	}

	return count, nil
}

// CreateExercise assigns an id to the exercise and stores it. An empty Date
// is replaced by today's date.
func (r *TrackerRepository) CreateExercise(ctx context.Context, exercise Exercise) (Exercise, error) {
	exercise.ID = uuid.NewString()
	if exercise.Date == "" {
		exercise.Date = Today()
	}

	err := r.db.Insert(ctx, &exercise)
	if err != nil {
		return Exercise{}, fmt.Errorf("create exercise: %w", err)
	}

	return exercise, nil
}

// GetExercises returns the description, duration and date of the exercises
// matching the filter, in insertion order. Dates are compared as
// YYYY-MM-DD strings, which order the same way as the dates they encode.
func (r *TrackerRepository) GetExercises(ctx context.Context, filter ExerciseFilter) ([]Exercise, error) {
	from := filter.From
	if from == "" {
		from = EpochDate
	}
	to := filter.To
	if to == "" {
		to = Today()
	}

	exercises := []Exercise{}
	err := r.db.Find(ctx, db.Query{
		Columns: exerciseLogColumns,
		Conditions: []db.Condition{
			{Column: "user_id", Operator: "=", Value: filter.UserID},
			{Column: "date", Operator: ">=", Value: from},
			{Column: "date", Operator: "<=", Value: to},
		},
		OrderBy: "seq",
		Limit:   filter.Limit,
	}, &exercises)
	if err != nil {
		return nil, fmt.Errorf("get exercises: %w", err)
	}

	return exercises, nil
}

func (r *TrackerRepository) DeleteAllExercises(ctx context.Context) (int64, error) {
	count, err := r.db.DeleteAll(ctx, &Exercise{})
	if err != nil {
		return 0, fmt.Errorf("delete all exercises: %w", err)
	}

	return count, nil
}

// Today returns the current UTC date as YYYY-MM-DD.
func Today() string {
	return TimeNow().UTC().Format(DateLayout)
}

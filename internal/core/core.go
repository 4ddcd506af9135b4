package core

import (
	"context"
	"errors"
	"exercisetracker/internal/repository"
	"fmt"

	"go.uber.org/zap"
)

var ErrUserNotFound error = errors.New("user not found")

// Tracker keeps users and the exercises logged against them.
type Tracker struct {
	logs *zap.SugaredLogger
	repo Repository
}

// NewTracker is a constructor function for the Tracker type.
func NewTracker(logger *zap.SugaredLogger, repo Repository) *Tracker {
	return &Tracker{
		logs: logger,
		repo: repo,
	}
}

// ListUsers returns every user in insertion order.
func (t *Tracker) ListUsers(ctx context.Context) ([]User, error) {
	users, err := t.repo.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all users: %w", err)
	}

	t.logs.Infow("users in database", "count", len(users))

	records := make([]User, len(users))
	for i, u := range users {
		records[i] = User{ID: u.ID, Username: u.Username}
	}
	return records, nil
}

func (t *Tracker) CreateUser(ctx context.Context, username string) (User, error) {
	user, err := t.repo.CreateUser(ctx, username)
	if err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}

	t.logs.Infow("user created", "userId", user.ID, "username", user.Username)
	return User{ID: user.ID, Username: user.Username}, nil
}

// AddExercise logs an exercise for an existing user. The owner's username is
// copied onto the exercise as it is at this moment.
func (t *Tracker) AddExercise(ctx context.Context, msg ExerciseMessage) (ExerciseRecord, error) {
	user, err := t.getUser(ctx, msg.UserID)
	if err != nil {
		return ExerciseRecord{}, err
	}

	exercise, err := t.repo.CreateExercise(ctx, repository.Exercise{
		UserID:      user.ID,
		Username:    user.Username,
		Description: msg.Description,
		Duration:    msg.Duration,
		Date:        msg.Date,
	})
	if err != nil {
		return ExerciseRecord{}, fmt.Errorf("create exercise: %w", err)
	}

	t.logs.Infow("exercise created", "userId", user.ID, "exerciseId", exercise.ID, "date", exercise.Date)

	return ExerciseRecord{
		UserID:      user.ID,
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date,
	}, nil
}

// GetExerciseLog returns the user's exercises dated within the query bounds.
func (t *Tracker) GetExerciseLog(ctx context.Context, q LogQuery) (ExerciseLog, error) {
	user, err := t.getUser(ctx, q.UserID)
	if err != nil {
		return ExerciseLog{}, err
	}

	exercises, err := t.repo.GetExercises(ctx, repository.ExerciseFilter{
		UserID: user.ID,
		From:   q.From,
		To:     q.To,
		Limit:  q.Limit,
	})
	if err != nil {
		return ExerciseLog{}, fmt.Errorf("get exercises: %w", err)
	}

	t.logs.Infow("exercise log fetched", "userId", user.ID, "count", len(exercises))

	entries := make([]LogEntry, len(exercises))
	for i, e := range exercises {
		entries[i] = LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date,
		}
	}

	return ExerciseLog{
		UserID:   user.ID,
		Username: user.Username,
		Entries:  entries,
	}, nil
}

func (t *Tracker) DeleteAllUsers(ctx context.Context) (int64, error) {
	count, err := t.repo.DeleteAllUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete all users: %w", err)
	}

	t.logs.Infow("all users deleted", "count", count)
	return count, nil
}

func (t *Tracker) DeleteAllExercises(ctx context.Context) (int64, error) {
	count, err := t.repo.DeleteAllExercises(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete all exercises: %w", err)
	}

	t.logs.Infow("all exercises deleted", "count", count)
	return count, nil
}

func (t *Tracker) getUser(ctx context.Context, userID string) (repository.User, error) {
	user, err := t.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.User{}, fmt.Errorf("user %q: %w", userID, ErrUserNotFound)
		}
		return repository.User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

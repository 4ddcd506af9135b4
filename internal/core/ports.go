package core

import (
	"context"
	"exercisetracker/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetAllUsers(ctx context.Context) ([]repository.User, error)
	CreateUser(ctx context.Context, username string) (repository.User, error)
	GetUserByID(ctx context.Context, userID string) (repository.User, error)
	DeleteAllUsers(ctx context.Context) (int64, error)
	CreateExercise(ctx context.Context, exercise repository.Exercise) (repository.Exercise, error)
	GetExercises(ctx context.Context, filter repository.ExerciseFilter) ([]repository.Exercise, error)
	DeleteAllExercises(ctx context.Context) (int64, error)
}

package handler

import (
	"context"
	"exercisetracker/internal/core"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TrackerService . TrackerService
type TrackerService interface {
	ListUsers(ctx context.Context) ([]core.User, error)
	CreateUser(ctx context.Context, username string) (core.User, error)
	AddExercise(ctx context.Context, msg core.ExerciseMessage) (core.ExerciseRecord, error)
	GetExerciseLog(ctx context.Context, q core.LogQuery) (core.ExerciseLog, error)
	DeleteAllUsers(ctx context.Context) (int64, error)
	DeleteAllExercises(ctx context.Context) (int64, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidatePayload(r *http.Request, object any) error
}

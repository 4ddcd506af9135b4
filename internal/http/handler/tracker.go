package handler

import (
	"encoding/json"
	"errors"
	"exercisetracker/internal/core"
	"exercisetracker/internal/http/handler/middleware"
	"exercisetracker/internal/http/payload"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

var (
	GetUsers           = "GET /api/users"
	CreateUser         = "POST /api/users"
	AddExercise        = "POST /api/users/{id}/exercises"
	GetExerciseLog     = "GET /api/users/{id}/logs"
	GetExercises       = "GET /api/users/{id}/exercises"
	DeleteAllUsers     = "GET /api/users/delete"
	DeleteAllExercises = "GET /api/exercises/delete"
)

type TrackerHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	tracker          TrackerService
}

func NewTrackerHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, trackerService TrackerService) *TrackerHandler {
	return &TrackerHandler{
		logs:             logger,
		requestValidator: requestValidator,
		tracker:          trackerService,
	}
}

// RegisterRoutes wires the tracker endpoints to the mux.
func (h *TrackerHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc(GetUsers, h.HandleGetUsers)
	mux.HandleFunc(CreateUser, h.HandleCreateUser)
	mux.HandleFunc(AddExercise, h.HandleAddExercise)
	mux.HandleFunc(GetExerciseLog, h.HandleGetExerciseLog)
	mux.HandleFunc(GetExercises, h.HandleGetExercises)
	mux.HandleFunc(DeleteAllUsers, h.HandleDeleteAllUsers)
	mux.HandleFunc(DeleteAllExercises, h.HandleDeleteAllExercises)
}

func (h *TrackerHandler) HandleGetUsers(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	users, err := h.tracker.ListUsers(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Getting all users failed!",
			Error:   unexpectedError,
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get all users",
			"error", err,
			"handler", GetUsers,
			"request_id", requestId)
		return
	}

	if len(users) == 0 {
		h.respond(w, Response{Message: noUsersMessage}, http.StatusOK, requestId)
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, UserResponse{ID: u.ID, Username: u.Username})
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TrackerHandler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.CreateUserRequest
	err := h.requestValidator.DecodeAndValidatePayload(r, &req)
	if err != nil {
		h.respond(w, Response{
			Message: "User creation failed!",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateUser,
			"request_id", requestId)
		return
	}

	h.logs.Infow("creating a new user",
		"username", req.Username,
		"handler", CreateUser,
		"request_id", requestId)

	user, err := h.tracker.CreateUser(r.Context(), req.Username)
	if err != nil {
		h.respond(w, Response{
			Message: "User creation failed!",
			Error:   unexpectedError,
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to create user",
			"error", err,
			"handler", CreateUser,
			"request_id", requestId)
		return
	}

	h.respond(w, CreateUserResponse{
		Username: user.Username,
		ID:       user.ID,
	}, http.StatusOK, requestId)
}

func (h *TrackerHandler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	userID := r.PathValue("id")

	var req payload.AddExerciseRequest
	err := h.requestValidator.DecodeAndValidatePayload(r, &req)
	if err != nil {
		h.respond(w, Response{
			Message: "Exercise creation failed!",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", AddExercise,
			"request_id", requestId)
		return
	}

	h.logs.Infow("adding a new exercise",
		"userId", userID,
		"handler", AddExercise,
		"request_id", requestId)

	exercise, err := h.tracker.AddExercise(r.Context(), req.ToCoreExerciseMessage(userID))
	if err != nil {
		h.respondLookupError(w, err, "Exercise creation failed!", AddExercise, requestId)
		return
	}

	h.respond(w, ExerciseResponse{
		Username:    exercise.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        payload.DisplayDate(exercise.Date),
		ID:          exercise.UserID,
	}, http.StatusOK, requestId)
}

func (h *TrackerHandler) HandleGetExerciseLog(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	userID := r.PathValue("id")

	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve the exercise log",
			Error:   fmt.Errorf("parse query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse query parameters", "error", err, "handler", GetExerciseLog, "request_id", requestId)
		return
	}

	logsRequest := payload.NewLogsRequest(values)
	if err := logsRequest.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve the exercise log",
			Error:   fmt.Errorf("validate query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate query parameters",
			"error", err,
			"handler", GetExerciseLog,
			"request_id", requestId)
		return
	}

	h.logs.Infow("exercise log request received",
		"userId", userID,
		"from", logsRequest.From,
		"to", logsRequest.To,
		"limit", logsRequest.Limit,
		"handler", GetExerciseLog,
		"request_id", requestId)

	exerciseLog, err := h.tracker.GetExerciseLog(r.Context(), logsRequest.ToCoreLogQuery(userID))
	if err != nil {
		h.respondLookupError(w, err, "Could not retrieve the exercise log", GetExerciseLog, requestId)
		return
	}

	entries := make([]LogEntryResponse, 0, len(exerciseLog.Entries))
	for _, e := range exerciseLog.Entries {
		entries = append(entries, LogEntryResponse{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        payload.DisplayDate(e.Date),
		})
	}

	h.respond(w, LogResponse{
		ID:       exerciseLog.UserID,
		Username: exerciseLog.Username,
		Count:    len(entries),
		Log:      entries,
	}, http.StatusOK, requestId)
}

// HandleGetExercises redirects to the log endpoint, keeping the query string.
func (h *TrackerHandler) HandleGetExercises(w http.ResponseWriter, r *http.Request) {
	target := url.URL{
		Path:     "/api/users/" + r.PathValue("id") + "/logs",
		RawQuery: r.URL.RawQuery,
	}
	http.Redirect(w, r, target.String(), http.StatusFound)
}

func (h *TrackerHandler) HandleDeleteAllUsers(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	h.logs.Warnw("deleting all users", "handler", DeleteAllUsers, "request_id", requestId)

	count, err := h.tracker.DeleteAllUsers(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Deleting all users failed!",
			Error:   unexpectedError,
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to delete all users",
			"error", err,
			"handler", DeleteAllUsers,
			"request_id", requestId)
		return
	}

	h.respond(w, DeleteResponse{
		Message: "All users have been deleted!",
		Result:  DeleteResult{DeletedCount: count},
	}, http.StatusOK, requestId)
}

func (h *TrackerHandler) HandleDeleteAllExercises(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	h.logs.Warnw("deleting all exercises", "handler", DeleteAllExercises, "request_id", requestId)

	count, err := h.tracker.DeleteAllExercises(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Deleting all exercises failed!",
			Error:   unexpectedError,
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to delete all exercises",
			"error", err,
			"handler", DeleteAllExercises,
			"request_id", requestId)
		return
	}

	h.respond(w, DeleteResponse{
		Message: "All exercises have been deleted!",
		Result:  DeleteResult{DeletedCount: count},
	}, http.StatusOK, requestId)
}

// respondLookupError reports errors of operations that first look up the
// user: 404 for an unknown user, 500 for anything else.
func (h *TrackerHandler) respondLookupError(w http.ResponseWriter, err error, message, handlerName, requestId string) {
	resp := Response{
		Message: message,
	}
	httpCode := http.StatusInternalServerError
	if errors.Is(err, core.ErrUserNotFound) {
		httpCode = http.StatusNotFound
		resp.Message = noUserWithID
		resp.Error = core.ErrUserNotFound.Error()
	} else {
		resp.Error = unexpectedError
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw(message,
		"error", err,
		"handler", handlerName,
		"request_id", requestId)
}

func (h *TrackerHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

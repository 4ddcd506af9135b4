package payload

import (
	"exercisetracker/internal/core"
	"net/url"
	"strconv"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

// LogsRequest holds the optional query parameters of a log request.
type LogsRequest struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Limit string `json:"limit"`
}

func NewLogsRequest(values url.Values) LogsRequest {
	return LogsRequest{
		From:  values.Get("from"),
		To:    values.Get("to"),
		Limit: values.Get("limit"),
	}
}

func (l LogsRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Limit, is.Int, intInRange),
	)
}

// ToCoreLogQuery expects a validated request. A missing or negative limit
// becomes zero, which means unbounded.
func (l LogsRequest) ToCoreLogQuery(userID string) core.LogQuery {
	limit, _ := strconv.Atoi(l.Limit)
	if limit < 0 {
		limit = 0
	}

	return core.LogQuery{
		UserID: userID,
		From:   l.From,
		To:     l.To,
		Limit:  limit,
	}
}

package payload_test

import (
	"net/url"

	"exercisetracker/internal/core"
	"exercisetracker/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LogsRequest", func() {
	It("should leave missing parameters empty", func() {
		req := payload.NewLogsRequest(url.Values{})
		Expect(req.Validate()).To(Succeed())
		Expect(req.ToCoreLogQuery("user-1")).To(Equal(core.LogQuery{UserID: "user-1"}))
	})

	It("should read every parameter", func() {
		req := payload.NewLogsRequest(url.Values{
			"from":  {"2023-01-01"},
			"to":    {"2023-06-30"},
			"limit": {"2"},
		})
		Expect(req.Validate()).To(Succeed())
		Expect(req.ToCoreLogQuery("user-1")).To(Equal(core.LogQuery{
			UserID: "user-1",
			From:   "2023-01-01",
			To:     "2023-06-30",
			Limit:  2,
		}))
	})

	It("should treat a negative limit as unbounded", func() {
		req := payload.NewLogsRequest(url.Values{"limit": {"-3"}})
		Expect(req.Validate()).To(Succeed())
		Expect(req.ToCoreLogQuery("u").Limit).To(BeZero())
	})

	It("should reject a non integer limit", func() {
		req := payload.NewLogsRequest(url.Values{"limit": {"ten"}})
		Expect(req.Validate()).To(MatchError(ContainSubstring("limit")))
	})

	It("should reject a limit that does not fit in an integer", func() {
		req := payload.NewLogsRequest(url.Values{"limit": {"99999999999999999999"}})
		Expect(req.Validate()).To(MatchError(ContainSubstring("limit: must be an integer in range")))
	})
})

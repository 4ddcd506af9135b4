package payload

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"

	"github.com/jellydator/validation"
)

var notBlank = validation.Match(regexp.MustCompile(`\S`)).Error("must not be blank")

var errIntRange = errors.New("must be an integer in range")

// intInRange accepts empty values and decimal integers that fit in an int.
var intInRange = validation.By(func(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case json.Number:
		s = v.String()
	default:
		return errIntRange
	}
	if s == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return errIntRange
	}
	return nil
})

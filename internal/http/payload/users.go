package payload

import (
	"net/url"

	"github.com/jellydator/validation"
)

type CreateUserRequest struct {
	Username string `json:"username"`
}

func (c *CreateUserRequest) FromForm(values url.Values) {
	c.Username = values.Get("username")
}

func (c CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Username, validation.Required, notBlank),
	)
}

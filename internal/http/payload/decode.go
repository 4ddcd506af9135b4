package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"

	"github.com/jellydator/validation"
)

const maxFormMemory = 1 << 20

var ErrUnsupportedContentType = errors.New("unsupported content type")

// FormPayload is implemented by payloads that can also be submitted as an
// HTML form.
type FormPayload interface {
	FromForm(values url.Values)
}

// Decoder reads request payloads sent either as JSON or as form values.
type Decoder struct{}

func (d Decoder) DecodeAndValidatePayload(r *http.Request, object any) error {
	if err := d.decode(r, object); err != nil {
		return err
	}

	return d.validatePayload(object)
}

func (d Decoder) decode(r *http.Request, object any) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		return DecodePayload(r, object)
	}

	form, ok := object.(FormPayload)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedContentType, mediaType)
	}

	err := r.ParseMultipartForm(maxFormMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return fmt.Errorf("parsing form payload: %w", err)
	}

	form.FromForm(r.PostForm)
	return nil
}

func (d Decoder) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}

func DecodePayload(r *http.Request, object any) (err error) {
	decoder := json.NewDecoder(r.Body)
	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder.DisallowUnknownFields()

	err = decoder.Decode(object)
	if err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return nil
}

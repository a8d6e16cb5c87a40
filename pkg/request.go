package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
)

var ErrInvalidContentType = errors.New("invalid content type")

func IsJSONRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == ContentType.JSON
}

// DecodeJSONBody checks the content type and decodes the request body into v.
func DecodeJSONBody(r *http.Request, v any) error {
	if !IsJSONRequest(r) {
		return ErrInvalidContentType
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decode json body: %w", err)
	}
	return nil
}

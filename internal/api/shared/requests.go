package shared

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"
)

// FormDecoder is implemented by request types that can populate
// themselves from URL-encoded form values.
type FormDecoder interface {
	DecodeForm(values url.Values)
}

// DecodeRequest decodes the request body into the given struct.
// JSON bodies are decoded directly; application/x-www-form-urlencoded
// bodies are accepted for request types implementing FormDecoder.
func DecodeRequest(r *http.Request, v interface{}) error {
	contentType := r.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil && contentType != "" {
		return fmt.Errorf("invalid content type: %w", err)
	}

	if mediaType == "application/x-www-form-urlencoded" {
		decoder, ok := v.(FormDecoder)
		if !ok {
			return fmt.Errorf("form bodies are not supported for %T", v)
		}
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("failed to parse form body: %w", err)
		}
		decoder.DecodeForm(r.PostForm)
		return nil
	}

	return json.NewDecoder(r.Body).Decode(v)
}

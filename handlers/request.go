package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/giygas/afyabuddy-api/logging"
)

type firstAidRequest struct {
	Condition      string `json:"condition"`
	TargetLanguage string `json:"target_language"`
}

type translateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
}

// decodeLenient fills dst from the request body. A missing, empty or
// malformed body leaves dst as its zero value. A field of the wrong type is
// left empty while the other fields keep their decoded values. It returns
// true only when the body exceeded the size limit.
func decodeLenient(r *http.Request, dst any) bool {
	if r.Body == nil {
		return false
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		if isTooLarge(err) {
			return true
		}
		logging.Debug("Failed to read request body", "path", r.URL.Path, "error", err)
		return false
	}

	if len(body) == 0 {
		return false
	}

	err = json.Unmarshal(body, dst)
	var typeErr *json.UnmarshalTypeError
	switch {
	case err == nil:
	case errors.As(err, &typeErr):
		// Unmarshal skips mistyped fields and decodes the rest
		logging.Debug("Ignoring mistyped request field", "path", r.URL.Path, "field", typeErr.Field)
	default:
		logging.Debug("Malformed request body, using defaults", "path", r.URL.Path, "error", err)
		// Unmarshal may have partially filled dst
		switch v := dst.(type) {
		case *firstAidRequest:
			*v = firstAidRequest{}
		case *translateRequest:
			*v = translateRequest{}
		}
	}

	return false
}

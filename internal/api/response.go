package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"flightdesk/scheduler/internal/constants"
	"flightdesk/scheduler/internal/errs"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into dst. Unknown fields are ignored.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errs.Validation(constants.MsgInvalidJSON)
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return errs.ValidationFields(constants.MsgSerializerError, errs.FieldErrors{
				typeErr.Field: {"Invalid value."},
			})
		}
		return errs.Validation(constants.MsgInvalidJSON)
	}
	return nil
}

// pathUID returns the {uid} URL parameter when it is a well-formed UUID.
// Lookups treat a malformed id as a missing record.
func pathUID(r *http.Request, notFound string) (string, error) {
	raw := chi.URLParam(r, "uid")
	if _, err := uuid.Parse(raw); err != nil {
		return "", errs.NotFound(notFound)
	}
	return raw, nil
}

// deleteUID is like pathUID but reports a malformed id as a bad request
func deleteUID(r *http.Request) (string, error) {
	raw := chi.URLParam(r, "uid")
	if _, err := uuid.Parse(raw); err != nil {
		return "", errs.Validation(constants.MsgInvalidUUID)
	}
	return raw, nil
}

// queryParams parses the query string splitting pairs on '&' only. Range
// parameters carry a raw ';' between their bounds, which url.ParseQuery drops.
func queryParams(r *http.Request) url.Values {
	values := url.Values{}
	for _, pair := range strings.Split(r.URL.RawQuery, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}
		values.Add(key, value)
	}
	return values
}

package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/small-engineer/recados-api/internal/domain"
)

// envelope wraps every response body.
type envelope struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

var empty = struct{}{}

func respondJSON(w http.ResponseWriter, status int, env envelope) {
	b, err := json.Marshal(env)
	if err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func respondOK(w http.ResponseWriter, status int, msg string, data any) {
	respondJSON(w, status, envelope{OK: true, Message: msg, Data: data})
}

func respondFail(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, envelope{OK: false, Message: msg, Data: empty})
}

// respondErr maps service errors onto status codes.
func respondErr(w http.ResponseWriter, r *http.Request, err error) {
	var fe *domain.FieldError
	if errors.As(err, &fe) {
		respondFail(w, http.StatusBadRequest, fe.Error())
		return
	}
	for target, status := range errStatus {
		if errors.Is(err, target) {
			respondFail(w, status, target.Error())
			return
		}
	}
	hlog.FromRequest(r).Error().Err(err).Msg("request failed")
	respondFail(w, http.StatusInternalServerError, msgInternal)
}

// decode reads a JSON body into v. An empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil && !errors.Is(err, io.EOF) {
		return errBadBody
	}
	return nil
}

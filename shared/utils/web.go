package utils

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/itchan-dev/forum-api/shared/errors"
	"github.com/itchan-dev/forum-api/shared/logger"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// WriteErrorAndStatusCode writes err with the status it carries.
// Errors without a status are logged and hidden behind a generic 500.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	status := errors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Log.Error("request failed", "error", err)
		http.Error(w, "Internal server error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

// DecodeValidate decodes JSON from r into body and checks its validate tags.
func DecodeValidate(r io.ReadCloser, body any) error {
	if err := Decode(r, body); err != nil {
		return err
	}
	if err := getValidator().Struct(body); err != nil {
		logger.Log.Debug("request body failed validation", "error", err)
		return errors.NewValidation("Required fields missing")
	}
	return nil
}

// Decode reports a body cut off by http.MaxBytesReader as 413.
func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return &errors.ErrorWithStatusCode{Message: "Request body too large", StatusCode: http.StatusRequestEntityTooLarge}
		}
		logger.Log.Debug("request body is not json", "error", err)
		return errors.NewValidation("Body is invalid json")
	}
	return nil
}

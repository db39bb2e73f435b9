package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"loket-backend/internal/apperror"
	"loket-backend/internal/config"
	"loket-backend/internal/timeutil"
	"loket-backend/pkg/utils"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// decodeJSON reads the request body into dst and checks its validate tags.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.InvalidArgument("invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		return apperror.InvalidArgument("%s", validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// writeError maps a service error to its response. Unclassified errors are
// logged and hidden behind a generic message.
func writeError(w http.ResponseWriter, funcName string, err error) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) && appErr.Kind == apperror.KindPartialFailure {
		config.LogError(config.GetLogger(), "handlers", funcName, "accounting sync incomplete", map[string]string{"report_id": appErr.ReportID}, err)
		utils.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error":     appErr.Message,
			"partial":   true,
			"report_id": appErr.ReportID,
		})
		return
	}

	status := apperror.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		config.LogError(config.GetLogger(), "handlers", funcName, "request failed", nil, err)
		utils.Error(w, status, "internal server error")
		return
	}
	utils.Error(w, status, err.Error())
}

// dateParam parses an optional YYYY-MM-DD query parameter as the start of
// that WIB day, or its end when endOfDay is set.
func dateParam(r *http.Request, name string, endOfDay bool) (*time.Time, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	t, err := timeutil.ParseDate(v)
	if err != nil {
		return nil, apperror.InvalidArgument("invalid %s %q, expected YYYY-MM-DD", name, v)
	}
	if endOfDay {
		t = timeutil.EndOfDay(t)
	}
	return &t, nil
}

func intParam(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, apperror.InvalidArgument("invalid %s %q", name, v)
	}
	return n, nil
}

package api

import (
	"net/http"

	"github.com/avnit77/recipes/pkg/model"
	"github.com/avnit77/recipes/pkg/storage"
	"github.com/labstack/echo"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type errorResource struct {
	Status  int                `json:"status"`
	Message string             `json:"message"`
	Fields  []model.FieldError `json:"fields,omitempty"`
}

// JSONErrorHandler renders handler errors as JSON. Missing records map to
// 404 and validation failures to 400.
func JSONErrorHandler(err error, c echo.Context) {
	out := &errorResource{
		Status:  http.StatusInternalServerError,
		Message: http.StatusText(http.StatusInternalServerError),
	}

	switch cause := errors.Cause(err).(type) {
	case *model.ValidationError:
		out.Status = http.StatusBadRequest
		out.Message = cause.Error()
		out.Fields = cause.Fields
	case *echo.HTTPError:
		out.Status = cause.Code
		out.Message = http.StatusText(cause.Code)
		if msg, ok := cause.Message.(string); ok {
			out.Message = msg
		}
	default:
		if storage.IsNotFound(cause) {
			out.Status = http.StatusNotFound
			out.Message = cause.Error()
		} else {
			log.Error("api: ", err)
		}
	}

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(out.Status)
	} else {
		err = c.JSON(out.Status, out)
	}
	if err != nil {
		log.Error("api: failed to write error response: ", err)
	}
}

package helper

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"newsroom/models"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
)

const (
	textError = `error`
	textOk    = `ok`
)

// HTTPHelper writes the JSON response envelope used by every handler.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// GetStatusCode maps the service error taxonomy to HTTP status codes.
// Unknown errors are internal.
func (u *HTTPHelper) GetStatusCode(err error) int {
	var unauthorized models.ErrorUnauthorized
	var forbidden models.ErrorForbidden
	var notFound models.ErrorNotFound
	var validation models.ErrorValidation

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// SendServiceError converts a service-layer error to the envelope with
// the mapped status code.
func (u *HTTPHelper) SendServiceError(c *gin.Context, err error) error {
	status := u.GetStatusCode(err)
	c.JSON(status, map[string]interface{}{
		"code":         status,
		"code_type":    textError,
		"code_message": err.Error(),
		"data":         u.EmptyJsonMap(),
	})
	return nil
}

func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, data interface{}) error {
	return u.send(c, http.StatusBadRequest, textError, message, data)
}

func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string, data interface{}) error {
	return u.send(c, http.StatusUnauthorized, textError, message, data)
}

func (u *HTTPHelper) SendForbiddenError(c *gin.Context, message string, data interface{}) error {
	return u.send(c, http.StatusForbidden, textError, message, data)
}

func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string, data interface{}) error {
	return u.send(c, http.StatusNotFound, textError, message, data)
}

func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) error {
	return u.send(c, http.StatusOK, textOk, message, data)
}

func (u *HTTPHelper) SendCreated(c *gin.Context, message string, data interface{}) error {
	return u.send(c, http.StatusCreated, textOk, message, data)
}

// SendValidationError translates validator field errors into a
// field-name keyed map. No partial write has happened by the time this
// is sent.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) error {
	errorResponse := map[string][]string{}

	if u.Translator != nil {
		errorTranslation := validationErrors.Translate(u.Translator)
		for _, err := range validationErrors {
			errKey := underscore(err.StructField())
			errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
		}
	} else {
		for _, err := range validationErrors {
			errKey := underscore(err.StructField())
			errorResponse[errKey] = append(errorResponse[errKey], err.Tag())
		}
	}

	c.JSON(http.StatusBadRequest, map[string]interface{}{
		"code":         http.StatusBadRequest,
		"code_type":    "validationError",
		"code_message": errorResponse,
		"data":         u.EmptyJsonMap(),
	})
	return nil
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}

func (u *HTTPHelper) send(c *gin.Context, status int, codeType, message string, data interface{}) error {
	if len(message) == 0 {
		message = `success`
	}

	c.JSON(status, map[string]interface{}{
		"code":         status,
		"code_type":    codeType,
		"code_message": message,
		"data":         data,
	})
	return nil
}

func underscore(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"academic-attendance-backend/internal/models"
	"academic-attendance-backend/internal/service"
	"academic-attendance-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses
func respondServiceError(c *gin.Context, err error) {
	switch service.KindOf(err) {
	case service.KindValidation:
		if details := service.DetailsOf(err); len(details) > 0 {
			utils.ValidationErrorResponse(c, err.Error(), details)
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case service.KindAuthorization:
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	case service.KindConflict:
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case service.KindNotFound:
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}

// respondBindingError turns gin binding failures into the validation shape
func respondBindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, fmt.Sprintf("Field '%s' failed validation rule '%s'", fieldErr.Field(), fieldErr.Tag()))
		}
		utils.ValidationErrorResponse(c, "Invalid request body", details)
		return
	}
	utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
}

func currentUserID(c *gin.Context) uint {
	value, _ := c.Get("userID")
	id, _ := value.(uint)
	return id
}

func currentRole(c *gin.Context) models.Role {
	value, _ := c.Get("role")
	role, _ := value.(string)
	return models.Role(role)
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s", name))
		return 0, false
	}
	return uint(id), true
}

// parseOptionalIDQuery reads an optional numeric query parameter
func parseOptionalIDQuery(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s", name))
		return nil, false
	}
	value := uint(id)
	return &value, true
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}

	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s date, expected YYYY-MM-DD", name))
		return nil, false
	}
	return &date, true
}

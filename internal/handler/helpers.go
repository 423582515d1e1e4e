package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/MotoWorkShop/MWSBackend/internal/apierror"
	"github.com/MotoWorkShop/MWSBackend/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Decimals validate through their float value so min/max tags work.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// bindAndValidate binds the JSON body and runs struct validation, writing the
// 400 response itself. Returns false when the request was already answered.
func bindAndValidate(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Cuerpo de la petición inválido"))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var vErrs validator.ValidationErrors
		fields := map[string]string{}
		if errors.As(err, &vErrs) {
			for _, fe := range vErrs {
				fields[strings.ToLower(fe.Field())] = fe.Tag()
			}
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// bindFilter binds ?page&limit&search with defaults.
func bindFilter(c *gin.Context) (dto.ListFilter, bool) {
	var filter dto.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parámetros de paginación inválidos"))
		return filter, false
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 200 {
		filter.Limit = 20
	}
	return filter, true
}

// parseID reads the :id path param as a UUID.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("El id debe ser un UUID válido"))
		return uuid.Nil, false
	}
	return id, true
}

// fail defers the error to the ErrorHandler middleware.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

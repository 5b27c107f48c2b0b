package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = newValidator()

// newValidator reports fields by their wire name: the first of the param,
// query and json tags that is set.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"param", "query", "json"} {
			name := strings.Split(f.Tag.Get(tag), ",")[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	return v
}

var messages = map[string]string{
	"required": "%s is required",
	"min":      "%s must be at least %s",
	"max":      "%s must be at most %s",
	"gte":      "%s must be at least %s",
	"lte":      "%s must be at most %s",
	"oneof":    "%s must be one of: %s",
	"url":      "%s must be a valid URL",
}

// BindRequest binds path, query and body into req, applies `default` tags and
// validates. A nil result means req is ready to use.
func BindRequest(c echo.Context, req interface{}) []ValidationError {
	if err := c.Bind(req); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return []ValidationError{{Code: "ERR_BIND", Message: fmt.Sprint(he.Message)}}
		}
		return []ValidationError{{Code: "ERR_BIND", Message: err.Error()}}
	}
	if err := defaults.Set(req); err != nil {
		return []ValidationError{{Code: "ERR_DEFAULTS", Message: err.Error()}}
	}

	err := validate.StructCtx(c.Request().Context(), req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Code: "ERR_INVALID", Message: err.Error()}}
	}
	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Code:    "ERR_" + strings.ToUpper(fe.Tag()),
			Field:   fe.Field(),
			Message: fieldMessage(fe),
			Param:   fe.Param(),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	format, ok := messages[fe.Tag()]
	if !ok {
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
	if strings.Count(format, "%s") == 1 {
		return fmt.Sprintf(format, fe.Field())
	}
	param := fe.Param()
	if fe.Tag() == "oneof" {
		param = strings.ReplaceAll(param, " ", ", ")
	} else if fe.Kind() == reflect.String && (fe.Tag() == "min" || fe.Tag() == "max") {
		param += " characters"
	}
	return fmt.Sprintf(format, fe.Field(), param)
}

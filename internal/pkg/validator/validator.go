package validator

import (
	"reflect"
	"strings"

	"monster-arena/internal/pkg/xerrors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps go-playground validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
// 校验失败返回 CodeInvalidParams, 消息为第一个字段错误的中文描述
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		details := TranslateValidationErrors(err)
		appErr := xerrors.NewValidationError(details[0].Field, details[0].Message)
		appErr.Message = details[0].Message
		return appErr.WithMetadata("errors", details)
	}
	return nil
}

// New creates a new custom validator instance
func New() echo.Validator {
	return &CustomValidator{validator: newValidate()}
}

// Struct 供非 HTTP 入口(CSV 导入, RPC)复用同一套规则
func Struct(i any) error {
	return defaultValidator.Validate(i)
}

var defaultValidator = &CustomValidator{validator: newValidate()}

// newValidate 使用 json tag 作为字段名
func newValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

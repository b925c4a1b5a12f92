package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidationError 验证错误详情
type ValidationError struct {
	Field   string `json:"field"`   // 字段名
	Message string `json:"message"` // 错误消息
	Tag     string `json:"tag"`     // 验证标签（如：required, url）
	Value   string `json:"value"`   // 实际值(截断后)
}

// TranslateValidationErrors 翻译所有验证错误
func TranslateValidationErrors(err error) []ValidationError {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []ValidationError{{
			Field:   "request",
			Message: err.Error(),
			Tag:     "unknown",
		}}
	}

	result := make([]ValidationError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		result = append(result, ValidationError{
			Field:   fieldErr.Field(),
			Message: translateFieldError(fieldErr),
			Tag:     fieldErr.Tag(),
			Value:   truncateValue(fieldErr.Value()),
		})
	}
	return result
}

func truncateValue(value any) string {
	if value == nil {
		return ""
	}
	s := fmt.Sprintf("%v", value)
	if len(s) > 50 {
		return s[:50] + "..."
	}
	return s
}

func translateFieldError(fe validator.FieldError) string {
	field := getFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s不能为空", field)
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s长度不能少于%s个字符", field, fe.Param())
		}
		return fmt.Sprintf("%s不能小于%s", field, fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s长度不能超过%s个字符", field, fe.Param())
		}
		return fmt.Sprintf("%s不能大于%s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s必须大于或等于%s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s必须小于或等于%s", field, fe.Param())
	case "uuid":
		return fmt.Sprintf("%s格式不正确,请输入有效的UUID", field)
	case "url", "uri":
		return fmt.Sprintf("%s格式不正确,请输入有效的URL", field)
	default:
		return fmt.Sprintf("%s验证失败(%s)", field, fe.Tag())
	}
}

// getFieldName 获取字段的中文名称
func getFieldName(field string) string {
	fieldNames := map[string]string{
		"name":      "名称",
		"image_url": "图片链接",
		"attack":    "攻击力",
		"defense":   "防御力",
		"hp":        "生命值",
		"speed":     "速度",
		"monster_a": "怪物A",
		"monster_b": "怪物B",
	}
	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}

// File: internal/pkg/i18n/i18n.go
package i18n

import (
	"context"
	"strings"

	"monster-arena/internal/pkg/ctxkey"

	"golang.org/x/text/language"
)

var (
	// DefaultLanguage 默认语言为中文
	DefaultLanguage = language.Chinese
	// SupportedLanguages 支持的语言列表, 第一个为默认值
	SupportedLanguages = []language.Tag{
		language.Chinese,
		language.English,
	}
	matcher = language.NewMatcher(SupportedLanguages)
)

// WithLanguage 在 context 中设置语言偏好
func WithLanguage(ctx context.Context, lang language.Tag) context.Context {
	return ctxkey.WithValue(ctx, ctxkey.Language, lang)
}

// GetLanguage 从 context 中获取语言偏好
func GetLanguage(ctx context.Context) language.Tag {
	if ctx == nil {
		return DefaultLanguage
	}
	if lang, ok := ctx.Value(ctxkey.Language).(language.Tag); ok {
		return lang
	}
	return DefaultLanguage
}

// ParseAcceptLanguage 解析 Accept-Language 头部, 例如 "en-US,en;q=0.9,zh;q=0.8"
func ParseAcceptLanguage(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return DefaultLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}
	return match(tags...)
}

// ParseLanguageCode 从 "zh", "en-US" 这样的语言代码解析 Tag
func ParseLanguageCode(code string) language.Tag {
	code = strings.TrimSpace(code)
	if code == "" {
		return DefaultLanguage
	}
	tag, err := language.Parse(code)
	if err != nil {
		return DefaultLanguage
	}
	return match(tag)
}

// match 返回支持列表中的基础语言, 去掉 matcher 附加的 -u-rg 扩展
func match(tags ...language.Tag) language.Tag {
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLanguage
	}
	return SupportedLanguages[idx]
}

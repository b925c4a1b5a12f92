package i18n

import (
	"context"
	"testing"

	"monster-arena/internal/pkg/xerrors"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestParseAcceptLanguage(t *testing.T) {
	assert.Equal(t, language.English, ParseAcceptLanguage("en-US,en;q=0.9,zh;q=0.8"))
	assert.Equal(t, language.Chinese, ParseAcceptLanguage("zh-CN,zh;q=0.9"))
	assert.Equal(t, DefaultLanguage, ParseAcceptLanguage(""))
	assert.Equal(t, DefaultLanguage, ParseAcceptLanguage("fr-FR"))
}

func TestParseLanguageCode(t *testing.T) {
	assert.Equal(t, language.English, ParseLanguageCode("en"))
	assert.Equal(t, language.Chinese, ParseLanguageCode("zh-TW"))
	assert.Equal(t, DefaultLanguage, ParseLanguageCode("???"))
}

func TestGetLanguage(t *testing.T) {
	assert.Equal(t, DefaultLanguage, GetLanguage(context.Background()))
	ctx := WithLanguage(context.Background(), language.English)
	assert.Equal(t, language.English, GetLanguage(ctx))
}

func TestGetErrorMessage(t *testing.T) {
	assert.Equal(t, "Monster not found", GetErrorMessage(xerrors.CodeMonsterNotFound, language.English))
	assert.Equal(t, "怪物不存在", GetErrorMessage(xerrors.CodeMonsterNotFound, language.Chinese))
	assert.Equal(t, "Incomplete data, check your file.", GetErrorMessage(xerrors.CodeImportIncomplete, language.English))
	assert.Equal(t, "Unknown error", GetErrorMessage(xerrors.ErrorCode(1), language.English))
}

package response

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"monster-arena/internal/pkg/i18n"
	"monster-arena/internal/pkg/log"
	"monster-arena/internal/pkg/trace"
	"monster-arena/internal/pkg/xerrors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestResponseHandler_WriteSuccess(t *testing.T) {
	h := NewResponseHandler(log.GetLogger(), "test")
	rec := httptest.NewRecorder()
	ctx := trace.WithTraceID(context.Background(), "t-1")

	require.NoError(t, h.WriteCreated(ctx, rec, map[string]string{"id": "m-1"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, xerrors.CodeSuccess.ToInt(), resp.Code)
	assert.Equal(t, "t-1", resp.TraceID)
	assert.Equal(t, map[string]any{"id": "m-1"}, resp.Data)
}

func TestResponseHandler_WriteError(t *testing.T) {
	t.Run("AppError 映射到对应状态码并按语言返回消息", func(t *testing.T) {
		h := NewResponseHandler(log.GetLogger(), "production")
		rec := httptest.NewRecorder()
		ctx := i18n.WithLanguage(context.Background(), language.English)

		require.NoError(t, h.WriteError(ctx, rec, xerrors.NewMonsterNotFoundError("m-1")))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		resp := decode(t, rec)
		assert.Equal(t, int(xerrors.CodeMonsterNotFound), resp.Code)
		assert.Equal(t, "Monster not found", resp.Message)
		assert.Empty(t, resp.Error)
	})

	t.Run("普通错误作为内部错误处理", func(t *testing.T) {
		h := NewResponseHandler(log.GetLogger(), "development")
		rec := httptest.NewRecorder()

		require.NoError(t, h.WriteError(context.Background(), rec, errors.New("boom")))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		resp := decode(t, rec)
		assert.Equal(t, int(xerrors.CodeInternalError), resp.Code)
		assert.Contains(t, resp.Error, "boom")
	})

	t.Run("生产环境隐藏底层错误", func(t *testing.T) {
		h := NewResponseHandler(log.GetLogger(), "production")
		rec := httptest.NewRecorder()

		err := xerrors.NewDatabaseError("insert", "monsters", errors.New("pq: connection refused"))
		require.NoError(t, h.WriteError(context.Background(), rec, err))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}

func TestEchoHelpers(t *testing.T) {
	e := echo.New()
	h := NewResponseHandler(log.GetLogger(), "development")

	t.Run("EchoBadRequest 保留自定义消息", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

		require.NoError(t, EchoBadRequest(c, h, "monster_a is required"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, http.StatusBadRequest, c.Response().Status)
		assert.Equal(t, "monster_a is required", decode(t, rec).Error)
	})

	t.Run("EchoNoContent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)

		require.NoError(t, EchoNoContent(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

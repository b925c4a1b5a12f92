package validation

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"monster-arena/internal/pkg/log"
	"monster-arena/internal/pkg/response"
	"monster-arena/internal/pkg/xerrors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonicalID = "0b8a5d3e-9c1f-4a3b-8f7e-2d6c4b1a9e00"

func TestNormalizeUUID(t *testing.T) {
	t.Run("各种写法都规范化为小写标准格式", func(t *testing.T) {
		for _, in := range []string{
			canonicalID,
			"0B8A5D3E-9C1F-4A3B-8F7E-2D6C4B1A9E00",
			"{0b8a5d3e-9c1f-4a3b-8f7e-2d6c4b1a9e00}",
			"0b8a5d3e9c1f4a3b8f7e2d6c4b1a9e00",
			"urn:uuid:0b8a5d3e-9c1f-4a3b-8f7e-2d6c4b1a9e00",
		} {
			id, ok := NormalizeUUID(in)
			assert.True(t, ok, in)
			assert.Equal(t, canonicalID, id, in)
		}
	})

	t.Run("非法ID", func(t *testing.T) {
		for _, in := range []string{"", "999999", "0b8a5d3e-9c1f-4a3b-8f7e"} {
			_, ok := NormalizeUUID(in)
			assert.False(t, ok, in)
		}
	})
}

func TestUUIDParamMiddleware(t *testing.T) {
	e := echo.New()
	mw := UUIDParamMiddleware(response.NewResponseHandler(log.GetLogger(), "test"), xerrors.NewMonsterNotFoundError)
	var seen string
	called := false
	next := func(c echo.Context) error {
		called = true
		seen = c.Param("id")
		return c.NoContent(http.StatusOK)
	}

	t.Run("非法ID返回404", func(t *testing.T) {
		called = false
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/monsters/999999", nil), rec)
		c.SetParamNames("id")
		c.SetParamValues("999999")

		require.NoError(t, mw(next)(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, called)
	})

	t.Run("合法ID放行", func(t *testing.T) {
		called = false
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		c.SetParamNames("id")
		c.SetParamValues(canonicalID)

		require.NoError(t, mw(next)(c))
		assert.True(t, called)
		assert.Equal(t, canonicalID, seen)
	})

	t.Run("大写和URN写法被改写为标准格式", func(t *testing.T) {
		for _, in := range []string{"0B8A5D3E-9C1F-4A3B-8F7E-2D6C4B1A9E00", "urn:uuid:" + canonicalID} {
			called = false
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			c.SetParamNames("id")
			c.SetParamValues(in)

			require.NoError(t, mw(next)(c))
			assert.True(t, called)
			assert.Equal(t, canonicalID, seen)
		}
	})
}

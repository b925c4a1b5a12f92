package arena

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monster-arena/internal/pkg/log"
	"monster-arena/internal/pkg/response"
	"monster-arena/internal/pkg/trace"
	"monster-arena/internal/pkg/xerrors"
	arenatest "monster-arena/internal/test"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	TraceID string          `json:"trace_id"`
}

type testServer struct {
	e        *echo.Echo
	monsters *arenatest.MonsterRepository
	battles  *arenatest.BattleRepository
}

func newTestServer() *testServer {
	monsters := arenatest.NewMonsterRepository()
	battles := arenatest.NewBattleRepository()
	logger := log.GetLogger()
	respWriter := response.NewResponseHandler(logger, "test")

	svcs := NewServices(monsters, battles, &arenatest.RecordingPublisher{})
	return &testServer{
		e:        NewHTTPServer(svcs, respWriter, logger, "test"),
		monsters: monsters,
		battles:  battles,
	}
}

func (s *testServer) do(method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func TestRouter_System(t *testing.T) {
	s := newTestServer()

	t.Run("健康检查", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Everything is working fine"}`, rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get(trace.HeaderTraceID))
		assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
	})

	t.Run("Prometheus指标", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/metrics", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Swagger文档", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/swagger/doc.json", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/api/battles")
	})

	t.Run("CORS预检", func(t *testing.T) {
		rec := s.do(http.MethodOptions, "/api/monsters", "",
			echo.HeaderOrigin, "http://localhost:3000",
			echo.HeaderAccessControlRequestMethod, http.MethodPost)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})
}

func TestRouter_NotFound(t *testing.T) {
	s := newTestServer()

	t.Run("未知路由返回统一格式的404", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/api/unknown", "", "Accept-Language", "en")
		require.Equal(t, http.StatusNotFound, rec.Code)

		env := decode(t, rec, nil)
		assert.Equal(t, xerrors.CodeResourceNotFound.ToInt(), env.Code)
		assert.Equal(t, "Resource not found", env.Message)
	})

	t.Run("默认中文消息", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/nothing/here", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "资源不存在", decode(t, rec, nil).Message)
	})

	t.Run("不支持的方法同样返回404", func(t *testing.T) {
		rec := s.do(http.MethodPatch, "/api/monsters", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("非法怪物ID返回404", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/api/monsters/not-a-uuid", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, xerrors.CodeMonsterNotFound.ToInt(), decode(t, rec, nil).Code)
	})

	t.Run("非法对战ID返回404", func(t *testing.T) {
		rec := s.do(http.MethodDelete, "/api/battles/123", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, xerrors.CodeBattleNotFound.ToInt(), decode(t, rec, nil).Code)
	})
}

func TestRouter_BattleFlow(t *testing.T) {
	s := newTestServer()

	type monsterInfo struct {
		ID string `json:"id"`
		HP int    `json:"hp"`
	}
	type battleInfo struct {
		ID       string `json:"id"`
		MonsterA string `json:"monster_a"`
		MonsterB string `json:"monster_b"`
		Winner   string `json:"winner"`
	}

	create := func(body string) monsterInfo {
		rec := s.do(http.MethodPost, "/api/monsters", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var m monsterInfo
		decode(t, rec, &m)
		return m
	}

	fast := create(`{"name":"Fast","image_url":"f.png","attack":15,"defense":0,"hp":1,"speed":11}`)
	slow := create(`{"name":"Slow","image_url":"s.png","attack":100,"defense":0,"hp":10,"speed":10}`)

	var created battleInfo
	t.Run("速度高者获胜", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/api/battles",
			`{"monster_a":"`+slow.ID+`","monster_b":"`+fast.ID+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		decode(t, rec, &created)
		assert.Equal(t, fast.ID, created.Winner)
		assert.Equal(t, slow.ID, created.MonsterA)
	})

	t.Run("对战后怪物血量不变", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/api/monsters/"+fast.ID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var m monsterInfo
		decode(t, rec, &m)
		assert.Equal(t, 1, m.HP)
	})

	t.Run("查询对战列表", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/api/battles?monster_id="+fast.ID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var list response.ListData[battleInfo]
		decode(t, rec, &list)
		require.Len(t, list.List, 1)
		assert.Equal(t, created.ID, list.List[0].ID)
	})

	t.Run("引用不存在的怪物返回404", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/api/battles",
			`{"monster_a":"`+fast.ID+`","monster_b":"`+uuid.New().String()+`"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("缺少参战方返回400", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/api/battles", `{"monster_a":"`+fast.ID+`"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("删除对战记录", func(t *testing.T) {
		rec := s.do(http.MethodDelete, "/api/battles/"+created.ID, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = s.do(http.MethodGet, "/api/battles/"+created.ID, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

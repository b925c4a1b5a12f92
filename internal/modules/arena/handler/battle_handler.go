package handler

import (
	"strconv"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"

	"monster-arena/internal/battle"
	"monster-arena/internal/entity/arena"
	"monster-arena/internal/modules/arena/service"
	"monster-arena/internal/pkg/response"
	"monster-arena/internal/repository/interfaces"
)

// BattleHandler 对战 HTTP 处理器
type BattleHandler struct {
	service    *service.BattleService
	respWriter response.Writer
}

// NewBattleHandler 创建对战处理器
func NewBattleHandler(svc *service.BattleService, respWriter response.Writer) *BattleHandler {
	return &BattleHandler{
		service:    svc,
		respWriter: respWriter,
	}
}

// ==================== HTTP Models ====================

// CreateBattleRequest 发起对战请求
type CreateBattleRequest struct {
	MonsterA string `json:"monster_a" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"` // 怪物A的ID，必填
	MonsterB string `json:"monster_b" validate:"required" example:"6ba7b810-9dad-11d1-80b4-00c04fd430c8"` // 怪物B的ID，必填
}

// BattleInfo 对战记录响应
type BattleInfo struct {
	ID        string         `json:"id" example:"8f14e45f-ceea-467f-a0b9-1c2d3e4f5a6b"`
	MonsterA  string         `json:"monster_a" example:"550e8400-e29b-41d4-a716-446655440000"`
	MonsterB  string         `json:"monster_b" example:"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`
	Winner    string         `json:"winner" example:"550e8400-e29b-41d4-a716-446655440000"` // 胜者ID，没有胜者时为空
	CreatedAt null.Time      `json:"createdAt" swaggertype:"string" example:"2024-01-01T00:00:00Z"`
	UpdatedAt null.Time      `json:"updatedAt" swaggertype:"string" example:"2024-01-01T00:00:00Z"`
	Rounds    []battle.Round `json:"rounds,omitempty"` // 仅 verbose=true 时返回
}

func toBattleInfo(b *arena.Battle) BattleInfo {
	return BattleInfo{
		ID:        b.ID,
		MonsterA:  b.MonsterA,
		MonsterB:  b.MonsterB,
		Winner:    b.Winner.String,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ==================== HTTP Handlers ====================

// GetBattles 获取对战记录列表
// @Summary 查询对战记录
// @Description 分页查询对战记录, 最新的在前; 可按怪物过滤
// @Tags 对战
// @Produce json
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20) maximum(100)
// @Param monster_id query string false "只看该怪物参与的对战"
// @Success 200 {object} response.Response{data=response.ListData[BattleInfo]} "查询成功"
// @Failure 500 {object} response.Response "服务器错误"
// @Router /api/battles [get]
func (h *BattleHandler) GetBattles(c echo.Context) error {
	params := interfaces.BattleQueryParams{
		Pagination: parsePagination(c),
		MonsterID:  c.QueryParam("monster_id"),
	}

	battles, total, err := h.service.ListBattles(c.Request().Context(), params)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	infos := make([]BattleInfo, 0, len(battles))
	for _, b := range battles {
		infos = append(infos, toBattleInfo(b))
	}
	return response.EchoOK(c, h.respWriter, response.ListData[BattleInfo]{
		List:     infos,
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	})
}

// GetBattle 获取对战记录
// @Summary 获取对战记录
// @Tags 对战
// @Produce json
// @Param id path string true "对战ID"
// @Success 200 {object} response.Response{data=BattleInfo} "查询成功"
// @Failure 404 {object} response.Response "对战记录不存在"
// @Router /api/battles/{id} [get]
func (h *BattleHandler) GetBattle(c echo.Context) error {
	b, err := h.service.GetBattle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, toBattleInfo(b))
}

// CreateBattle 发起对战
// @Summary 发起对战
// @Description 读取双方当前属性进行结算并保存胜者, 怪物属性不会被修改
// @Description 出手顺序: 速度高者先手, 速度相同攻击高者先手, 仍相同时ID较小者先手
// @Description 每次攻击伤害为 攻击-防御, 最少 1 点
// @Tags 对战
// @Accept json
// @Produce json
// @Param request body CreateBattleRequest true "参战双方"
// @Param verbose query bool false "返回逐次攻击记录(不保存)"
// @Success 201 {object} response.Response{data=BattleInfo} "结算成功"
// @Failure 400 {object} response.Response "缺少 monster_a 或 monster_b"
// @Failure 404 {object} response.Response "怪物不存在"
// @Failure 500 {object} response.Response "服务器错误"
// @Router /api/battles [post]
func (h *BattleHandler) CreateBattle(c echo.Context) error {
	var req CreateBattleRequest
	if err := c.Bind(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, "请求参数格式错误")
	}
	if err := c.Validate(&req); err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	verbose, _ := strconv.ParseBool(c.QueryParam("verbose"))

	result, err := h.service.CreateBattle(c.Request().Context(), service.BattleInput{
		MonsterA: req.MonsterA,
		MonsterB: req.MonsterB,
	}, verbose)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	info := toBattleInfo(result.Battle)
	info.Rounds = result.Rounds
	return response.EchoCreated(c, h.respWriter, info)
}

// DeleteBattle 删除对战记录
// @Summary 删除对战记录
// @Tags 对战
// @Param id path string true "对战ID"
// @Success 204 "删除成功"
// @Failure 404 {object} response.Response "对战记录不存在"
// @Router /api/battles/{id} [delete]
func (h *BattleHandler) DeleteBattle(c echo.Context) error {
	if err := h.service.DeleteBattle(c.Request().Context(), c.Param("id")); err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoNoContent(c)
}

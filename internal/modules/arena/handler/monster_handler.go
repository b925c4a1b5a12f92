package handler

import (
	"mime/multipart"
	"sort"
	"strconv"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"

	"monster-arena/internal/entity/arena"
	"monster-arena/internal/modules/arena/service"
	"monster-arena/internal/pkg/response"
	"monster-arena/internal/pkg/xerrors"
	"monster-arena/internal/repository/interfaces"
	"monster-arena/internal/repository/query"
)

// MonsterHandler 怪物 HTTP 处理器
type MonsterHandler struct {
	service    *service.MonsterService
	respWriter response.Writer
}

// NewMonsterHandler 创建怪物处理器
func NewMonsterHandler(svc *service.MonsterService, respWriter response.Writer) *MonsterHandler {
	return &MonsterHandler{
		service:    svc,
		respWriter: respWriter,
	}
}

// ==================== HTTP Models ====================

// MonsterRequest 创建/更新怪物请求, 更新为整体替换
type MonsterRequest struct {
	Name     string `json:"name" example:"Dead Unicorn"`                    // 名称，必填
	ImageURL string `json:"image_url" example:"https://example.com/u.png"` // 图片地址，必填
	Attack   int    `json:"attack" example:"60"`                           // 攻击力，范围 0-100
	Defense  int    `json:"defense" example:"40"`                          // 防御力
	HP       int    `json:"hp" example:"10"`                               // 生命值
	Speed    int    `json:"speed" example:"80"`                            // 速度，决定出手顺序
}

func (r MonsterRequest) toInput() service.MonsterInput {
	return service.MonsterInput{
		Name:     r.Name,
		ImageURL: r.ImageURL,
		Attack:   r.Attack,
		Defense:  r.Defense,
		HP:       r.HP,
		Speed:    r.Speed,
	}
}

// MonsterInfo 怪物信息响应
type MonsterInfo struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name" example:"Dead Unicorn"`
	ImageURL  string    `json:"image_url" example:"https://example.com/u.png"`
	Attack    int       `json:"attack" example:"60"`
	Defense   int       `json:"defense" example:"40"`
	HP        int       `json:"hp" example:"10"`
	Speed     int       `json:"speed" example:"80"`
	CreatedAt null.Time `json:"createdAt" swaggertype:"string" example:"2024-01-01T00:00:00Z"`
	UpdatedAt null.Time `json:"updatedAt" swaggertype:"string" example:"2024-01-01T00:00:00Z"`
}

func toMonsterInfo(m *arena.Monster) MonsterInfo {
	return MonsterInfo{
		ID:        m.ID,
		Name:      m.Name,
		ImageURL:  m.ImageURL,
		Attack:    m.Attack,
		Defense:   m.Defense,
		HP:        m.HP,
		Speed:     m.Speed,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toMonsterInfos(monsters []*arena.Monster) []MonsterInfo {
	infos := make([]MonsterInfo, 0, len(monsters))
	for _, m := range monsters {
		infos = append(infos, toMonsterInfo(m))
	}
	return infos
}

// parsePagination 解析 page/page_size, 非法值使用默认值
func parsePagination(c echo.Context) query.Pagination {
	var p query.Pagination
	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		p.Page = page
	}
	if size, err := strconv.Atoi(c.QueryParam("page_size")); err == nil {
		p.PageSize = size
	}
	p.Normalize()
	return p
}

// ==================== HTTP Handlers ====================

// GetMonsters 获取怪物列表
// @Summary 查询怪物列表
// @Description 分页查询怪物, 按创建时间升序
// @Tags 怪物
// @Produce json
// @Param page query int false "页码" default(1) minimum(1)
// @Param page_size query int false "每页数量" default(20) minimum(1) maximum(100)
// @Success 200 {object} response.Response{data=response.ListData[MonsterInfo]} "查询成功"
// @Failure 500 {object} response.Response "服务器错误"
// @Router /api/monsters [get]
func (h *MonsterHandler) GetMonsters(c echo.Context) error {
	params := interfaces.MonsterQueryParams{Pagination: parsePagination(c)}

	monsters, total, err := h.service.ListMonsters(c.Request().Context(), params)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, response.ListData[MonsterInfo]{
		List:     toMonsterInfos(monsters),
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	})
}

// GetMonster 获取怪物详情
// @Summary 获取怪物详情
// @Tags 怪物
// @Produce json
// @Param id path string true "怪物ID"
// @Success 200 {object} response.Response{data=MonsterInfo} "查询成功"
// @Failure 404 {object} response.Response "怪物不存在或ID格式错误"
// @Router /api/monsters/{id} [get]
func (h *MonsterHandler) GetMonster(c echo.Context) error {
	monster, err := h.service.GetMonster(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, toMonsterInfo(monster))
}

// CreateMonster 创建怪物
// @Summary 创建怪物
// @Description name 与 image_url 必填, attack 必须在 0-100 之间
// @Tags 怪物
// @Accept json
// @Produce json
// @Param request body MonsterRequest true "怪物属性"
// @Success 201 {object} response.Response{data=MonsterInfo} "创建成功"
// @Failure 400 {object} response.Response "参数错误"
// @Failure 500 {object} response.Response "服务器错误"
// @Router /api/monsters [post]
func (h *MonsterHandler) CreateMonster(c echo.Context) error {
	var req MonsterRequest
	if err := c.Bind(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, "请求参数格式错误")
	}

	monster, err := h.service.CreateMonster(c.Request().Context(), req.toInput())
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoCreated(c, h.respWriter, toMonsterInfo(monster))
}

// UpdateMonster 更新怪物
// @Summary 更新怪物
// @Description 整体替换怪物属性, 校验规则与创建相同
// @Tags 怪物
// @Accept json
// @Produce json
// @Param id path string true "怪物ID"
// @Param request body MonsterRequest true "怪物属性"
// @Success 200 {object} response.Response{data=MonsterInfo} "更新成功"
// @Failure 400 {object} response.Response "参数错误"
// @Failure 404 {object} response.Response "怪物不存在"
// @Router /api/monsters/{id} [put]
func (h *MonsterHandler) UpdateMonster(c echo.Context) error {
	var req MonsterRequest
	if err := c.Bind(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, "请求参数格式错误")
	}

	monster, err := h.service.UpdateMonster(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, toMonsterInfo(monster))
}

// DeleteMonster 删除怪物
// @Summary 删除怪物
// @Description 已有的对战记录保留, 不受影响
// @Tags 怪物
// @Param id path string true "怪物ID"
// @Success 204 "删除成功"
// @Failure 404 {object} response.Response "怪物不存在"
// @Router /api/monsters/{id} [delete]
func (h *MonsterHandler) DeleteMonster(c echo.Context) error {
	if err := h.service.DeleteMonster(c.Request().Context(), c.Param("id")); err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoNoContent(c)
}

// ImportCSV 从 CSV 文件导入怪物
// @Summary 批量导入怪物
// @Description 表头: name,attack,defense,hp,speed,image_url (顺序不限)
// @Description 任一行数据不完整时整个文件被拒绝
// @Tags 怪物
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV 文件"
// @Success 200 {object} response.Response{data=[]MonsterInfo} "导入成功的怪物"
// @Failure 400 {object} response.Response "未上传文件/数据不完整/没有有效数据"
// @Failure 500 {object} response.Response "全部写入失败"
// @Router /api/monsters/import_csv [post]
func (h *MonsterHandler) ImportCSV(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.EchoError(c, h.respWriter, xerrors.FromCode(xerrors.CodeImportNoFile))
	}

	header := firstUploadedFile(form)
	if header == nil {
		return response.EchoError(c, h.respWriter, xerrors.FromCode(xerrors.CodeImportNoFile))
	}

	file, err := header.Open()
	if err != nil {
		return response.EchoError(c, h.respWriter, xerrors.NewWithError(xerrors.CodeImportNoFile, "读取上传文件失败", err))
	}
	defer file.Close()

	monsters, err := h.service.ImportCSV(c.Request().Context(), file)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, toMonsterInfos(monsters))
}

// firstUploadedFile 优先取 file 字段, 否则按字段名顺序取第一个带文件名的上传
func firstUploadedFile(form *multipart.Form) *multipart.FileHeader {
	fields := make([]string, 0, len(form.File))
	for name := range form.File {
		fields = append(fields, name)
	}
	sort.Slice(fields, func(i, j int) bool {
		if fields[i] == "file" || fields[j] == "file" {
			return fields[i] == "file"
		}
		return fields[i] < fields[j]
	})

	for _, name := range fields {
		for _, f := range form.File[name] {
			if f.Filename != "" {
				return f
			}
		}
	}
	return nil
}

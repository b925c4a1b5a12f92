package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"monster-arena/internal/pkg/response"
)

// HealthHandler 健康检查
type HealthHandler struct {
	respWriter response.Writer
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(respWriter response.Writer) *HealthHandler {
	return &HealthHandler{respWriter: respWriter}
}

// HealthMessage 健康检查响应
type HealthMessage struct {
	Message string `json:"message" example:"Everything is working fine"`
}

// Check 健康检查
// @Summary 健康检查
// @Tags 系统
// @Produce json
// @Success 200 {object} HealthMessage
// @Router /health [get]
func (h *HealthHandler) Check(c echo.Context) error {
	return response.EchoJSON(c, h.respWriter, HealthMessage{Message: "Everything is working fine"}, http.StatusOK)
}

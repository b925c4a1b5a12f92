// File: internal/pkg/response/response.go
package response

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"monster-arena/internal/pkg/i18n"
	"monster-arena/internal/pkg/log"
	"monster-arena/internal/pkg/trace"
	"monster-arena/internal/pkg/xerrors"
)

// Response 统一的 API 响应结构
type Response struct {
	Code      int    `json:"code"`               // 业务响应码
	Message   string `json:"message"`            // 响应消息
	Data      any    `json:"data,omitempty"`     // 响应数据，成功时返回
	Error     string `json:"error,omitempty"`    // 错误详情，失败时返回
	Timestamp int64  `json:"timestamp"`          // Unix时间戳
	TraceID   string `json:"trace_id,omitempty"` // 请求追踪ID
}

// ListData 分页列表数据
type ListData[T any] struct {
	List     []T   `json:"list"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

// Writer 响应写入器
type Writer interface {
	WriteSuccess(ctx context.Context, w http.ResponseWriter, data any) error
	WriteCreated(ctx context.Context, w http.ResponseWriter, data any) error
	WriteError(ctx context.Context, w http.ResponseWriter, err error) error
	WriteJSON(ctx context.Context, w http.ResponseWriter, data any, statusCode int) error
}

// ResponseHandler Writer 的默认实现
type ResponseHandler struct {
	logger      log.Logger
	environment string
}

// NewResponseHandler 创建响应处理器
func NewResponseHandler(logger log.Logger, environment string) *ResponseHandler {
	return &ResponseHandler{logger: logger, environment: environment}
}

// WriteSuccess 写入 200 成功响应
func (h *ResponseHandler) WriteSuccess(ctx context.Context, w http.ResponseWriter, data any) error {
	return h.writeData(ctx, w, http.StatusOK, data)
}

// WriteCreated 写入 201 创建成功响应
func (h *ResponseHandler) WriteCreated(ctx context.Context, w http.ResponseWriter, data any) error {
	return h.writeData(ctx, w, http.StatusCreated, data)
}

func (h *ResponseHandler) writeData(ctx context.Context, w http.ResponseWriter, status int, data any) error {
	lang := i18n.GetLanguage(ctx)
	return h.WriteJSON(ctx, w, &Response{
		Code:      xerrors.CodeSuccess.ToInt(),
		Message:   i18n.GetErrorMessage(xerrors.CodeSuccess, lang),
		Data:      data,
		Timestamp: time.Now().Unix(),
		TraceID:   trace.GetTraceID(ctx),
	}, status)
}

// WriteError 把任意错误转换为 AppError 并写入对应 HTTP 状态码的响应
func (h *ResponseHandler) WriteError(ctx context.Context, w http.ResponseWriter, err error) error {
	appErr, ok := xerrors.As(err)
	if !ok {
		appErr = xerrors.NewWithError(xerrors.CodeInternalError, xerrors.CodeInternalError.Message(), err)
	}

	traceID := trace.GetTraceID(ctx)
	if traceID != "" {
		appErr.WithTraceID(traceID)
	}
	status := xerrors.GetHTTPStatus(appErr.Code)
	if status >= http.StatusInternalServerError {
		log.LogAppError(ctx, "请求处理失败", appErr)
	} else {
		h.logger.DebugContext(ctx, "请求被拒绝", log.Any("app_error", appErr))
	}

	resp := &Response{
		Code:      appErr.Code.ToInt(),
		Message:   i18n.GetErrorMessage(appErr.Code, i18n.GetLanguage(ctx)),
		Error:     h.errorDetail(appErr),
		Timestamp: time.Now().Unix(),
		TraceID:   traceID,
	}
	return h.WriteJSON(ctx, w, resp, status)
}

// errorDetail 自定义消息总是返回; 底层错误只在非生产环境暴露
func (h *ResponseHandler) errorDetail(appErr *xerrors.AppError) string {
	detail := ""
	if appErr.Message != appErr.Code.Message() {
		detail = appErr.Message
	}
	if h.environment != "production" && appErr.Err != nil {
		if detail != "" {
			detail += ": "
		}
		detail += appErr.Err.Error()
	}
	return detail
}

// WriteJSON 直接写入 JSON
func (h *ResponseHandler) WriteJSON(ctx context.Context, w http.ResponseWriter, data any, statusCode int) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("写入JSON响应失败", err, log.Int("status", statusCode))
		return err
	}
	return nil
}

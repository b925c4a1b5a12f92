// File: internal/pkg/xerrors/codes.go
package xerrors

import (
	"fmt"
	"net/http"
)

// ErrorCode 错误码类型（类型安全）
type ErrorCode int

// IsValid 检查错误码是否在预定义列表中
func (c ErrorCode) IsValid() bool {
	_, exists := codeMessages[c]
	return exists
}

// String 返回错误码的字符串表示
func (c ErrorCode) String() string {
	if msg, ok := codeMessages[c]; ok {
		return fmt.Sprintf("%d (%s)", c, msg)
	}
	return fmt.Sprintf("%d (未定义的错误码)", c)
}

// Message 返回错误码对应的消息
func (c ErrorCode) Message() string {
	if msg, ok := codeMessages[c]; ok {
		return msg
	}
	return "未知错误"
}

// ToInt 转换为 int
func (c ErrorCode) ToInt() int {
	return int(c)
}

// -----------------------------------------------------------------------------
// 业务错误码统一定义
// -----------------------------------------------------------------------------
const (
	// 1xxxxx: 通用错误码
	CodeSuccess           ErrorCode = 100000 // 操作成功
	CodeInternalError     ErrorCode = 100001 // 内部服务错误
	CodeInvalidParams     ErrorCode = 100002 // 参数错误
	CodeInvalidRequest    ErrorCode = 100003 // 请求格式错误
	CodeResourceNotFound  ErrorCode = 100404 // 资源不存在
	CodeDuplicateResource ErrorCode = 100409 // 资源已存在

	// 7xxxxx: 外部依赖错误码
	CodeDatabaseError     ErrorCode = 700003 // 数据库错误
	CodeCacheError        ErrorCode = 700004 // 缓存服务错误
	CodeMessageQueueError ErrorCode = 700005 // 消息队列错误

	// 9xxxxx: 竞技场业务错误码
	CodeMonsterNotFound ErrorCode = 900001 // 怪物不存在
	CodeBattleNotFound  ErrorCode = 900002 // 对战记录不存在
	CodeMonsterInvalid  ErrorCode = 900003 // 怪物属性无效

	// 91xxxx: CSV 导入
	CodeImportNoFile     ErrorCode = 910001 // 未上传文件
	CodeImportIncomplete ErrorCode = 910002 // 文件数据不完整
	CodeImportEmpty      ErrorCode = 910003 // 文件中没有有效怪物
	CodeImportFailed     ErrorCode = 910004 // 怪物全部导入失败
)

var codeMessages = map[ErrorCode]string{
	CodeSuccess:           "操作成功",
	CodeInternalError:     "内部服务错误",
	CodeInvalidParams:     "参数错误",
	CodeInvalidRequest:    "请求格式错误",
	CodeResourceNotFound:  "资源不存在",
	CodeDuplicateResource: "资源已存在",

	CodeDatabaseError:     "数据库错误",
	CodeCacheError:        "缓存服务错误",
	CodeMessageQueueError: "消息队列错误",

	CodeMonsterNotFound: "怪物不存在",
	CodeBattleNotFound:  "对战记录不存在",
	CodeMonsterInvalid:  "怪物属性无效",

	CodeImportNoFile:     "未上传文件",
	CodeImportIncomplete: "文件数据不完整, 请检查文件",
	CodeImportEmpty:      "CSV 文件中没有有效的怪物",
	CodeImportFailed:     "怪物导入失败",
}

// GetHTTPStatus 根据业务错误码获取HTTP状态码
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	case CodeSuccess:
		return http.StatusOK
	case CodeInvalidParams, CodeInvalidRequest, CodeMonsterInvalid,
		CodeImportNoFile, CodeImportIncomplete, CodeImportEmpty:
		return http.StatusBadRequest
	case CodeResourceNotFound, CodeMonsterNotFound, CodeBattleNotFound:
		return http.StatusNotFound
	case CodeDuplicateResource:
		return http.StatusConflict
	case CodeCacheError, CodeMessageQueueError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// getCategoryByCode 根据错误码获取分类
func getCategoryByCode(code ErrorCode) string {
	switch {
	case code >= 100000 && code < 200000:
		return "system"
	case code >= 700000 && code < 800000:
		return "external"
	case code >= 910000 && code < 920000:
		return "import"
	case code >= 900000 && code < 1000000:
		return "arena"
	default:
		return "unknown"
	}
}

// getLevelByCode 根据错误码获取级别
func getLevelByCode(code ErrorCode) ErrorLevel {
	switch GetHTTPStatus(code) {
	case http.StatusOK:
		return LevelInfo
	case http.StatusBadRequest, http.StatusNotFound, http.StatusConflict:
		return LevelWarn
	case http.StatusServiceUnavailable:
		return LevelCritical
	default:
		return LevelError
	}
}

// isRetryableByCode 根据错误码判断是否可重试
func isRetryableByCode(code ErrorCode) bool {
	switch code {
	case CodeInternalError, CodeDatabaseError, CodeCacheError, CodeMessageQueueError:
		return true
	default:
		return false
	}
}

// File: internal/pkg/i18n/error_messages.go
package i18n

import (
	"monster-arena/internal/pkg/xerrors"

	"golang.org/x/text/language"
)

// ErrorMessages 错误消息的多语言映射
var ErrorMessages = map[xerrors.ErrorCode]map[language.Tag]string{
	xerrors.CodeSuccess:           {language.Chinese: "操作成功", language.English: "OK"},
	xerrors.CodeInternalError:     {language.Chinese: "内部服务错误", language.English: "Internal server error"},
	xerrors.CodeInvalidParams:     {language.Chinese: "参数错误", language.English: "Invalid data"},
	xerrors.CodeInvalidRequest:    {language.Chinese: "请求格式错误", language.English: "Malformed request"},
	xerrors.CodeResourceNotFound:  {language.Chinese: "资源不存在", language.English: "Resource not found"},
	xerrors.CodeDuplicateResource: {language.Chinese: "资源已存在", language.English: "Resource already exists"},

	xerrors.CodeDatabaseError:     {language.Chinese: "数据库错误", language.English: "Database error"},
	xerrors.CodeCacheError:        {language.Chinese: "缓存服务错误", language.English: "Cache error"},
	xerrors.CodeMessageQueueError: {language.Chinese: "消息队列错误", language.English: "Message queue error"},

	xerrors.CodeMonsterNotFound: {language.Chinese: "怪物不存在", language.English: "Monster not found"},
	xerrors.CodeBattleNotFound:  {language.Chinese: "对战记录不存在", language.English: "Battle not found"},
	xerrors.CodeMonsterInvalid:  {language.Chinese: "怪物属性无效", language.English: "Invalid monster data"},

	xerrors.CodeImportNoFile:     {language.Chinese: "未上传文件", language.English: "No file uploaded"},
	xerrors.CodeImportIncomplete: {language.Chinese: "文件数据不完整, 请检查文件", language.English: "Incomplete data, check your file."},
	xerrors.CodeImportEmpty:      {language.Chinese: "CSV 文件中没有有效的怪物", language.English: "No valid monsters found in the CSV file"},
	xerrors.CodeImportFailed:     {language.Chinese: "怪物导入失败", language.English: "Failed to create monsters"},
}

// GetErrorMessage 获取错误码对应语言的消息, 缺少翻译时回退到中文
func GetErrorMessage(code xerrors.ErrorCode, lang language.Tag) string {
	if messages, ok := ErrorMessages[code]; ok {
		if msg, ok := messages[lang]; ok {
			return msg
		}
		if msg, ok := messages[language.Chinese]; ok {
			return msg
		}
	}
	if lang == language.English {
		return "Unknown error"
	}
	return "未知错误"
}

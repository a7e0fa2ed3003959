package openaicompat

import "time"

// Vendor presets. Both speak the chat-completions protocol.
const (
	VendorQwen     = "qwen"
	VendorDeepSeek = "deepseek"
)

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	qwenBaseURL      = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	qwenModel        = "qwen-plus"
	deepSeekBaseURL  = "https://api.deepseek.com/v1"
	deepSeekModel    = "deepseek-chat"
	chatCompletions  = "/chat/completions"
	roleSystem       = "system"
	jsonObjectFormat = "json_object"
)

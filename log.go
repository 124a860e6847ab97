package main

import "fmt"

// ============================================================================
// 日志函数 - 四个级别
// ============================================================================

// logDebug DEBUG 级别日志 - 详细调试信息
// key: i18n 键名（如 "log.store.loaded"）
// args: 格式化参数（替换 i18n 文本中的 %s, %d 等占位符）
func logDebug(key string, args ...any) {
	if globalLogger == nil {
		return
	}

	// 获取 i18n 文本
	text := getLogText(key)
	if len(args) > 0 {
		text = fmt.Sprintf(text, args...)
	}

	// 写入日志文件
	globalLogger.Log(LogDebug, key, text)
}

// logInfo INFO 级别日志 - 正常运行信息
func logInfo(key string, args ...any) {
	if globalLogger == nil {
		return
	}

	text := getLogText(key)
	if len(args) > 0 {
		text = fmt.Sprintf(text, args...)
	}

	globalLogger.Log(LogInfo, key, text)
}

// logWarn WARN 级别日志 - 可能的问题
func logWarn(key string, args ...any) {
	if globalLogger == nil {
		return
	}

	text := getLogText(key)
	if len(args) > 0 {
		text = fmt.Sprintf(text, args...)
	}

	globalLogger.Log(LogWarn, key, text)
}

// logError ERROR 级别日志 - 需要关注的错误
func logError(key string, args ...any) {
	if globalLogger == nil {
		return
	}

	text := getLogText(key)
	if len(args) > 0 {
		text = fmt.Sprintf(text, args...)
	}

	globalLogger.Log(LogError, key, text)
}

// ============================================================================
// 辅助函数
// ============================================================================

// getLogText 获取 i18n 日志文本
// 返回翻译后的文本，如果找不到则返回 key 本身
func getLogText(key string) string {
	if globalModel != nil {
		return globalModel.getText(key)
	}
	// 如果 globalModel 未初始化，返回 key 作为后备
	return key
}

// logInfoDirect 直接记录 INFO 级别消息（无 i18n key）
func logInfoDirect(format string, args ...any) {
	if globalLogger == nil {
		return
	}
	globalLogger.Log(LogInfo, "", fmt.Sprintf(format, args...))
}

// logErrorDirect 直接记录 ERROR 级别消息（无 i18n key）
func logErrorDirect(format string, args ...any) {
	if globalLogger == nil {
		return
	}
	globalLogger.Log(LogError, "", fmt.Sprintf(format, args...))
}

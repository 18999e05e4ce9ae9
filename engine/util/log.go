package util

import "fmt"

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogSession | LogIO

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelDebug
	LogLevelInfo
)

type LogCategory int

const (
	LogTargeting LogCategory = 1 << iota
	LogSession
	LogWorld
	LogPathing
	LogIO
)

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	println(txt)
}

func logf(cat LogCategory, lvl LogLevel, format string, args ...any) {
	if lvl > GLOBAL_LOG_LEVEL || GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	println(fmt.Sprintf(format, args...))
}

func LogTargetingDebug(format string, args ...any) {
	logf(LogTargeting, LogLevelDebug, format, args...)
}

func LogTargetingWarning(format string, args ...any) {
	logf(LogTargeting, LogLevelWarning, format, args...)
}

func LogSessionInfo(format string, args ...any) {
	logf(LogSession, LogLevelInfo, format, args...)
}

func LogSessionDebug(format string, args ...any) {
	logf(LogSession, LogLevelDebug, format, args...)
}

func LogWorldDebug(format string, args ...any) {
	logf(LogWorld, LogLevelDebug, format, args...)
}

func LogWorldError(txt string) {
	log(LogWorld, LogLevelError, txt)
}

func LogPathingDebug(format string, args ...any) {
	logf(LogPathing, LogLevelDebug, format, args...)
}

func LogIOInfo(format string, args ...any) {
	logf(LogIO, LogLevelInfo, format, args...)
}

func LogIOError(txt string) {
	log(LogIO, LogLevelError, txt)
}

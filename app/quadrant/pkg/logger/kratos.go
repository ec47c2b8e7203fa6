package logger

import (
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/sirupsen/logrus"
)

var _ log.Logger = (*KratosLogger)(nil)

// KratosLogger 把 kratos 的 log.Logger 接口桥接到 logrus
type KratosLogger struct {
	log *logrus.Logger
}

// NewKratosLogger 基于 logrus 实例创建 kratos 日志适配器
func NewKratosLogger(l *logrus.Logger) *KratosLogger {
	return &KratosLogger{log: l}
}

// Log 实现 log.Logger 接口
func (l *KratosLogger) Log(level log.Level, keyvals ...interface{}) error {
	var lv logrus.Level
	switch level {
	case log.LevelDebug:
		lv = logrus.DebugLevel
	case log.LevelWarn:
		lv = logrus.WarnLevel
	case log.LevelError:
		lv = logrus.ErrorLevel
	case log.LevelFatal:
		lv = logrus.FatalLevel
	default:
		lv = logrus.InfoLevel
	}
	if !l.log.IsLevelEnabled(lv) || len(keyvals) == 0 {
		return nil
	}
	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, "")
	}

	var msg string
	fields := make(logrus.Fields, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}
		if key == log.DefaultMessageKey {
			msg = fmt.Sprint(keyvals[i+1])
			continue
		}
		fields[key] = keyvals[i+1]
	}

	// Fatal 交给 kratos Helper 自己退出，这里只负责写日志
	if lv == logrus.FatalLevel {
		lv = logrus.ErrorLevel
	}
	l.log.WithFields(fields).Log(lv, msg)
	return nil
}

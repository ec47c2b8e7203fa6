package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomFormatter(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "所选日期无数据",
		Data:    logrus.Fields{"caller": "quadrant.go:42", "b": 2, "a": "x"},
	}

	out, err := (&CustomFormatter{}).Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "[2024-01-05 09:30:00] [WARN] [quadrant.go:42] 所选日期无数据 a=x b=2\n", string(out))
}

func TestCustomFormatter_LevelTruncated(t *testing.T) {
	entry := &logrus.Entry{Level: logrus.ErrorLevel, Message: "boom", Data: logrus.Fields{}}

	out, err := (&CustomFormatter{}).Format(entry)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[ERRO] [] boom")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	file := filepath.Join(t.TempDir(), "logs", "quadrant.log")

	l, err := NewLogger("warn", file, &buf)
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[WARN]")
	assert.Contains(t, buf.String(), "logger_test.go:")

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, buf.String(), string(content))
}

func TestNewLogger_BadLevelFallsBackToInfo(t *testing.T) {
	l, err := NewLogger("verbose", "", &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestKratosLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger("debug", "", &buf)
	require.NoError(t, err)

	helper := log.NewHelper(log.With(NewKratosLogger(l), "caller", "biz.go:7"))
	helper.Infow(log.DefaultMessageKey, "已加载", "rows", 3)

	assert.Contains(t, buf.String(), "[INFO] [biz.go:7] 已加载 rows=3")
}

func TestKratosLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger("warn", "", &buf)
	require.NoError(t, err)
	kl := NewKratosLogger(l)

	require.NoError(t, kl.Log(log.LevelInfo, log.DefaultMessageKey, "dropped"))
	require.NoError(t, kl.Log(log.LevelFatal, log.DefaultMessageKey, "fatal", "odd"))
	require.NoError(t, kl.Log(log.LevelError))

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "[ERRO]")
	assert.Contains(t, buf.String(), "fatal odd=")
}

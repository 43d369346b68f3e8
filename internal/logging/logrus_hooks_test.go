package logging

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func Test_ContextHook(t *testing.T) {
	logger := log.New()
	logger.AddHook(&ContextHook{})

	var entry *log.Entry
	logger.AddHook(&captureHook{entries: func(e *log.Entry) { entry = e }})
	logger.SetOutput(discard{})
	logger.Info("hello")

	require.NotNil(t, entry)
	require.Equal(t, "logrus_hooks_test.go", entry.Data["file"])
	require.Equal(t, "logging.Test_ContextHook", entry.Data["func"])
}

type captureHook struct {
	entries func(*log.Entry)
}

func (c *captureHook) Levels() []log.Level {
	return log.AllLevels
}

func (c *captureHook) Fire(e *log.Entry) error {
	c.entries(e)
	return nil
}

type discard struct{}

func (discard) Write(p []byte) (int, error) {
	return len(p), nil
}

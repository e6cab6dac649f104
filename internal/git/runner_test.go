package git

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunner_CapturesTrimmedOutput(t *testing.T) {
	r := Runner{GitPath: "echo"}

	out, ok := r.Run("hello", "world")
	assert.True(t, ok)
	assert.Equal(t, "hello world", out)
}

func TestRunner_NonzeroExit(t *testing.T) {
	r := Runner{GitPath: "false"}

	out, ok := r.Run()
	assert.False(t, ok)
	assert.Empty(t, out)
}

func TestRunner_BinaryMissing(t *testing.T) {
	r := Runner{GitPath: "definitely-not-a-real-binary"}

	_, ok := r.Run("status")
	assert.False(t, ok)
}

func TestRunner_TimeoutKillsProcess(t *testing.T) {
	r := Runner{GitPath: "sleep", Timeout: 50 * time.Millisecond}

	start := time.Now()
	_, ok := r.Run("10")
	assert.False(t, ok)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestStatus_NotARepository(t *testing.T) {
	assert.Nil(t, Status(t.TempDir(), time.Second))
}

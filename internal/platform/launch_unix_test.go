//go:build unix

package platform

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartDetached_RunsCommand(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "started")

	require.NoError(t, startDetached("touch '"+marker+"'"))

	assert.Eventually(t, func() bool {
		_, err := os.Stat(marker)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
}

package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{ModeDev, ModeProd, ModeQuiet, ModeOff, "", "PROD"} {
		l, err := New(mode, "")
		require.NoError(t, err, "mode %q", mode)
		require.NotNil(t, l)
	}

	_, err := New("loud", "")
	assert.Error(t, err)
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repaso.log")
	l, err := New(ModeProd, path)
	require.NoError(t, err)

	l.With("component", "test").Info("snapshot saved", "sequence", 7)
	l.Debug("below level")
	l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"snapshot saved"`)
	assert.Contains(t, out, `"component":"test"`)
	assert.Contains(t, out, `"sequence":7`)
	assert.False(t, strings.Contains(out, "below level"))
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("ignored")
	l.Error("ignored", "k", "v")
	l.Sync()
}

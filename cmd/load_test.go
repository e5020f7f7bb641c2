package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadFrame_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,x\n2,y\n"), 0o644))

	frame, source, err := loadFrame(path)
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, 2, frame.NumRows())
}

func Test_LoadFrame_FileNotFound(t *testing.T) {
	_, _, err := loadFrame(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func Test_LoadFrame_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2,3\n"), 0o644))

	_, _, err := loadFrame(path)
	assert.Error(t, err)
}

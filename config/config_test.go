package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), `
timeout: 5s
follow_redirects: false
verify: true
log_level: debug
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "5s", c.Timeout)
	require.NotNil(t, c.FollowRedirects)
	assert.False(t, *c.FollowRedirects)
	require.NotNil(t, c.Verify)
	assert.True(t, *c.Verify)
	assert.Nil(t, c.HTTP1)
	assert.Nil(t, c.Color)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_DefaultMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, &Config{}, c)
}

func TestLoad_DefaultPathFromXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "apitester"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "apitester", "config.yaml"), []byte("http1: true\n"), 0o600))

	c, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, c.HTTP1)
	assert.True(t, *c.HTTP1)
}

func TestLoad_NotRegularFile(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	testCases := []struct {
		title   string
		data    string
		wantErr bool
	}{
		{title: "Empty document", data: "", wantErr: false},
		{title: "Only whitespace", data: "\n  \n", wantErr: false},
		{title: "Unknown key", data: "retries: 3\n", wantErr: true},
		{title: "Wrong type", data: "verify: maybe\n", wantErr: true},
		{title: "Known keys", data: "color: false\ntimeout: 10s\n", wantErr: false},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

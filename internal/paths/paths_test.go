package paths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDirs_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	tests := []struct {
		name     string
		fn       func() (string, error)
		xdgVar   string
		fallback []string
	}{
		{
			name:     "config",
			fn:       DefaultConfigDir,
			xdgVar:   "XDG_CONFIG_HOME",
			fallback: []string{".config", "todos"},
		},
		{
			name:     "data",
			fn:       DefaultDataDir,
			xdgVar:   "XDG_DATA_HOME",
			fallback: []string{".local", "share", "todos"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name+" uses XDG when set", func(t *testing.T) {
			t.Setenv(tt.xdgVar, "/tmp/xdg")
			got, err := tt.fn()
			require.NoError(t, err)
			assert.Equal(t, "/tmp/xdg/todos", got)
		})

		t.Run(tt.name+" falls back to home when XDG unset", func(t *testing.T) {
			t.Setenv(tt.xdgVar, "")
			home, err := os.UserHomeDir()
			require.NoError(t, err)

			got, err := tt.fn()
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(append([]string{home}, tt.fallback...)...), got)
		})
	}
}

func TestDefaultConfigDir_HomeError(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}
	t.Setenv("XDG_CONFIG_HOME", "")

	saved := platformDir.homeDir
	t.Cleanup(func() { platformDir.homeDir = saved })
	boom := errors.New("no home")
	platformDir.homeDir = func() (string, error) { return "", boom }

	_, err := DefaultConfigDir()
	assert.ErrorIs(t, err, boom)
}

func TestResolveConfigDir(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		envVal  string
		wantSub string
	}{
		{
			name:    "flag wins over env",
			flag:    "/explicit/config",
			envVal:  "/env/config",
			wantSub: "/explicit/config",
		},
		{
			name:    "env wins when flag empty",
			envVal:  "/env/config",
			wantSub: "/env/config",
		},
		{
			name:    "platform default when both empty",
			wantSub: "todos",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigDir, tt.envVal)
			got, err := ResolveConfigDir(tt.flag)
			require.NoError(t, err)
			assert.Contains(t, got, tt.wantSub)
		})
	}
}

func TestResolveDataDir(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name          string
		flag          string
		configYAMLVal string
		envVal        string
		want          string
	}{
		{
			name:          "flag wins over all",
			flag:          "/flag/data",
			configYAMLVal: "/config/data",
			envVal:        "/env/data",
			want:          "/flag/data",
		},
		{
			name:          "config.yaml wins over env",
			configYAMLVal: "/config/data",
			envVal:        "/env/data",
			want:          "/config/data",
		},
		{
			name:   "env wins when flag and config empty",
			envVal: "/env/data",
			want:   "/env/data",
		},
		{
			name: "CWD default when all empty",
			want: filepath.Join(cwd, DefaultDataDirName),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvDataDir, tt.envVal)
			got, err := ResolveDataDir(tt.flag, tt.configYAMLVal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_RelativeBecomesAbsolute(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	t.Setenv(EnvDataDir, "")

	got, err := ResolveConfigDir("relative/path")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)

	got, err = ResolveDataDir("", "relative/config")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)

	t.Setenv(EnvDataDir, "relative/env")
	got, err = ResolveDataDir("", "")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
}

package engine

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/sqlvec/vector"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sqlvec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	testCases := []struct {
		description  string
		content      string
		env          map[string]string
		expectType   vector.Type
		expectOn     bool
		expectStrict bool
		expectErr    bool
	}{
		{description: "defaults", content: "{}", expectType: vector.TypeFloat32, expectOn: true},
		{description: "file values", content: "enabled: false\ndefault_type: float64\nstrict_binary: true\nlog_level: debug\n", expectType: vector.TypeFloat64, expectStrict: true},
		{description: "env override", content: "enabled: false\n", env: map[string]string{"SQLVEC_ENABLED": "true", "SQLVEC_DEFAULT_TYPE": "f64"}, expectType: vector.TypeFloat64, expectOn: true},
		{description: "bad type", content: "default_type: float16\n", expectErr: true},
		{description: "bad level", content: "log_level: loud\n", expectErr: true},
		{description: "bad env", content: "{}", env: map[string]string{"SQLVEC_ENABLED": "maybe"}, expectErr: true},
		{description: "bad yaml", content: "enabled: [", expectErr: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			for k, v := range testCase.env {
				t.Setenv(k, v)
			}
			cfg, err := LoadConfig(writeConfig(t, testCase.content))
			if testCase.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expectOn, cfg.Enabled)
			assert.Equal(t, testCase.expectType, cfg.defaultType)
			assert.Equal(t, testCase.expectStrict, cfg.StrictBinary)
			assert.NotNil(t, cfg.Logger)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestConfigDecodeOptions(t *testing.T) {
	cfg := &Config{StrictBinary: true}
	_, err := vector.DecodeBinary(nil, cfg.decodeOptions()...)
	assert.ErrorIs(t, err, vector.ErrInvalidBinaryVector)

	cfg.StrictBinary = false
	vec, err := vector.DecodeBinary(nil, cfg.decodeOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 0, vec.Dims())
}

func TestConfigInit_Logger(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Init())
	require.NotNil(t, cfg.Logger)
	assert.False(t, cfg.Logger.Enabled(context.Background(), slog.LevelError))

	cfg = &Config{LogLevel: "warn"}
	require.NoError(t, cfg.Init())
	assert.True(t, cfg.Logger.Enabled(context.Background(), slog.LevelWarn))
	assert.False(t, cfg.Logger.Enabled(context.Background(), slog.LevelInfo))

	custom := NoopLogger()
	cfg = &Config{LogLevel: "debug", Logger: custom}
	require.NoError(t, cfg.Init())
	assert.Same(t, custom, cfg.Logger)
}

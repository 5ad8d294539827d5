package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ".", cfg.WorkDir)
	assert.Equal(t, DefaultBackupDirName, cfg.BackupDirName)
	assert.Equal(t, int64(1_000_000), cfg.MinBytes)
	assert.Equal(t, int64(2_000_000), cfg.MaxBytes)
	assert.Equal(t, 40, cfg.QualityMin)
	assert.Equal(t, 95, cfg.QualityMax)
	assert.False(t, cfg.RemoveSource)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults ok", func(c *Config) {}, ""},
		{"quality min above max", func(c *Config) { c.QualityMin = 96 }, "quality range"},
		{"quality zero", func(c *Config) { c.QualityMin = 0 }, "quality range"},
		{"quality above 100", func(c *Config) { c.QualityMax = 101 }, "quality range"},
		{"window inverted", func(c *Config) { c.MinBytes = 3_000_000 }, "size window"},
		{"window zero", func(c *Config) { c.MaxBytes = 0 }, "size window"},
		{"empty backup name", func(c *Config) { c.BackupDirName = "" }, "backup folder"},
		{"backup name with slash", func(c *Config) { c.BackupDirName = "a/b" }, "path separators"},
		{"empty workdir", func(c *Config) { c.WorkDir = "" }, "working directory"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidate_CheckOnlySkipsWorkDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CheckOnly = true
	cfg.WorkDir = ""
	assert.NoError(t, cfg.Validate())
}

func TestParseSizeArg(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1500000", 1_500_000, false},
		{"800k", 800_000, false},
		{"800K", 800_000, false},
		{"800kb", 800_000, false},
		{"2M", 2_000_000, false},
		{"2mb", 2_000_000, false},
		{"1.5M", 1_500_000, false},
		{" 2 M ", 2_000_000, false},
		{"", 0, true},
		{"abc", 0, true},
		{"-5k", 0, true},
		{"0", 0, true},
		{"1.5", 0, true}, // fractional bytes make no sense
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseSizeArg(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeDirArg(t *testing.T) {
	assert.Equal(t, "/photos", NormalizeDirArg("/photos/"))
	assert.Equal(t, "/photos", NormalizeDirArg("/photos"))
	assert.Equal(t, "/", NormalizeDirArg("/"))
	assert.Equal(t, ".", NormalizeDirArg("."))
}

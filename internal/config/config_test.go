package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"overlog/internal/app/errors"
)

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultComposeBin, cfg.Compose.Bin)
	assert.Equal(t, DefaultProject, cfg.Compose.Project)
	assert.Equal(t, DefaultContainer, cfg.Container.Name)
	assert.Equal(t, DefaultImageVersion, cfg.Container.Version)
	assert.Equal(t, LogLevel, cfg.Logging.Level)
	assert.Equal(t, LogFormat, cfg.Logging.Format)
	assert.Equal(t, SinkBufferSize, cfg.Logs.Buffer)
	assert.Equal(t, DefaultTail, cfg.Logs.Tail)
	assert.Empty(t, cfg.Services)
}

func Test_ValidateTail(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "Positive count", value: "20"},
		{name: "All", value: TailAll},
		{name: "Zero", value: "0", wantErr: true},
		{name: "Negative", value: "-3", wantErr: true},
		{name: "Not a number", value: "many", wantErr: true},
		{name: "Empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTail(tt.value)

			if tt.wantErr {
				assert.ErrorIs(t, err, errors.ErrInvalidTailCount)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_parseMajor(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    int
		wantErr bool
	}{
		{name: "Full version", version: "5.0.1", want: 5},
		{name: "v prefix", version: "v5.2.0", want: 5},
		{name: "Legacy", version: "4.3.1", want: 4},
		{name: "Major only", version: "5", want: 5},
		{name: "Garbage", version: "latest", wantErr: true},
		{name: "Zero major", version: "0.1.0", wantErr: true},
		{name: "Empty", version: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			major, err := parseMajor(tt.version)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, major)
			}
		})
	}
}

func Test_Validate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		cfg := DefaultConfig()

		assert.NoError(t, cfg.Validate())
		assert.Equal(t, 5, cfg.MajorVersion())
	})

	t.Run("Bad buffer", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Logs.Buffer = 0

		assert.ErrorIs(t, cfg.Validate(), errors.ErrInvalidLogsBuffer)
	})

	t.Run("Bad tail", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Logs.Tail = "-1"

		assert.ErrorIs(t, cfg.Validate(), errors.ErrInvalidTailCount)
	})

	t.Run("Unknown service", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Services = []string{"web", "minio"}

		assert.ErrorIs(t, cfg.Validate(), errors.ErrUnknownService)
	})

	t.Run("Bad version", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Container.Version = "latest"

		assert.ErrorIs(t, cfg.Validate(), errors.ErrInvalidImageVersion)
	})
}

func Test_LogBase(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{name: "Modern", version: "5.0.0", want: LogBaseModern},
		{name: "Newer", version: "6.1.2", want: LogBaseModern},
		{name: "Legacy", version: "4.2.8", want: LogBaseLegacy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Container.Version = tt.version

			assert.NoError(t, cfg.Validate())
			assert.Equal(t, tt.want, cfg.LogBase())
		})
	}
}

func Test_ComposeArgs(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, []string{"docker", "compose", "-p", "overleaf"}, cfg.ComposeArgs())

	cfg.Compose.Bin = "docker-compose"
	cfg.Compose.File = "docker-compose.yml"
	cfg.Compose.Project = "staging"
	assert.Equal(t, []string{"docker-compose", "-f", "docker-compose.yml", "-p", "staging"}, cfg.ComposeArgs())

	cfg.Compose.Project = ""
	assert.Equal(t, []string{"docker-compose", "-f", "docker-compose.yml"}, cfg.ComposeArgs())
}

func Test_ServiceSet(t *testing.T) {
	cfg := DefaultConfig()

	services := cfg.ServiceSet()
	assert.Equal(t, KnownServices, services)

	// returned set is a copy
	services[0] = "mutated"
	assert.Equal(t, "chat", KnownServices[0])

	cfg.Services = []string{"web", "mongo"}
	assert.Equal(t, []string{"web", "mongo"}, cfg.ServiceSet())
}

func Test_parseServiceOrder(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []string
	}{
		{
			name: "Ordered list",
			data: "services:\n  - web\n  - mongo\n  - clsi\n",
			want: []string{"web", "mongo", "clsi"},
		},
		{
			name: "No services key",
			data: "logging:\n  level: debug\n",
			want: nil,
		},
		{
			name: "Empty document",
			data: "",
			want: nil,
		},
		{
			name: "Services not a list",
			data: "services: all\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services, err := parseServiceOrder([]byte(tt.data))

			assert.NoError(t, err)
			assert.Equal(t, tt.want, services)
		})
	}
}

func Test_Load(t *testing.T) {
	t.Run("No config file", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, DefaultComposeBin, cfg.Compose.Bin)
	})

	t.Run("Config file", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		data := "container:\n  version: 4.2.0\nlogs:\n  tail: \"50\"\nservices:\n  - web\n  - chat\n"
		assert.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(data), 0o644))

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, 4, cfg.MajorVersion())
		assert.Equal(t, LogBaseLegacy, cfg.LogBase())
		assert.Equal(t, "50", cfg.Logs.Tail)
		assert.Equal(t, []string{"web", "chat"}, cfg.Services)
	})

	t.Run("Environment override", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("OVERLOG_CONTAINER_NAME", "overleaf-ce")

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, "overleaf-ce", cfg.Container.Name)
	})

	t.Run("RC file", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		data := "OVERLOG_COMPOSE_PROJECT=production\n"
		assert.NoError(t, os.WriteFile(filepath.Join(dir, RCFile), []byte(data), 0o644))

		t.Cleanup(func() { os.Unsetenv("OVERLOG_COMPOSE_PROJECT") })

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, "production", cfg.Compose.Project)
	})

	t.Run("Invalid config", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		data := "services:\n  - nope\n"
		assert.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(data), 0o644))

		_, err := Load()

		assert.ErrorIs(t, err, errors.ErrInvalidConfig)
	})
}

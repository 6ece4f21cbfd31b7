package remote

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"overlog/internal/app/shell"
	"overlog/internal/config"
	"overlog/internal/config/logger"
)

func testLogger(t *testing.T) logger.Logger {
	t.Helper()

	return logger.NewLoggerWithOutput(config.DefaultConfig(), io.Discard)
}

func Test_NewExecutor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := NewExecutor(config.DefaultConfig(), shell.NewMockCommander(ctrl), testLogger(t))
	assert.NotNil(t, e)
}

func Test_execArgs(t *testing.T) {
	tests := []struct {
		name   string
		before func(cfg *config.Config)
		want   []string
	}{
		{
			name:   "Defaults",
			before: func(cfg *config.Config) {},
			want:   []string{"docker", "compose", "-p", "overleaf", "exec", "-T", "sharelatex", "bash", "-c", "echo hi"},
		},
		{
			name: "Custom compose file and container",
			before: func(cfg *config.Config) {
				cfg.Compose.File = "docker-compose.yml"
				cfg.Container.Name = "overleaf"
			},
			want: []string{"docker", "compose", "-f", "docker-compose.yml", "-p", "overleaf", "exec", "-T", "overleaf", "bash", "-c", "echo hi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.before(cfg)

			assert.Equal(t, tt.want, execArgs(cfg, "echo hi"))
		})
	}
}

func Test_Executor_Exec(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var argv []string

	sh := shell.NewMockCommander(ctrl)
	sh.EXPECT().
		Stream(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, emit func(string), name string, args ...string) {
			argv = append([]string{name}, args...)
			emit("remote line")
		})

	var lines []string

	e := NewExecutor(config.DefaultConfig(), sh, testLogger(t))
	e.Exec(context.Background(), "cat /etc/hostname", func(line string) {
		lines = append(lines, line)
	})

	assert.Equal(t, []string{"docker", "compose", "-p", "overleaf", "exec", "-T", "sharelatex", "bash", "-c", "cat /etc/hostname"}, argv)
	assert.Equal(t, []string{"remote line"}, lines)
}

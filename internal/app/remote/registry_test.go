package remote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"overlog/internal/app/shell"
	"overlog/internal/config"
)

func Test_NewRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := NewRegistry(config.DefaultConfig(), shell.NewMockCommander(ctrl), testLogger(t))
	assert.NotNil(t, r)
}

func Test_sweepScript(t *testing.T) {
	script := sweepScript("/tmp/overlog-tails.pid")

	assert.Equal(t, "if [ -f '/tmp/overlog-tails.pid' ]; then kill $(cat '/tmp/overlog-tails.pid') 2>/dev/null; rm -f '/tmp/overlog-tails.pid'; fi", script)
}

func Test_Registry_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var (
		argv        []string
		hasDeadline bool
	)

	sh := shell.NewMockCommander(ctrl)
	sh.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, name string, args ...string) {
			_, hasDeadline = ctx.Deadline()
			argv = append([]string{name}, args...)
		})

	r := NewRegistry(config.DefaultConfig(), sh, testLogger(t))
	r.Sweep()

	assert.True(t, hasDeadline)
	assert.Equal(t, "docker", argv[0])
	assert.Contains(t, argv, "exec")
	assert.Contains(t, argv, "-T")
	assert.Contains(t, argv, "sharelatex")
	assert.Equal(t, sweepScript(config.PidRegistryPath), argv[len(argv)-1])
}

package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"overlog/internal/app/errors"
	"overlog/internal/config"
)

func Test_Classify(t *testing.T) {
	tests := []struct {
		service string
		want    Strategy
	}{
		{service: "mongo", want: StrategyOrchestrated},
		{service: "redis", want: StrategyOrchestrated},
		{service: "git-bridge", want: StrategyOrchestrated},
		{service: "web", want: StrategyInContainer},
		{service: "chat", want: StrategyInContainer},
		{service: "document-updater", want: StrategyInContainer},
	}

	for _, tt := range tests {
		t.Run(tt.service, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.service))
		})
	}
}

func Test_Expand(t *testing.T) {
	s := NewSelector()
	known := config.KnownServices

	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr error
	}{
		{
			name: "Empty selects all",
			args: nil,
			want: known,
		},
		{
			name: "Names in argument order",
			args: []string{"redis", "web"},
			want: []string{"redis", "web"},
		},
		{
			name: "Duplicates permitted",
			args: []string{"web", "web"},
			want: []string{"web", "web"},
		},
		{
			name: "Glob expands in canonical order",
			args: []string{"doc*"},
			want: []string{"docstore", "document-updater"},
		},
		{
			name: "Glob suffix",
			args: []string{"*-history"},
			want: []string{"history-v1", "project-history"},
		},
		{
			name:    "Unknown name",
			args:    []string{"minio"},
			wantErr: errors.ErrUnknownService,
		},
		{
			name:    "Glob without matches",
			args:    []string{"db-*"},
			wantErr: errors.ErrNoServicesMatch,
		},
		{
			name:    "Invalid pattern",
			args:    []string{"[web"},
			wantErr: errors.ErrInvalidPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services, err := s.Expand(tt.args, known)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, services)
		})
	}
}

func Test_Expand_NarrowedSet(t *testing.T) {
	s := NewSelector()
	known := []string{"web", "mongo"}

	services, err := s.Expand(nil, known)
	assert.NoError(t, err)
	assert.Equal(t, []string{"web", "mongo"}, services)

	_, err = s.Expand([]string{"chat"}, known)
	assert.ErrorIs(t, err, errors.ErrUnknownService)
}

func Test_isPattern(t *testing.T) {
	assert.True(t, isPattern("doc*"))
	assert.True(t, isPattern("web?"))
	assert.True(t, isPattern("{web,chat}"))
	assert.False(t, isPattern("document-updater"))
}

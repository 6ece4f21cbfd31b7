package mux

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Formatter_Line(t *testing.T) {
	tests := []struct {
		name     string
		service  string
		message  string
		prefixed bool
		want     string
	}{
		{
			name:     "Passthrough without prefix",
			service:  "mongo",
			message:  "ready for connections",
			prefixed: false,
			want:     "ready for connections\n",
		},
		{
			name:     "Short name padded to the column width",
			service:  "web",
			message:  "listening on 3000",
			prefixed: true,
			want:     "web           | listening on 3000\n",
		},
		{
			name:     "Exact-width name untouched",
			service:  "track-changes",
			message:  "started",
			prefixed: true,
			want:     "track-changes | started\n",
		},
		{
			name:     "Long name truncated to the column width",
			service:  "document-updater",
			message:  "flushed",
			prefixed: true,
			want:     "document-upda | flushed\n",
		},
		{
			name:     "Empty message keeps the prefix column",
			service:  "chat",
			message:  "",
			prefixed: true,
			want:     "chat          | \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormatter()

			assert.Equal(t, tt.want, f.Line(tt.service, tt.message, tt.prefixed))
		})
	}
}

package screen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidth_NonTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.False(t, IsTerminal(f))
	assert.Equal(t, DefaultWidth, Width(f))
}

func TestIsTerminal_Nil(t *testing.T) {
	assert.False(t, IsTerminal(nil))
}

func TestStdWidth_ColumnsEnv(t *testing.T) {
	tests := []struct {
		name    string
		columns string
		want    int
	}{
		{"explicit", "132", 132},
		{"narrow is honored", "20", 20},
		{"garbage falls back", "wide", DefaultWidth},
		{"zero falls back", "0", DefaultWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COLUMNS", tt.columns)
			if tt.want == DefaultWidth && !IsTerminal(os.Stdout) {
				assert.Equal(t, tt.want, StdWidth())
				assert.Equal(t, tt.want, ErrWidth())
				return
			}
			if tt.want != DefaultWidth {
				assert.Equal(t, tt.want, StdWidth())
				assert.Equal(t, tt.want, ErrWidth())
			}
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, MinWidth, clamp(10))
	assert.Equal(t, MinWidth, clamp(MinWidth))
	assert.Equal(t, 100, clamp(100))
}

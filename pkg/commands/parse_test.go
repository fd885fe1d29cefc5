package commands

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   Entry
		wantOK bool
	}{
		{
			name:   "empty",
			line:   "   ",
			wantOK: false,
		},
		{
			name:   "comment",
			line:   "  # search url firefox ____",
			wantOK: false,
		},
		{
			name:   "one token",
			line:   "search",
			wantOK: false,
		},
		{
			name:   "two tokens",
			line:   "search url",
			wantOK: false,
		},
		{
			name:   "unknown kind",
			line:   "search exec firefox ____",
			wantOK: false,
		},
		{
			name:   "unterminated quote",
			line:   `search url firefox "____`,
			wantOK: false,
		},
		{
			name: "literal without arguments",
			line: "term nop xterm",
			want: Entry{
				Name:        "term",
				Kind:        KindLiteral,
				Program:     "xterm",
				Templates:   []string{},
				Placeholder: "____",
			},
			wantOK: true,
		},
		{
			name: "quoted and escaped tokens",
			line: `  edit raw "/usr/bin/my editor" --file 'a ____' b\ c  `,
			want: Entry{
				Name:        "edit",
				Kind:        KindRaw,
				Program:     "/usr/bin/my editor",
				Templates:   []string{"--file", "a ____", "b c"},
				Placeholder: "____",
			},
			wantOK: true,
		},
		{
			name: "url kind",
			line: "search url https://example.com/?q=____",
			want: Entry{
				Name:        "search",
				Kind:        KindURL,
				Program:     "https://example.com/?q=____",
				Templates:   []string{},
				Placeholder: "____",
			},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line, "____")
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	input := strings.Join([]string{
		"# launcher commands",
		"",
		"g url firefox https://www.google.com/search?q=____",
		"short raw",
		"bogus sh -c ____",
		"term nop xterm",
		"g raw chromium ____",
	}, "\n")

	reg, err := Load(strings.NewReader(input), "____")
	require.NoError(t, err)

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{"g", "term"}, reg.Names())

	g, ok := reg.Lookup("g")
	require.True(t, ok)
	assert.Equal(t, KindRaw, g.Kind, "later line with the same name wins")
	assert.Equal(t, "chromium", g.Program)

	_, ok = reg.Lookup("short")
	assert.False(t, ok)
	_, ok = reg.Lookup("bogus")
	assert.False(t, ok)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ubq")
	require.NoError(t, os.WriteFile(path, []byte("e raw gedit ____\n"), 0644))

	reg, err := LoadFile(path, "____")
	require.NoError(t, err)
	assert.Equal(t, []string{"e"}, reg.Names())
}

func TestLoadFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")

	_, err := LoadFile(path, "____")
	require.Error(t, err)

	var openErr *OpenError
	require.True(t, errors.As(err, &openErr))
	assert.Equal(t, path, openErr.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, "no such file or directory: '"+path+"'", err.Error())
}

func TestLoadFile_Directory(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(dir, "____")
	require.Error(t, err)

	var openErr *OpenError
	require.True(t, errors.As(err, &openErr))
	assert.Equal(t, dir, openErr.Path)
	assert.True(t, errors.Is(err, syscall.EISDIR))
	assert.Equal(t, "is a directory: '"+dir+"'", err.Error())
}

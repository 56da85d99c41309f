package termcheck

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFile struct {
	fd   uintptr
	name string
}

func (f fakeFile) Fd() uintptr  { return f.fd }
func (f fakeFile) Name() string { return f.name }

func stubTerminal(t *testing.T, ttys map[uintptr]bool) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(fd uintptr) bool { return ttys[fd] }
	t.Cleanup(func() { isTerminal = orig })
}

func TestCheckRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	err = Check(f)
	assert.ErrorIs(t, err, ErrNotTerminal)
	assert.Contains(t, err.Error(), f.Name())
}

func TestCheckReportsFirstNonTerminal(t *testing.T) {
	stubTerminal(t, map[uintptr]bool{0: true, 1: false})

	err := Check(fakeFile{0, "/dev/stdin"}, fakeFile{1, "/dev/stdout"})
	require.ErrorIs(t, err, ErrNotTerminal)
	assert.Contains(t, err.Error(), "/dev/stdout")

	stubTerminal(t, map[uintptr]bool{0: true, 1: true})
	assert.NoError(t, Check(fakeFile{0, "/dev/stdin"}, fakeFile{1, "/dev/stdout"}))
}

func TestSizeFallback(t *testing.T) {
	orig := getSize
	t.Cleanup(func() { getSize = orig })

	getSize = func(int) (int, int, error) { return 0, 0, errors.New("inappropriate ioctl") }
	w, h := Size(fakeFile{1, "stdout"})
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)

	getSize = func(int) (int, int, error) { return 132, 43, nil }
	w, h = Size(fakeFile{1, "stdout"})
	assert.Equal(t, 132, w)
	assert.Equal(t, 43, h)
}

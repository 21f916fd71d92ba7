package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/emerald/internal/errors"
)

func TestWriteFileCreatesParents(t *testing.T) {
	dir := t.TempDir()
	full, err := WriteFile(dir, "Foo/Baz/Qux.html", []byte("x"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "Foo", "Baz", "Qux.html"), full)

	data, err := os.ReadFile(full)
	require.NoError(t, err)
	require.Equal(t, "x", string(data))
}

func TestWriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteFile(dir, "index.html", []byte("first"))
	require.NoError(t, err)
	full, err := WriteFile(dir, "index.html", []byte("second"))
	require.NoError(t, err)

	data, err := os.ReadFile(full)
	require.NoError(t, err)
	require.Equal(t, "second", string(data))
}

func TestWriteFileRejectsEscapes(t *testing.T) {
	dir := t.TempDir()
	for _, rel := range []string{"../x.html", "a/../../x.html", ".."} {
		_, err := WriteFile(dir, rel, []byte("x"))
		require.Error(t, err, rel)
		require.True(t, ferrors.IsCategory(err, ferrors.CategoryFileSystem), rel)
	}
}

func TestWriteFileParentIsFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Foo"), []byte("file"), 0o600))

	_, err := WriteFile(dir, "Foo/Bar.html", []byte("x"))
	require.Error(t, err)
	require.True(t, ferrors.IsCategory(err, ferrors.CategoryFileSystem))
	require.Contains(t, err.Error(), "create directory failed")
}

func TestWriteFileRequiresArguments(t *testing.T) {
	_, err := WriteFile("", "a.html", nil)
	require.Error(t, err)
	_, err = WriteFile(t.TempDir(), "", nil)
	require.Error(t, err)
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDir(dir))
	require.DirExists(t, dir)
}

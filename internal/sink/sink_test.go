package sink

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/smt3-rdf/rdf"
)

func TestWriteStringCreatesAndTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.ttl")

	require.NoError(t, WriteString(path, "a much longer first version\n"))
	require.NoError(t, WriteString(path, "short\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fileMode, info.Mode().Perm())
}

func TestWriteFileFailureKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demon.ttl")
	require.NoError(t, WriteString(path, "previous\n"))

	boom := errors.New("boom")
	err := WriteFile(path, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	require.ErrorIs(t, err, boom)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "race.ttl")
	err := WriteString(path, "x")

	var ioErr *rdf.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "create", ioErr.Op)
	assert.Equal(t, path, ioErr.Path)
	assert.Equal(t, rdf.ErrCodeIOError, rdf.Code(err))
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	err = EnsureDir(filepath.Join(file, "child"))
	assert.Equal(t, rdf.ErrCodeIOError, rdf.Code(err))
}

func TestWriteQuads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "race.nt")
	quads := []rdf.Quad{{S: rdf.IRI{Value: "http://ex/r#Fairy"}, P: rdf.RDFType, O: rdf.IRI{Value: "http://ex/v#Race"}}}
	require.NoError(t, WriteQuads(context.Background(), path, rdf.FormatNTriples, quads))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<http://ex/r#Fairy> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://ex/v#Race> .\n", string(data))

	quads[0].G = rdf.IRI{Value: "http://ex/game"}
	err = WriteQuads(context.Background(), path, rdf.FormatNTriples, quads)
	require.ErrorIs(t, err, rdf.ErrNamedGraphUnsupported)
}

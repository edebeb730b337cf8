package quarantine

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
	"vincit.fi/image-triage/api/apitype"
	"vincit.fi/image-triage/backend/fileio"
)

func TestHandler_EnsureErrorDir(t *testing.T) {
	a := assert.New(t)

	fs := afero.NewMemMapFs()
	handler := NewHandler(fileio.NewFileSystem(fs), "/dst")

	a.Nil(handler.EnsureErrorDir())
	a.Nil(handler.EnsureErrorDir())

	isDir, _ := afero.IsDir(fs, "/dst/error")
	a.True(isDir)
	a.Equal("/dst/error", handler.ErrorDir())
}

func TestHandler_Quarantine(t *testing.T) {
	a := assert.New(t)

	reason := &apitype.DecodeError{Name: "c.png", Err: errors.New("bad data")}

	t.Run("Moves to error folder", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.Nil(t, afero.WriteFile(fs, "/src/c.png", []byte("garbage"), 0o644))
		handler := NewHandler(fileio.NewFileSystem(fs), "/dst")
		require.Nil(t, handler.EnsureErrorDir())

		quarantined := handler.Quarantine(apitype.NewQueueItem("/src", "c.png"), reason)

		a.Nil(quarantined.MoveErr)
		a.Equal("/dst/error/c.png", quarantined.Destination)
		a.Equal(reason, quarantined.Reason)
		exists, _ := afero.Exists(fs, "/src/c.png")
		a.False(exists)
		data, err := afero.ReadFile(fs, "/dst/error/c.png")
		a.Nil(err)
		a.Equal([]byte("garbage"), data)
		a.Equal(1, handler.Count())
	})
	t.Run("Failed move is still recorded", func(t *testing.T) {
		base := afero.NewMemMapFs()
		require.Nil(t, afero.WriteFile(base, "/src/c.png", []byte("garbage"), 0o644))
		require.Nil(t, base.MkdirAll("/dst/error", 0o755))
		handler := NewHandler(fileio.NewFileSystem(afero.NewReadOnlyFs(base)), "/dst")

		quarantined := handler.Quarantine(apitype.NewQueueItem("/src", "c.png"), reason)

		a.NotNil(quarantined.MoveErr)
		exists, _ := afero.Exists(base, "/src/c.png")
		a.True(exists)
		a.Equal(1, handler.Count())
		a.Contains(quarantined.String(), "could not move")
	})
	t.Run("Items in order", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.Nil(t, afero.WriteFile(fs, "/src/a.png", []byte("1"), 0o644))
		require.Nil(t, afero.WriteFile(fs, "/src/b.png", []byte("2"), 0o644))
		handler := NewHandler(fileio.NewFileSystem(fs), "/dst")
		require.Nil(t, handler.EnsureErrorDir())

		handler.Quarantine(apitype.NewQueueItem("/src", "a.png"), reason)
		handler.Quarantine(apitype.NewQueueItem("/src", "b.png"), reason)

		items := handler.Items()
		a.Equal(2, len(items))
		a.Equal("a.png", items[0].Item.FileName())
		a.Equal("b.png", items[1].Item.FileName())
	})
}

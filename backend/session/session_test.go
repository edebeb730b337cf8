package session

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
	"vincit.fi/image-triage/api"
	"vincit.fi/image-triage/api/apitype"
	"vincit.fi/image-triage/backend/fileio"
	"vincit.fi/image-triage/backend/imageloader"
	"vincit.fi/image-triage/common"
	"vincit.fi/image-triage/internal/testimage"
)

const (
	sourceDir = "/src"
	destDir   = "/dst"
)

// MockFileSystem fails the mocked calls and passes everything else to an
// in-memory file system.
type MockFileSystem struct {
	*fileio.FileSystem
	mock.Mock
}

func (s *MockFileSystem) mocked(method string) bool {
	for _, call := range s.ExpectedCalls {
		if call.Method == method {
			return true
		}
	}
	return false
}

func (s *MockFileSystem) Write(path string, data []byte) error {
	if s.mocked("Write") {
		if err := s.Called(path, data).Error(0); err != nil {
			return err
		}
	}
	return s.FileSystem.Write(path, data)
}

func (s *MockFileSystem) Delete(path string) error {
	if s.mocked("Delete") {
		if err := s.Called(path).Error(0); err != nil {
			return err
		}
	}
	return s.FileSystem.Delete(path)
}

func (s *MockFileSystem) Move(src string, dst string) error {
	if s.mocked("Move") {
		if err := s.Called(src, dst).Error(0); err != nil {
			return err
		}
	}
	return s.FileSystem.Move(src, dst)
}

type testFile struct {
	name string
	data []byte
}

func png(name string, width int, height int) testFile {
	return testFile{name: name, data: testimage.PNG(width, height)}
}

func garbage(name string) testFile {
	return testFile{name: name, data: []byte("not an image")}
}

func newFileSystem(t *testing.T, files ...testFile) afero.Fs {
	fs := afero.NewMemMapFs()
	require.Nil(t, fs.MkdirAll(sourceDir, 0o755))
	require.Nil(t, fs.MkdirAll(destDir, 0o755))
	for _, file := range files {
		require.Nil(t, afero.WriteFile(fs, sourceDir+"/"+file.name, file.data, 0o644))
	}
	return fs
}

func newConfig(t *testing.T, labels ...string) Config {
	if len(labels) == 0 {
		labels = []string{"X", "Y"}
	}
	categories, err := apitype.NewCategorySet(labels)
	require.Nil(t, err)
	return Config{
		SourceDir:  sourceDir,
		DestDir:    destDir,
		Categories: categories,
		MaxWidth:   100,
		MaxHeight:  100,
		InputMode:  common.BufferedInput,
	}
}

func startWith(t *testing.T, fileSystem api.FileSystem, config Config) *Session {
	session, err := Start(config, Dependencies{
		FileSystem: fileSystem,
		Codec:      imageloader.NewImageCodec(apitype.NewEncodeOptions(95, false)),
	})
	require.Nil(t, err)
	return session
}

func start(t *testing.T, fs afero.Fs) *Session {
	return startWith(t, fileio.NewFileSystem(fs), newConfig(t))
}

func queueNames(session *Session) []string {
	var names []string
	for _, item := range session.Queue() {
		names = append(names, item.FileName())
	}
	return names
}

func exists(fs afero.Fs, path string) bool {
	found, err := afero.Exists(fs, path)
	return err == nil && found
}

func assertConservation(t *testing.T, session *Session) {
	stats := session.Stats()
	assert.Equal(t, stats.Initial, stats.Remaining+stats.Classified+stats.Evicted+stats.Quarantined, stats.String())
	assert.Equal(t, stats.Remaining, len(session.Queue()))
	assert.Equal(t, stats.Classified, len(session.History()))
	assert.Equal(t, stats.Quarantined, len(session.Quarantined()))
}

func TestStart(t *testing.T) {
	a := assert.New(t)

	t.Run("First image is loaded", func(t *testing.T) {
		session := start(t, newFileSystem(t, png("a.png", 4, 2), png("b.png", 3, 3)))

		a.Equal(AwaitingDecision, session.State())
		current := session.Current()
		a.NotNil(current)
		a.Equal("a.png", current.Name())
		a.Equal(1, current.Position())
		a.Equal(2, current.Total())
		a.Equal(apitype.SizeOf(4, 2), current.Size())
		a.NotEmpty(session.Id())
	})
	t.Run("Error folder is created", func(t *testing.T) {
		fs := newFileSystem(t, png("a.png", 4, 2))
		start(t, fs)

		isDir, _ := afero.IsDir(fs, "/dst/error")
		a.True(isDir)
	})
	t.Run("Empty directory completes", func(t *testing.T) {
		session := start(t, newFileSystem(t))

		a.Equal(Completed, session.State())
		a.Nil(session.Current())
		a.Nil(session.Preview(apitype.SizeOf(10, 10)))
	})
	t.Run("Unsupported files are not queued", func(t *testing.T) {
		session := start(t, newFileSystem(t, png("a.png", 4, 2), testFile{name: "notes.txt", data: []byte("x")}))

		a.Equal([]string{"a.png"}, queueNames(session))
	})
	t.Run("Missing source directory", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		config := newConfig(t)

		_, err := Start(config, Dependencies{
			FileSystem: fileio.NewFileSystem(fs),
			Codec:      imageloader.NewImageCodec(apitype.NewEncodeOptions(95, false)),
		})

		a.NotNil(err)
	})
	t.Run("Defaults", func(t *testing.T) {
		fs := newFileSystem(t, png("a.png", 4, 2))
		session := startWith(t, fileio.NewFileSystem(fs), Config{SourceDir: sourceDir, DestDir: destDir})

		a.Equal([]string{"flagged", "clear"}, session.Categories().Names())
		a.Equal(common.BufferedInput, session.InputMode())
		a.Equal(AwaitingDecision, session.State())
	})
	t.Run("Unreadable files are quarantined on start", func(t *testing.T) {
		fs := newFileSystem(t, garbage("a.png"), png("b.png", 200, 10), png("c.png", 4, 2))
		session := start(t, fs)

		a.Equal("c.png", session.Current().Name())
		a.Equal(3, session.Current().Position())
		quarantined := session.StartupQuarantined()
		a.Equal(2, len(quarantined))
		a.Equal("a.png", quarantined[0].Item.FileName())
		a.Equal("b.png", quarantined[1].Item.FileName())

		var decodeErr *apitype.DecodeError
		a.True(errors.As(quarantined[0].Reason, &decodeErr))
		var oversizeErr *apitype.OversizeError
		a.True(errors.As(quarantined[1].Reason, &oversizeErr))

		a.True(exists(fs, "/dst/error/a.png"))
		a.True(exists(fs, "/dst/error/b.png"))
		a.Equal([]string{"c.png"}, queueNames(session))
		assertConservation(t, session)
	})
}

func TestSubmit_ClassifyAndUndo(t *testing.T) {
	a := assert.New(t)

	fs := newFileSystem(t, png("a.png", 4, 2), png("b.png", 3, 3))
	session := start(t, fs)

	t.Run("Classify a.png as Y", func(t *testing.T) {
		outcome := session.Submit(apitype.Classify(2))

		a.Nil(outcome.Rejected)
		a.True(outcome.Advanced)
		a.Equal("Y", outcome.Category.Name())
		a.Equal("a.png", outcome.Item.FileName())
		a.Empty(outcome.Quarantined)

		a.True(exists(fs, "/dst/Y/a.png"))
		a.False(exists(fs, "/src/a.png"))
		a.Equal([]string{"b.png"}, queueNames(session))

		entries := session.History()
		a.Equal(1, len(entries))
		a.Equal("/src/a.png", entries[0].Source)
		a.Equal("/dst/Y/a.png", entries[0].Destination)
		a.Equal("Y", entries[0].Category.Name())

		a.Equal("b.png", session.Current().Name())
		a.Equal(2, session.Current().Position())
		assertConservation(t, session)
	})
	t.Run("Undo brings a.png back", func(t *testing.T) {
		outcome := session.Submit(apitype.Undo())

		a.Nil(outcome.Rejected)
		a.True(outcome.Undone)
		a.Equal("a.png", outcome.Item.FileName())

		a.True(exists(fs, "/src/a.png"))
		a.False(exists(fs, "/dst/Y/a.png"))
		a.Equal([]string{"a.png", "b.png"}, queueNames(session))
		a.Empty(session.History())
		a.Equal("a.png", session.Current().Name())
		a.Equal(1, session.Current().Position())
		a.Equal(AwaitingDecision, session.State())
		assertConservation(t, session)
	})
	t.Run("Nothing more to undo", func(t *testing.T) {
		outcome := session.Submit(apitype.Undo())

		a.True(errors.Is(outcome.Rejected, apitype.ErrNothingToUndo))
		a.Equal([]string{"a.png", "b.png"}, queueNames(session))
		a.Equal("a.png", session.Current().Name())
	})
}

func TestSubmit_UndoRoundTrip(t *testing.T) {
	a := assert.New(t)

	fs := newFileSystem(t, png("a.png", 4, 2), png("b.png", 3, 3))
	session := start(t, fs)

	session.Submit(apitype.RotateRight())
	session.Submit(apitype.FlipHorizontal())
	before := session.Current()
	beforePixels := testimage.Pixels(before.ImageData())
	beforeCursor := session.Cursor()
	beforeQueue := queueNames(session)
	a.Equal(apitype.SizeOf(2, 4), before.Size())

	session.Submit(apitype.Classify(1))

	written, err := afero.ReadFile(fs, "/dst/X/a.png")
	require.Nil(t, err)
	codec := imageloader.NewImageCodec(apitype.NewEncodeOptions(95, false))
	decoded, err := codec.Decode(written)
	require.Nil(t, err)
	a.Equal(beforePixels, testimage.Pixels(decoded))

	session.Submit(apitype.Undo())

	after := session.Current()
	a.Equal(beforeCursor, session.Cursor())
	a.Equal(beforeQueue, queueNames(session))
	a.Equal(before.Item().Path(), after.Item().Path())
	a.Equal(apitype.SizeOf(2, 4), after.Size())
	a.Equal(beforePixels, testimage.Pixels(after.ImageData()))

	restored, err := afero.ReadFile(fs, "/src/a.png")
	a.Nil(err)
	a.Equal(written, restored)
}

func TestSubmit_Transform(t *testing.T) {
	a := assert.New(t)

	session := start(t, newFileSystem(t, png("a.png", 4, 2)))
	original := testimage.Pixels(session.Current().ImageData())

	t.Run("Rotation swaps dimensions", func(t *testing.T) {
		outcome := session.Submit(apitype.RotateLeft())

		a.True(outcome.Transformed)
		a.False(outcome.Advanced)
		a.Equal(AwaitingDecision, session.State())
		a.Equal(apitype.SizeOf(2, 4), session.Current().Size())
		a.Equal([]apitype.Transform{apitype.ROTATE_LEFT}, session.Transforms())
	})
	t.Run("Four rotations are identity", func(t *testing.T) {
		session.Submit(apitype.RotateLeft())
		session.Submit(apitype.RotateLeft())
		session.Submit(apitype.RotateLeft())

		a.Equal(apitype.SizeOf(4, 2), session.Current().Size())
		a.Equal(original, testimage.Pixels(session.Current().ImageData()))
	})
	t.Run("Flip keeps dimensions", func(t *testing.T) {
		session.Submit(apitype.FlipVertical())

		a.Equal(apitype.SizeOf(4, 2), session.Current().Size())
		a.NotEqual(original, testimage.Pixels(session.Current().ImageData()))
	})
	t.Run("Source file is untouched", func(t *testing.T) {
		a.Equal([]string{"a.png"}, queueNames(session))
		a.Empty(session.History())
	})
	t.Run("Preview follows the working buffer", func(t *testing.T) {
		session.Submit(apitype.RotateRight())
		preview := session.Preview(apitype.SizeOf(100, 100))
		a.Equal(apitype.SizeOf(2, 4), apitype.SizeOfImage(preview))
	})
}

func TestSubmit_OutOfRange(t *testing.T) {
	a := assert.New(t)

	session := start(t, newFileSystem(t, png("a.png", 4, 2), png("b.png", 3, 3)))
	session.Submit(apitype.Classify(1))
	historyBefore := len(session.History())
	cursorBefore := session.Cursor()

	for _, id := range []apitype.CategoryId{0, 3, -1, 99} {
		outcome := session.Submit(apitype.Classify(id))

		var rangeErr *apitype.InputOutOfRangeError
		a.True(errors.As(outcome.Rejected, &rangeErr))
		a.Equal(2, rangeErr.Max)
		a.False(outcome.Advanced)
		a.Equal([]string{"b.png"}, queueNames(session))
		a.Equal(cursorBefore, session.Cursor())
		a.Equal(historyBefore, len(session.History()))
		a.Equal(AwaitingDecision, session.State())
	}
}

func TestSubmit_Quarantine(t *testing.T) {
	a := assert.New(t)

	fs := newFileSystem(t, png("a.png", 4, 2), garbage("c.png"), png("d.png", 3, 3))
	session := start(t, fs)

	t.Run("Skips unreadable file without input", func(t *testing.T) {
		outcome := session.Submit(apitype.Classify(1))

		a.True(outcome.Advanced)
		a.Equal(1, len(outcome.Quarantined))
		a.Equal("c.png", outcome.Quarantined[0].Item.FileName())
		a.True(apitype.IsQuarantineError(outcome.Quarantined[0].Reason))

		a.True(exists(fs, "/dst/error/c.png"))
		a.False(exists(fs, "/src/c.png"))
		a.Equal([]string{"d.png"}, queueNames(session))
		a.Equal(1, len(session.History()))
		a.Equal("d.png", session.Current().Name())
		assertConservation(t, session)
	})
	t.Run("Undo skips quarantined files", func(t *testing.T) {
		outcome := session.Submit(apitype.Undo())

		a.True(outcome.Undone)
		a.Equal("a.png", outcome.Item.FileName())
		a.Equal([]string{"a.png", "d.png"}, queueNames(session))
		a.True(exists(fs, "/dst/error/c.png"))
		assertConservation(t, session)
	})
	t.Run("Quarantined files are never in history", func(t *testing.T) {
		outcome := session.Submit(apitype.Undo())

		a.True(errors.Is(outcome.Rejected, apitype.ErrNothingToUndo))
		for _, entry := range session.History() {
			a.NotEqual("c.png", entry.Item.FileName())
		}
		a.Equal(1, session.Stats().Quarantined)
	})
}

func TestSubmit_Conservation(t *testing.T) {
	a := assert.New(t)

	fs := newFileSystem(t,
		png("a.png", 4, 2), garbage("b.png"), png("c.png", 3, 3),
		png("d.png", 500, 2), png("e.png", 2, 2), garbage("f.png"))
	session := start(t, fs)
	assertConservation(t, session)

	commands := []apitype.Command{
		apitype.Classify(1), apitype.RotateLeft(), apitype.Classify(2), apitype.Undo(),
		apitype.Classify(5), apitype.Undo(), apitype.Undo(), apitype.Classify(2),
		apitype.FlipHorizontal(), apitype.Classify(1), apitype.Classify(1), apitype.Undo(),
		apitype.Classify(2),
	}
	for _, command := range commands {
		session.Submit(command)
		assertConservation(t, session)
	}

	stats := session.Stats()
	a.Equal(Completed, session.State())
	a.Equal(6, stats.Initial)
	a.Equal(0, stats.Remaining)
	a.Equal(3, stats.Classified)
	a.Equal(3, stats.Quarantined)
	a.Equal(6, stats.Resolved())
}

func TestSubmitKey(t *testing.T) {
	a := assert.New(t)

	t.Run("Backspace before confirm", func(t *testing.T) {
		fs := newFileSystem(t, png("a.png", 4, 2), png("b.png", 3, 3))
		session := start(t, fs)

		a.True(session.SubmitKey("1").PendingChanged)
		a.Equal("12", session.SubmitKey("2").Pending)
		a.Equal("1", session.SubmitKey("backspace").Pending)
		outcome := session.SubmitKey("space")

		a.True(outcome.Advanced)
		a.Equal("X", outcome.Category.Name())
		a.Equal("", outcome.Pending)
		a.True(exists(fs, "/dst/X/a.png"))
	})
	t.Run("Rejected confirm clears the buffer", func(t *testing.T) {
		session := start(t, newFileSystem(t, png("a.png", 4, 2)))

		session.SubmitKey("9")
		outcome := session.SubmitKey("enter")

		var rangeErr *apitype.InputOutOfRangeError
		a.True(errors.As(outcome.Rejected, &rangeErr))
		a.Equal("", outcome.Pending)
		a.Equal("", session.Pending())
		a.Equal("a.png", session.Current().Name())
	})
	t.Run("Command keys", func(t *testing.T) {
		session := start(t, newFileSystem(t, png("a.png", 4, 2)))

		a.True(session.SubmitKey("d").Transformed)
		a.True(errors.Is(session.SubmitKey("-").Rejected, apitype.ErrNothingToUndo))
		a.True(session.SubmitKey("esc").Aborted)
	})
	t.Run("Single key mode", func(t *testing.T) {
		fs := newFileSystem(t, png("a.png", 4, 2), png("b.png", 3, 3))
		config := newConfig(t)
		config.InputMode = common.SingleKeyInput
		session := startWith(t, fileio.NewFileSystem(fs), config)

		outcome := session.SubmitKey("2")

		a.True(outcome.Advanced)
		a.True(exists(fs, "/dst/Y/a.png"))
		a.True(session.SubmitKey("0").Aborted)
	})
}

func TestSubmit_CommitFailure(t *testing.T) {
	a := assert.New(t)

	t.Run("Write fails", func(t *testing.T) {
		fs := newFileSystem(t, png("a.png", 4, 2), png("b.png", 3, 3))
		fileSystem := &MockFileSystem{FileSystem: fileio.NewFileSystem(fs)}
		session := startWith(t, fileSystem, newConfig(t))
		fileSystem.On("Write", "/dst/X/a.png", mock.Anything).Return(errors.New("disk full")).Once()

		outcome := session.Submit(apitype.Classify(1))

		var commitErr *apitype.CommitError
		a.True(errors.As(outcome.Rejected, &commitErr))
		a.Equal("a.png", commitErr.Name)
		a.False(outcome.Advanced)
		a.True(exists(fs, "/src/a.png"))
		a.False(exists(fs, "/dst/X/a.png"))
		a.Equal([]string{"a.png", "b.png"}, queueNames(session))
		a.Empty(session.History())
		a.Equal("a.png", session.Current().Name())
		assertConservation(t, session)

		fileSystem.On("Write", "/dst/X/a.png", mock.Anything).Return(nil)
		retry := session.Submit(apitype.Classify(1))

		a.True(retry.Advanced)
		a.True(exists(fs, "/dst/X/a.png"))
		fileSystem.AssertExpectations(t)
	})
	t.Run("Source delete fails", func(t *testing.T) {
		fs := newFileSystem(t, png("a.png", 4, 2))
		fileSystem := &MockFileSystem{FileSystem: fileio.NewFileSystem(fs)}
		session := startWith(t, fileSystem, newConfig(t))
		fileSystem.On("Delete", "/src/a.png").Return(errors.New("busy"))
		fileSystem.On("Delete", "/dst/X/a.png").Return(nil)

		outcome := session.Submit(apitype.Classify(1))

		var commitErr *apitype.CommitError
		a.True(errors.As(outcome.Rejected, &commitErr))
		a.True(exists(fs, "/src/a.png"))
		a.False(exists(fs, "/dst/X/a.png"))
		a.Equal([]string{"a.png"}, queueNames(session))
		a.Empty(session.History())
		fileSystem.AssertExpectations(t)
	})
	t.Run("Unknown format", func(t *testing.T) {
		fs := newFileSystem(t, png("a.tif", 4, 2))
		codec := &MockCodec{ImageCodec: imageloader.NewImageCodec(apitype.NewEncodeOptions(95, false))}
		codec.On("Encode", mock.Anything, "/dst/X/a.tif").Return(nil, errors.New("no encoder"))
		session, err := Start(newConfig(t), Dependencies{FileSystem: fileio.NewFileSystem(fs), Codec: codec})
		require.Nil(t, err)

		outcome := session.Submit(apitype.Classify(1))

		var commitErr *apitype.CommitError
		a.True(errors.As(outcome.Rejected, &commitErr))
		a.True(exists(fs, "/src/a.tif"))
		codec.AssertExpectations(t)
	})
	t.Run("Existing destination is replaced", func(t *testing.T) {
		fs := newFileSystem(t, png("a.png", 4, 2))
		require.Nil(t, fs.MkdirAll("/dst/X", 0o755))
		require.Nil(t, afero.WriteFile(fs, "/dst/X/a.png", []byte("old"), 0o644))
		session := start(t, fs)

		outcome := session.Submit(apitype.Classify(1))

		a.True(outcome.Advanced)
		data, _ := afero.ReadFile(fs, "/dst/X/a.png")
		a.NotEqual([]byte("old"), data)
	})
}

func TestSubmit_UndoFailure(t *testing.T) {
	a := assert.New(t)

	fs := newFileSystem(t, png("a.png", 4, 2), png("b.png", 3, 3))
	fileSystem := &MockFileSystem{FileSystem: fileio.NewFileSystem(fs)}
	session := startWith(t, fileSystem, newConfig(t))
	session.Submit(apitype.Classify(1))
	fileSystem.On("Move", "/dst/X/a.png", "/src/a.png").Return(errors.New("read only")).Once()

	outcome := session.Submit(apitype.Undo())

	var undoErr *apitype.UndoError
	a.True(errors.As(outcome.Rejected, &undoErr))
	a.False(outcome.Undone)
	a.Equal(1, len(session.History()))
	a.Equal([]string{"b.png"}, queueNames(session))
	a.True(exists(fs, "/dst/X/a.png"))
	assertConservation(t, session)

	fileSystem.On("Move", "/dst/X/a.png", "/src/a.png").Return(nil)
	retry := session.Submit(apitype.Undo())

	a.True(retry.Undone)
	a.True(exists(fs, "/src/a.png"))
}

func TestSubmit_Lifecycle(t *testing.T) {
	a := assert.New(t)

	t.Run("Completed", func(t *testing.T) {
		session := start(t, newFileSystem(t, png("a.png", 4, 2)))

		outcome := session.Submit(apitype.Classify(1))

		a.True(outcome.Completed)
		a.Equal(Completed, session.State())
		a.Nil(session.Current())
		a.True(errors.Is(session.Submit(apitype.Classify(1)).Rejected, apitype.ErrSessionClosed))
		a.True(errors.Is(session.Submit(apitype.RotateLeft()).Rejected, apitype.ErrSessionClosed))
	})
	t.Run("Undo after completion reopens", func(t *testing.T) {
		session := start(t, newFileSystem(t, png("a.png", 4, 2)))
		session.Submit(apitype.Classify(1))

		outcome := session.Submit(apitype.Undo())

		a.True(outcome.Undone)
		a.False(outcome.Completed)
		a.Equal(AwaitingDecision, session.State())
		a.Equal("a.png", session.Current().Name())
	})
	t.Run("Quit", func(t *testing.T) {
		session := start(t, newFileSystem(t, png("a.png", 4, 2), png("b.png", 3, 3)))

		outcome := session.Submit(apitype.Quit())

		a.True(outcome.Aborted)
		a.Equal(Aborted, session.State())
		a.True(session.State().IsClosed())
		a.Nil(session.Current())
		a.True(errors.Is(session.Submit(apitype.Classify(1)).Rejected, apitype.ErrSessionClosed))
		a.True(errors.Is(session.Submit(apitype.Undo()).Rejected, apitype.ErrSessionClosed))
		a.Equal(2, session.Stats().Remaining)
	})
	t.Run("History limit", func(t *testing.T) {
		config := newConfig(t)
		config.MaxHistory = 1
		fs := newFileSystem(t, png("a.png", 4, 2), png("b.png", 3, 3), png("c.png", 2, 2))
		session := startWith(t, fileio.NewFileSystem(fs), config)

		session.Submit(apitype.Classify(1))
		session.Submit(apitype.Classify(2))
		assertConservation(t, session)
		a.Equal(1, session.Stats().Evicted)

		a.True(session.Submit(apitype.Undo()).Undone)
		a.True(errors.Is(session.Submit(apitype.Undo()).Rejected, apitype.ErrNothingToUndo))
		a.True(exists(fs, "/dst/X/a.png"))
		assertConservation(t, session)
	})
}

func TestStats(t *testing.T) {
	a := assert.New(t)

	session := start(t, newFileSystem(t, png("a.png", 4, 2), png("b.png", 3, 3), garbage("c.png"), png("d.png", 2, 2)))
	session.Submit(apitype.Classify(2))
	session.Submit(apitype.Classify(2))
	session.Submit(apitype.Classify(1))
	session.Submit(apitype.Undo())

	stats := session.Stats()

	a.Equal(4, stats.Initial)
	a.Equal(1, stats.Remaining)
	a.Equal(2, stats.Classified)
	a.Equal(1, stats.Quarantined)
	a.Equal(map[apitype.CategoryId]int{2: 2}, stats.ByCategory)
	a.Equal("3/4 resolved (2 classified, 1 quarantined), 1 remaining", stats.String())
}

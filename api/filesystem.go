package api

// FileSystem is everything the session needs from the disk. Calls are
// synchronous and issued one at a time.
type FileSystem interface {
	Move(src string, dst string) error
	Delete(path string) error
	Write(path string, data []byte) error
	Read(path string) ([]byte, error)
	EnsureDir(path string) error
	// ListDir returns the names of the regular files in the directory in
	// listing order.
	ListDir(path string) ([]string, error)
	Exists(path string) bool
	IsDir(path string) bool
}

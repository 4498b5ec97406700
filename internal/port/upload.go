package port

import "io"

// UploadStore holds request-scoped uploads transiently. Callers own the
// returned path and must Remove it on every exit path.
type UploadStore interface {
	Save(r io.Reader, ext string) (path string, err error)
	Remove(path string) error
}

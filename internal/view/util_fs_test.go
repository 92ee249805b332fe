package view_test

import (
	"io/fs"
	"testing/fstest"
)

// staticFS is a read-only fs.FS of in-memory files, keyed by path.
type staticFS map[string]string

func (s staticFS) Open(name string) (fs.File, error) {
	fsys := make(fstest.MapFS, len(s))
	for path, contents := range s {
		fsys[path] = &fstest.MapFile{Data: []byte(contents)}
	}
	return fsys.Open(name)
}

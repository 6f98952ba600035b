package server

import (
	"net/http"
	"path/filepath"

	"github.com/spf13/afero"
)

// newStaticFs serves the generated pages from the output directory.
// Directory listings are disabled: a directory without an index.html yields
// a 404.
func newStaticFs(dir string) http.Handler {
	fs := afero.NewBasePathFs(afero.NewOsFs(), dir)
	httpFs := afero.NewHttpFs(fs)
	return http.FileServer(neuteredFs{httpFs.Dir("/")})
}

type neuteredFs struct {
	http.FileSystem
}

func (nfs neuteredFs) Open(path string) (http.File, error) {
	f, err := nfs.FileSystem.Open(path)
	if err != nil {
		return nil, err
	}

	s, err := f.Stat()
	if err != nil {
		closeErr := f.Close()
		if closeErr != nil {
			return nil, closeErr
		}

		return nil, err
	}

	if s.IsDir() {
		index, err := nfs.FileSystem.Open(filepath.Join(path, "index.html"))
		if err != nil {
			closeErr := f.Close()
			if closeErr != nil {
				return nil, closeErr
			}

			return nil, err
		}

		err = index.Close()
		if err != nil {
			return nil, err
		}
	}

	return f, nil
}

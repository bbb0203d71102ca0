package locales

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Extract copies a compiled gettext catalogue tree to a temporary directory,
// since gettext can only bind text domains to paths on disk. The returned
// cleanup function removes the directory again.
func Extract(fsys fs.FS) (string, func() error, error) {
	dir, err := os.MkdirTemp("", "termini-locales-")
	if err != nil {
		return "", nil, err
	}

	cleanup := func() error {
		return os.RemoveAll(dir)
	}

	if err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if err := os.MkdirAll(filepath.Join(dir, path), os.ModePerm); err != nil {
				return err
			}

			return nil
		}

		src, err := fsys.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()

		dst, err := os.Create(filepath.Join(dir, path))
		if err != nil {
			return err
		}
		defer dst.Close()

		if _, err := io.Copy(dst, src); err != nil {
			return err
		}

		return nil
	}); err != nil {
		_ = cleanup()

		return "", nil, err
	}

	return dir, cleanup, nil
}

// Compiled lists the languages fsys holds a compiled catalogue for. Source
// .po files only turn into catalogues through go generate.
func Compiled(fsys fs.FS, domain string) ([]string, error) {
	matches, err := fs.Glob(fsys, path.Join("*", "LC_MESSAGES", domain+".mo"))
	if err != nil {
		return nil, err
	}

	languages := make([]string, 0, len(matches))
	for _, m := range matches {
		languages = append(languages, strings.SplitN(m, "/", 2)[0])
	}

	return languages, nil
}

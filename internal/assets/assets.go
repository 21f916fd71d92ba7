// Package assets holds the static files copied into every generated site.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/emerald/internal/errors"
)

// Dirs are the asset directories created at the output root.
var Dirs = []string{"stylesheets", "javascripts", "images"}

//go:embed static
var embedded embed.FS

// Embedded returns the bundled asset tree.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		panic(fmt.Sprintf("embedded assets: %v", err))
	}
	return sub
}

// Resolve returns the bundled assets when dir is empty. A non-empty dir must exist
// and contain every directory in Dirs.
func Resolve(dir string) (fs.FS, error) {
	if dir == "" {
		return Embedded(), nil
	}
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, ferrors.AssetSourceUnreadable(dir, err)
	}
	if !fi.IsDir() {
		return nil, ferrors.AssetSourceUnreadable(dir, fmt.Errorf("not a directory"))
	}
	for _, sub := range Dirs {
		p := filepath.Join(dir, sub)
		fi, err := os.Stat(p)
		if err != nil {
			return nil, ferrors.AssetSourceUnreadable(p, err)
		}
		if !fi.IsDir() {
			return nil, ferrors.AssetSourceUnreadable(p, fmt.Errorf("not a directory"))
		}
	}
	return os.DirFS(dir), nil
}

// Copy writes every file under Dirs from fsys into outDir, overwriting whatever is
// already there. It returns the number of files written.
func Copy(fsys fs.FS, outDir string) (int, error) {
	copied := 0
	for _, root := range Dirs {
		err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return ferrors.AssetSourceUnreadable(p, walkErr)
			}
			dst := filepath.Join(outDir, filepath.FromSlash(p))
			if d.IsDir() {
				if err := os.MkdirAll(dst, 0o750); err != nil {
					return ferrors.CreateDirFailed(dst, err)
				}
				return nil
			}
			if err := copyFile(fsys, p, dst); err != nil {
				return err
			}
			copied++
			return nil
		})
		if err != nil {
			return copied, err
		}
	}
	return copied, nil
}

func copyFile(fsys fs.FS, src, dst string) error {
	data, err := fs.ReadFile(fsys, src)
	if err != nil {
		return ferrors.AssetSourceUnreadable(path.Clean(src), err)
	}
	// #nosec G306 -- site assets are meant to be world-readable.
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return ferrors.WriteFailed(dst, err)
	}
	return nil
}

package repositories

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type FileRepository struct {
	dir string
}

func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{dir: dir}
}

// EnsureDir creates the output directory if it does not exist.
func (r *FileRepository) EnsureDir() error {
	if _, err := os.Stat(r.dir); os.IsNotExist(err) {
		return os.MkdirAll(r.dir, 0755)
	}
	return nil
}

// SaveImage writes image bytes under the output directory and returns the
// path written. When the filename is already taken, a numeric suffix is
// inserted before the extension: image.jpg, image_1.jpg, image_2.jpg, ...
func (r *FileRepository) SaveImage(filename string, data []byte) (string, error) {
	path := filepath.Join(r.dir, filename)

	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		path = filepath.Join(r.dir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

package benchchart

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/parser"
)

// SupportedExtensions lists the input file types, in lookup order within a name.
var SupportedExtensions = []string{".csv", ".tsv", ".xlsx"}

func supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range SupportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Discover returns the first supported data file in dir, by name.
func Discover(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", &models.MalformedInputError{Path: dir, Err: err}
	}
	for _, e := range entries {
		if e.IsDir() || !supported(e.Name()) {
			continue
		}
		return filepath.Join(dir, e.Name()), nil
	}
	return "", &models.MalformedInputError{Path: dir, Err: models.ErrNoInput}
}

// Prefix returns the file name of path without directory and extension.
func Prefix(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load reads the table at path, choosing the reader by extension.
func Load(path string) (*models.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return parser.ReadWorkbook(path)
	}
	return parser.ReadTable(path)
}

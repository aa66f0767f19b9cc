package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// TestdataFS holds the embedded SML fixtures.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	path := fmt.Sprintf("testdata/%s", name)
	data, err := fs.ReadFile(TestdataFS, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// Fixtures returns the names of all embedded .sml files in sorted order.
// Names starting with "error_" hold documents that must fail to parse.
func Fixtures() ([]string, error) {
	entries, err := fs.ReadDir(TestdataFS, "testdata")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && path.Ext(e.Name()) == ".sml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// IsErrorFixture reports whether the fixture must fail to parse.
func IsErrorFixture(name string) bool {
	return strings.HasPrefix(name, "error_")
}

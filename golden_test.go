package sml_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/require"

	sml "github.com/KimNorgaard/go-sml"
	"github.com/KimNorgaard/go-sml/internal/testutil"
)

var update = flag.Bool("update", false, "update golden files")

// TestGolden checks the non-preserving and minified output of every fixture,
// or the error message for fixtures that must fail.
func TestGolden(t *testing.T) {
	names, err := testutil.Fixtures()
	require.NoError(t, err)
	require.NotEmpty(t, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			src, err := testutil.ReadTestData(name)
			require.NoError(t, err)

			var actual string
			doc, err := sml.Parse(string(src))
			if err != nil {
				require.True(t, testutil.IsErrorFixture(name), "unexpected error: %v", err)
				actual = err.Error()
			} else {
				require.False(t, testutil.IsErrorFixture(name), "fixture parsed without error")
				indented, err := sml.MarshalNonPreserving(doc, false)
				require.NoError(t, err)
				minified, err := sml.Minify(doc)
				require.NoError(t, err)
				actual = indented + "\n---\n" + minified
			}

			goldenFile := filepath.Join("testdata", strings.TrimSuffix(name, ".sml")+".golden")
			if *update {
				require.NoError(t, os.WriteFile(goldenFile, []byte(actual), 0o644))
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err, "Golden file not found. Run with -update to create it.")

			if string(expected) != actual {
				dmp := diffmatchpatch.New()
				diffs := dmp.DiffMain(string(expected), actual, false)
				t.Fatalf("output does not match %s:\n%s", goldenFile, dmp.DiffPrettyText(diffs))
			}
		})
	}
}

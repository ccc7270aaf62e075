// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package corpora provides a mechanism for managing golden test corpora,
// i.e., a directory of input files, each of which is paired with files
// holding its expected outputs.
package corpora

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a golden test corpus. This is a way of doing table-driven
// tests where the "table" is in the file system.
type Corpus struct {
	// The root of the test data directory. This path is relative to the file
	// that calls [Corpus.Run].
	Root string

	// An environment variable holding a glob. Test cases whose names match it
	// have their output files rewritten instead of checked.
	Refresh string

	// File extensions (without a dot) of files which define a test case,
	// e.g. "yaml".
	Extensions []string

	// Possible outputs of each test case. If the file for an output is
	// missing, it is expected to be empty.
	Outputs []Output
}

// Output represents one output of a test case.
type Output struct {
	// The extension of the output. This is a suffix to the name of the test
	// case's file; for a test "foo.yaml" and an Extension of "txt", the
	// runner looks for "foo.yaml.txt".
	Extension string

	// The comparison function for this output. May be nil, in which case the
	// values are compared byte-for-byte.
	Compare Compare
}

// Compare is a comparison function between strings, used in [Output].
//
// Returns the empty string if the strings match, otherwise returns an error
// message.
type Compare func(got, want string) string

// Run executes test on every case in the corpus, as a subtest each.
//
// test is given the case's path, relative to the calling test file, and its
// contents, and fills in outputs, which has one element per [Output].
func (c Corpus) Run(t *testing.T, test func(t *testing.T, path, text string, outputs []string)) {
	t.Helper()

	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)
	t.Logf("corpora: searching for files in %q", root)

	var cases []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && slices.Contains(c.Extensions, strings.TrimPrefix(filepath.Ext(p), ".")) {
			cases = append(cases, p)
		}
		return nil
	})
	if err != nil {
		t.Fatal("corpora: error while walking test data:", err)
	}
	if len(cases) == 0 {
		t.Fatalf("corpora: no test cases found in %q", root)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid glob in %s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpora: refreshing test data because %s=%s", c.Refresh, refresh)
	}

	for _, path := range cases {
		name, _ := filepath.Rel(testDir, path)
		name = filepath.ToSlash(name)

		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: error while loading input file %q: %v", path, err)
			}

			outputs := make([]string, len(c.Outputs))
			test(t, name, string(text), outputs)

			refresh := refresh != "" && doublestar.MatchUnvalidated(refresh, name)
			for i, output := range c.Outputs {
				path := fmt.Sprint(path, ".", output.Extension)
				if refresh {
					c.write(t, path, outputs[i])
					continue
				}

				want, err := os.ReadFile(path)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: error while loading output file %q: %v", path, err)
					continue
				}

				compare := output.Compare
				if compare == nil {
					compare = defaultCompare
				}
				if diff := compare(outputs[i], string(want)); diff != "" {
					t.Errorf("output mismatch for %q:\n%s", path, diff)
				}
			}
		})
	}
}

// write replaces the contents of an output file, deleting it if the output
// is empty.
func (Corpus) write(t *testing.T, path, output string) {
	if output == "" {
		err := os.Remove(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			t.Errorf("corpora: error while deleting output file %q: %v", path, err)
		}
		return
	}

	if err := os.WriteFile(path, []byte(output), 0o600); err != nil {
		t.Errorf("corpora: error while writing output file %q: %v", path, err)
	}
}

func defaultCompare(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	// Colorize the diff so it's easier to read.
	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = "\033[1;92m" + line + "\033[0m"
		case strings.HasPrefix(line, "-"):
			lines[i] = "\033[1;91m" + line + "\033[0m"
		}
	}

	return strings.Join(lines, "\n")
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine test file's directory")
	}
	return filepath.Dir(file)
}

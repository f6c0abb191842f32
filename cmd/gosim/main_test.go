package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ppicomplex/ontology"
)

func files(t *testing.T) (isA, ann string) {
	t.Helper()
	dir := t.TempDir()
	isA = filepath.Join(dir, "is_a.txt")
	ann = filepath.Join(dir, "ann.txt")
	require.NoError(t, os.WriteFile(isA, []byte("GO:1 GO:3\nGO:2 GO:3 GO:4\n"), 0o600))
	require.NoError(t, os.WriteFile(ann, []byte("a GO:1 GO:2\nb GO:1 GO:3 GO:4\n"), 0o600))
	return isA, ann
}

func TestRun_Modes(t *testing.T) {
	isA, ann := files(t)
	tests := []struct {
		mode, in, want string
	}{
		{"ancestor", "a b\n", "a\tb\t0.6667\n"},
		{"child", "a b\n", "a\tb\t0.0000\n"},
		{"combined", "a b\n\nb a\n", "a\tb\t0.3333\nb\ta\t0.3333\n"},
		{"term", "GO:1 GO:3\nGO:3 GO:4\n", "GO:1\tGO:3\t0.4444\nGO:3\tGO:4\t0.0000\n"},
		{"wang", "GO:1 GO:3\n", "GO:1\tGO:3\t0.6429\n"},
	}
	for _, tc := range tests {
		t.Run(tc.mode, func(t *testing.T) {
			var out bytes.Buffer
			err := run([]string{"-is-a", isA, "-annotations", ann, "-mode", tc.mode}, strings.NewReader(tc.in), &out)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestRun_Errors(t *testing.T) {
	isA, ann := files(t)
	var out bytes.Buffer

	err := run([]string{"-is-a", isA, "-mode", "jaccard"}, strings.NewReader(""), &out)
	assert.ErrorIs(t, err, errMode)

	err = run([]string{"-is-a", isA, "-annotations", ann, "-mode", "term"}, strings.NewReader("GO:1 GO:9\n"), &out)
	assert.ErrorIs(t, err, ontology.ErrUnknownTerm)

	err = run([]string{"-is-a", isA}, strings.NewReader("a b c\n"), &out)
	assert.ErrorContains(t, err, "line 1")

	err = run(nil, strings.NewReader(""), &out)
	assert.ErrorContains(t, err, "inputs.is_a")
}

func TestRun_FlushesScoredPairsOnError(t *testing.T) {
	isA, ann := files(t)
	var out bytes.Buffer

	err := run([]string{"-is-a", isA, "-annotations", ann, "-mode", "ancestor"}, strings.NewReader("a b\nb a\na b c\n"), &out)
	assert.ErrorContains(t, err, "line 3")
	assert.Equal(t, "a\tb\t0.6667\nb\ta\t0.6667\n", out.String())
}

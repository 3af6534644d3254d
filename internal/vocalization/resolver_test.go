package vocalization

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createModelFiles creates empty model artifacts in a temp directory.
func createModelFiles(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		path := filepath.Join(dir, name+ModelFileExtension)
		require.NoError(t, os.WriteFile(path, []byte{}, 0o644))
	}
	return dir
}

func TestNormalizeSpeciesName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"scientific name", "Turdus merula", "turdus merula"},
		{"underscores", "turdus_merula", "turdus merula"},
		{"uppercase", "TURDUS MERULA", "turdus merula"},
		{"apostrophe", "Cetti's Warbler", "cettis warbler"},
		{"hyphen", "Black-headed Gull", "blackheaded gull"},
		{"extra whitespace", "  Parus   major  ", "parus major"},
		{"mixed separators", "Parus_major ", "parus major"},
		{"empty", "", ""},
		{"punctuation only", "---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeSpeciesName(tt.input))
		})
	}
}

func TestResolverExactMatch(t *testing.T) {
	t.Parallel()

	dir := createModelFiles(t, "Turdus_merula", "Parus_major")
	r := NewNameResolver(dir)

	tests := []string{"Turdus merula", "turdus_merula", "TURDUS MERULA", "Turdus_Merula"}
	for _, label := range tests {
		path, ok := r.Resolve(label)
		assert.True(t, ok, "label %q should resolve", label)
		assert.Equal(t, filepath.Join(dir, "Turdus_merula"+ModelFileExtension), path)
	}
}

func TestResolverFuzzyMatch(t *testing.T) {
	t.Parallel()

	dir := createModelFiles(t, "Turdus_merula")
	r := NewNameResolver(dir)

	// Partial names match through the substring fallback.
	path, ok := r.Resolve("merula")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "Turdus_merula"+ModelFileExtension), path)

	// A label containing the key matches as well.
	path, ok = r.Resolve("Turdus merula mauritanicus")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "Turdus_merula"+ModelFileExtension), path)
}

func TestResolverExactBeatsFuzzy(t *testing.T) {
	t.Parallel()

	// "Parus major" is a substring-relative of "Parus_major_minor"; the
	// exact key must win over any fuzzy candidate.
	dir := createModelFiles(t, "Parus_major", "Parus_major_minor")
	r := NewNameResolver(dir)

	path, ok := r.Resolve("Parus major")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "Parus_major"+ModelFileExtension), path)
}

func TestResolverFuzzyDeterministic(t *testing.T) {
	t.Parallel()

	// Both keys contain "major"; the lexicographically first key must win
	// every time.
	dir := createModelFiles(t, "Zz_major", "Aa_major")
	r := NewNameResolver(dir)

	for range 10 {
		path, ok := r.Resolve("major")
		require.True(t, ok)
		assert.Equal(t, filepath.Join(dir, "Aa_major"+ModelFileExtension), path)
	}
}

func TestResolverNoMatch(t *testing.T) {
	t.Parallel()

	dir := createModelFiles(t, "Turdus_merula")
	r := NewNameResolver(dir)

	_, ok := r.Resolve("Cygnus olor")
	assert.False(t, ok)
	assert.False(t, r.HasModel("Cygnus olor"))

	_, ok = r.Resolve("")
	assert.False(t, ok)
}

func TestResolverLegacySuffix(t *testing.T) {
	t.Parallel()

	dir := createModelFiles(t, "Turdus_merula_cnn_v1")
	r := NewNameResolver(dir)

	path, ok := r.Resolve("Turdus merula")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "Turdus_merula_cnn_v1"+ModelFileExtension), path)
}

func TestResolverMissingDirectory(t *testing.T) {
	t.Parallel()

	r := NewNameResolver(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Equal(t, 0, r.ModelCount())
	assert.False(t, r.HasModel("Turdus merula"))
}

func TestResolverKnownSpeciesSorted(t *testing.T) {
	t.Parallel()

	dir := createModelFiles(t, "Turdus_merula", "Aa_species", "Parus_major")
	r := NewNameResolver(dir)

	species := r.KnownSpecies()
	require.Len(t, species, 3)
	assert.Equal(t, []string{"aa species", "parus major", "turdus merula"}, species)
	assert.Equal(t, 3, r.ModelCount())
}

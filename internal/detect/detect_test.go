package detect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir string, parts ...string) {
	t.Helper()
	path := filepath.Join(append([]string{dir}, parts...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}

func TestStack(t *testing.T) {
	cases := []struct {
		name  string
		files [][]string
		want  string
	}{
		{"streamlit", [][]string{{"streamlit_app.py"}}, "streamlit"},
		{"next", [][]string{{"next.config.mjs"}}, "next"},
		{"vite", [][]string{{"vite.config.ts"}}, "vite"},
		{"fastapi", [][]string{{"app", "main.py"}}, "fastapi"},
		{"python", [][]string{{"requirements.txt"}}, "python"},
		{"static", [][]string{{"index.html"}, {"main.js"}}, "static"},
		{"empty", nil, "unknown"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tc.files {
				touch(t, dir, f...)
			}
			assert.Equal(t, tc.want, Stack(dir))
		})
	}
}

func TestStackPrecedence(t *testing.T) {
	// Streamlit marker wins over a python marker in the same repo.
	dir := t.TempDir()
	touch(t, dir, "streamlit_app.py")
	touch(t, dir, "requirements.txt")
	assert.Equal(t, "streamlit", Stack(dir))
}

func TestPackageManager(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, "", PackageManager(dir))

	touch(t, dir, "yarn.lock")
	assert.Equal(t, "yarn", PackageManager(dir))

	touch(t, dir, "package-lock.json")
	assert.Equal(t, "npm", PackageManager(dir))

	touch(t, dir, "pnpm-lock.yaml")
	assert.Equal(t, "pnpm", PackageManager(dir))
}

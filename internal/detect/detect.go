// Package detect guesses an app's stack from the files in its repo root.
package detect

import (
	"os"
	"path/filepath"
)

func exists(dir string, parts ...string) bool {
	_, err := os.Stat(filepath.Join(append([]string{dir}, parts...)...))
	return err == nil
}

// Stack returns the detected stack name for a repo directory, "unknown"
// when nothing matches.
func Stack(dir string) string {
	switch {
	case exists(dir, "streamlit_app.py"):
		return "streamlit"
	case exists(dir, "next.config.js"), exists(dir, "next.config.mjs"), exists(dir, "next.config.ts"):
		return "next"
	case exists(dir, "vite.config.js"), exists(dir, "vite.config.ts"), exists(dir, "vite.config.mjs"):
		return "vite"
	case exists(dir, "app", "main.py"):
		return "fastapi"
	case exists(dir, "pyproject.toml"), exists(dir, "requirements.txt"):
		return "python"
	case exists(dir, "index.html") && (exists(dir, "app.js") || exists(dir, "main.js")):
		return "static"
	default:
		return "unknown"
	}
}

// PackageManager returns the JS package manager implied by the lockfile,
// "" when none is present.
func PackageManager(dir string) string {
	switch {
	case exists(dir, "pnpm-lock.yaml"):
		return "pnpm"
	case exists(dir, "package-lock.json"):
		return "npm"
	case exists(dir, "yarn.lock"):
		return "yarn"
	default:
		return ""
	}
}

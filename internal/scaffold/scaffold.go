// Package scaffold generates a minimal runnable project when no generator
// tool is installed, so the pack/publish pipeline always has something to
// operate on.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Result tells the caller what the scaffolder produced.
type Result struct {
	OK        bool
	OutputDir string
	Message   string
}

// Fallback writes a tiny runnable Python project into outDir.
func Fallback(prompt, outDir string) (Result, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return Result{}, fmt.Errorf("failed to create scaffold directory: %w", err)
	}

	escaped := strings.ReplaceAll(prompt, `'`, `\'`)
	mainPy := "def main():\n" +
		"    print('Hello from Launchpad!')\n" +
		fmt.Sprintf("    print('Prompt: %s')\n\n", escaped) +
		"if __name__ == '__main__':\n" +
		"    main()\n"

	if err := os.WriteFile(filepath.Join(outDir, "main.py"), []byte(mainPy), 0644); err != nil {
		return Result{}, fmt.Errorf("failed to write main.py: %w", err)
	}
	readme := "# Fallback Scaffold\n\n" +
		"No generator was available, so Launchpad created a tiny runnable project.\n"
	if err := os.WriteFile(filepath.Join(outDir, "README.md"), []byte(readme), 0644); err != nil {
		return Result{}, fmt.Errorf("failed to write README.md: %w", err)
	}

	return Result{
		OK:        true,
		OutputDir: outDir,
		Message:   "Fallback scaffold created (no generator installed).",
	}, nil
}

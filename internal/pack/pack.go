// Package pack turns an app directory into a zip artifact with an
// integrity manifest, excluding build and VCS noise.
package pack

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/triad369/launchpad/internal/logger"
	"github.com/triad369/launchpad/internal/manifest"
)

var packLogs = logger.PackageLogger("pack", "📦 PACK")

// zipEpoch is the fixed modification time stamped onto every archive
// entry. Repeated packs of unchanged content must be byte-for-byte stable,
// so on-disk mtimes never leak into the archive.
var zipEpoch = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

var alwaysExcluded = map[string]bool{
	".git":          true,
	"node_modules":  true,
	".venv":         true,
	"venv":          true,
	"__pycache__":   true,
	".pytest_cache": true,
	".turbo":        true,
	".cache":        true,
}

var buildOutput = map[string]bool{
	"dist":  true,
	"build": true,
	".next": true,
}

// Excluded reports whether a forward-slash relative path should be left
// out of the artifact. Build output directories are kept only when
// includeBuild is set.
func Excluded(rel string, includeBuild bool) bool {
	parts := strings.Split(strings.ReplaceAll(rel, "\\", "/"), "/")
	for _, p := range parts {
		if alwaysExcluded[p] {
			return true
		}
		if !includeBuild && buildOutput[p] {
			return true
		}
	}
	name := parts[len(parts)-1]
	return strings.HasSuffix(name, ".db") || strings.HasSuffix(name, ".sqlite")
}

// Meta carries the manifest metadata for a pack run.
type Meta struct {
	ProjectName  string
	Target       string
	Prompt       string
	IncludeBuild bool
}

// ZipDir writes a deterministic deflate archive of dir to zipPath: paths
// sorted, forward slashes, files only (no explicit directory entries).
func ZipDir(dir, zipPath string, includeBuild bool) error {
	files, err := manifest.ListFiles(dir, func(rel string) bool {
		return Excluded(rel, includeBuild)
	})
	if err != nil {
		return err
	}
	// The walk excludes the manifest; the archive must carry it.
	if _, err := os.Stat(filepath.Join(dir, manifest.FileName)); err == nil {
		files = append([]string{manifest.FileName}, files...)
	}

	if err := os.MkdirAll(filepath.Dir(zipPath), 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}
	out, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("failed to create archive %s: %w", zipPath, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, rel := range files {
		if err := addFile(zw, dir, rel); err != nil {
			zw.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}

func addFile(zw *zip.Writer, dir, rel string) error {
	hdr := &zip.FileHeader{
		Name:     rel,
		Method:   zip.Deflate,
		Modified: zipEpoch,
	}
	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("failed to add %s to archive: %w", rel, err)
	}
	f, err := os.Open(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", rel, err)
	}
	defer f.Close()
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to compress %s: %w", rel, err)
	}
	return nil
}

func unchanged(prev, next manifest.Manifest) bool {
	if prev.ProjectName != next.ProjectName || prev.Target != next.Target ||
		prev.PromptSHA256 != next.PromptSHA256 || len(prev.Files) != len(next.Files) {
		return false
	}
	for i, f := range prev.Files {
		if next.Files[i] != f {
			return false
		}
	}
	return true
}

// Pack builds the manifest, writes it into dir and zips the directory.
// Returns the manifest path.
func Pack(dir, zipPath string, meta Meta) (string, error) {
	opts := []manifest.Option{
		manifest.WithExclude(func(rel string) bool {
			return Excluded(rel, meta.IncludeBuild)
		}),
	}
	m, err := manifest.Build(dir, meta.ProjectName, meta.Target, meta.Prompt, opts...)
	if err != nil {
		return "", err
	}
	// Repacking unchanged content must produce a byte-identical archive, so
	// keep the previous timestamp when nothing else moved.
	if prev, err := manifest.Read(dir); err == nil && unchanged(prev, m) {
		m.Timestamp = prev.Timestamp
	}
	manifestPath, err := manifest.Write(dir, m)
	if err != nil {
		return "", err
	}
	if err := ZipDir(dir, zipPath, meta.IncludeBuild); err != nil {
		return "", err
	}
	packLogs.Success("Packed %s → %s (%d files)", dir, zipPath, len(m.Files))
	return manifestPath, nil
}

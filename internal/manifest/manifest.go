// Package manifest fingerprints packaged directories: an ordered list of
// (path, sha256) pairs that proves a downloaded artifact is byte-identical
// to what was packed.
package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileName is the fixed manifest filename inside a packaged directory. The
// manifest always excludes itself from its own file list.
const FileName = "artifact.manifest.json"

const hashChunkSize = 8192

// FileEntry pairs a forward-slash relative path with its content hash.
type FileEntry struct {
	Path   string `json:"path"`
	SHA256 string `json:"sha256"`
}

// Manifest is a packaged artifact's integrity fingerprint.
type Manifest struct {
	ProjectName  string      `json:"project_name"`
	Target       string      `json:"target"`
	PromptSHA256 string      `json:"prompt_sha256"`
	Timestamp    string      `json:"timestamp"`
	Files        []FileEntry `json:"files"`
}

// Option customizes manifest building.
type Option func(*builder)

type builder struct {
	exclude func(rel string) bool
	now     func() time.Time
}

// WithExclude skips files whose relative path matches the predicate.
func WithExclude(fn func(rel string) bool) Option {
	return func(b *builder) { b.exclude = fn }
}

// WithTimestamp pins the manifest timestamp, for reproducible packs.
func WithTimestamp(ts time.Time) Option {
	return func(b *builder) { b.now = func() time.Time { return ts } }
}

// HashReader streams a reader through SHA-256 in fixed-size chunks.
func HashReader(r io.Reader) (string, error) {
	h := sha256.New()
	buf := make([]byte, hashChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashFile streams a file through SHA-256 without buffering it whole.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return HashReader(f)
}

// HashBytes hashes a byte slice.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ListFiles returns the forward-slash relative paths of every regular file
// under dir, sorted, minus the manifest file and anything the exclude
// predicate rejects. Directories are not recorded.
func ListFiles(dir string, exclude func(rel string) bool) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == FileName {
			return nil
		}
		if exclude != nil && exclude(rel) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

// Build hashes every file under dir into a fresh manifest.
func Build(dir, projectName, target, prompt string, opts ...Option) (Manifest, error) {
	b := builder{now: time.Now}
	for _, opt := range opts {
		opt(&b)
	}

	files, err := ListFiles(dir, b.exclude)
	if err != nil {
		return Manifest{}, err
	}

	entries := make([]FileEntry, 0, len(files))
	for _, rel := range files {
		digest, err := HashFile(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			return Manifest{}, fmt.Errorf("failed to hash %s: %w", rel, err)
		}
		entries = append(entries, FileEntry{Path: rel, SHA256: digest})
	}

	return Manifest{
		ProjectName:  projectName,
		Target:       target,
		PromptSHA256: HashBytes([]byte(prompt)),
		Timestamp:    b.now().UTC().Format(time.RFC3339),
		Files:        entries,
	}, nil
}

// Write serializes the manifest to its fixed filename inside dir.
func Write(dir string, m Manifest) (string, error) {
	path := filepath.Join(dir, FileName)
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}
	return path, nil
}

// Read loads the manifest from its fixed filename inside dir.
func Read(dir string) (Manifest, error) {
	return decodeFile(filepath.Join(dir, FileName))
}

func decodeFile(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return m, nil
}

// normalize maps any recorded path onto the forward-slash form used at
// pack time so packers and verifiers agree.
func normalize(rel string) string {
	return strings.ReplaceAll(rel, "\\", "/")
}

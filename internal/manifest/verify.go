package manifest

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// VerifyDir recomputes every digest recorded in the manifest inside dir
// and accumulates all mismatches rather than stopping at the first, so the
// operator sees every bad file in one pass. ok iff the error list is empty.
func VerifyDir(dir string) (bool, []string) {
	m, err := Read(dir)
	if err != nil {
		return false, []string{err.Error()}
	}
	return verifyEntries(m, func(rel string) (io.ReadCloser, error) {
		return os.Open(filepath.Join(dir, filepath.FromSlash(rel)))
	})
}

// VerifyZip checks a packed archive against the manifest it carries.
// Entries are looked up by the same forward-slash relative paths used at
// pack time.
func VerifyZip(zipPath string) (bool, []string) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return false, []string{fmt.Sprintf("failed to open zip: %v", err)}
	}
	defer r.Close()

	m, err := readZipManifest(&r.Reader)
	if err != nil {
		return false, []string{err.Error()}
	}

	index := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		index[normalize(f.Name)] = f
	}

	return verifyEntries(m, func(rel string) (io.ReadCloser, error) {
		f, ok := index[rel]
		if !ok {
			return nil, os.ErrNotExist
		}
		return f.Open()
	})
}

// ReadZip extracts just the manifest from an archive.
func ReadZip(zipPath string) (Manifest, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to open zip: %w", err)
	}
	defer r.Close()
	return readZipManifest(&r.Reader)
}

func readZipManifest(r *zip.Reader) (Manifest, error) {
	for _, f := range r.File {
		if normalize(f.Name) != FileName {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return Manifest{}, fmt.Errorf("failed to open %s in zip: %w", FileName, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return Manifest{}, fmt.Errorf("failed to read %s in zip: %w", FileName, err)
		}
		var m Manifest
		if err := json.Unmarshal(data, &m); err != nil {
			return Manifest{}, fmt.Errorf("invalid manifest in zip: %w", err)
		}
		return m, nil
	}
	return Manifest{}, fmt.Errorf("missing %s in zip", FileName)
}

func verifyEntries(m Manifest, open func(rel string) (io.ReadCloser, error)) (bool, []string) {
	var errs []string
	for _, entry := range m.Files {
		rel := normalize(entry.Path)
		rc, err := open(rel)
		if err != nil {
			errs = append(errs, fmt.Sprintf("missing file: %s", rel))
			continue
		}
		actual, err := HashReader(rc)
		rc.Close()
		if err != nil {
			errs = append(errs, fmt.Sprintf("unreadable file: %s", rel))
			continue
		}
		if actual != entry.SHA256 {
			errs = append(errs, fmt.Sprintf("hash mismatch: %s", rel))
		}
	}
	return len(errs) == 0, errs
}

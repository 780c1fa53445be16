// Package manifest records SHA-256 checksums of pipeline artifacts so a
// rerun can be verified byte-identical to the previous one.
package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// Verification errors.
var (
	ErrMissingArtifact  = errors.New("artifact missing")
	ErrChecksumMismatch = errors.New("artifact checksum mismatch")
)

// Artifact is the recorded state of one output file. Path is relative to
// the manifest's base directory, with forward slashes.
type Artifact struct {
	Path   string `json:"path"`
	SHA256 string `json:"sha256"`
	Size   int64  `json:"size"`
}

// Manifest lists every artifact of one pipeline run, sorted by path. It
// carries no timestamp so identical runs produce identical manifests.
type Manifest struct {
	Artifacts []Artifact `json:"artifacts"`
}

// Build hashes the given files (paths relative to baseDir) into a manifest.
func Build(baseDir string, paths []string) (*Manifest, error) {
	m := &Manifest{Artifacts: make([]Artifact, 0, len(paths))}

	for _, rel := range paths {
		sum, size, err := hashFile(filepath.Join(baseDir, rel))
		if err != nil {
			return nil, fmt.Errorf("hashing %s: %w", rel, err)
		}

		m.Artifacts = append(m.Artifacts, Artifact{
			Path:   filepath.ToSlash(rel),
			SHA256: sum,
			Size:   size,
		})
	}

	sort.Slice(m.Artifacts, func(i, j int) bool {
		return m.Artifacts[i].Path < m.Artifacts[j].Path
	})

	return m, nil
}

// Write persists the manifest as indented JSON.
func (m *Manifest) Write(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}

	data = append(data, '\n')

	return os.WriteFile(path, data, 0644)
}

// Read loads a previously written manifest.
func Read(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	m := &Manifest{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	return m, nil
}

// Verify recomputes every artifact checksum against the recorded one.
func (m *Manifest) Verify(baseDir string) error {
	for _, a := range m.Artifacts {
		sum, _, err := hashFile(filepath.Join(baseDir, filepath.FromSlash(a.Path)))
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMissingArtifact, a.Path, err)
		}

		if sum != a.SHA256 {
			return fmt.Errorf("%w: %s", ErrChecksumMismatch, a.Path)
		}
	}

	return nil
}

func hashFile(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	h := sha256.New()

	size, err := io.Copy(h, f)
	if err != nil {
		return "", 0, err
	}

	return hex.EncodeToString(h.Sum(nil)), size, nil
}

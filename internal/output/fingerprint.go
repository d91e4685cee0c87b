package output

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"

	"github.com/concero/chain-registry/internal/infra/filesystem"
	"github.com/olekukonko/tablewriter"
)

// Digest returns the 0x-prefixed lower-case hex SHA-256 of data.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return "0x" + hex.EncodeToString(sum[:])
}

// FingerprintFiles recomputes the digests of already written artifacts.
func FingerprintFiles(reader filesystem.Reader, dir string, names []string) ([]Fingerprint, error) {
	fingerprints := make([]Fingerprint, 0, len(names))
	for _, name := range names {
		data, err := reader.ReadBytes(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("could not fingerprint '%s': %w", name, err)
		}
		fingerprints = append(fingerprints, Fingerprint{Artifact: name, SHA256: Digest(data), Bytes: len(data)})
	}
	return fingerprints, nil
}

// PrintFingerprints renders fingerprints as a table.
func PrintFingerprints(w io.Writer, fingerprints []Fingerprint) error {
	table := tablewriter.NewWriter(w)
	table.Header("artifact", "sha256", "bytes")

	for _, f := range fingerprints {
		if err := table.Append([]string{f.Artifact, f.SHA256, fmt.Sprint(f.Bytes)}); err != nil {
			return fmt.Errorf("could not render fingerprint of '%s': %w", f.Artifact, err)
		}
	}

	return table.Render()
}

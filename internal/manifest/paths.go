package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// GeneratePath creates a timestamped manifest filename in dir.
func GeneratePath(dir string) string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(dir, fmt.Sprintf("manifest_%s.yaml", timestamp))
}

// FindLatest finds the most recent manifest file in dir.
func FindLatest(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read manifest directory: %w", err)
	}

	var manifests []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".yaml") {
			manifests = append(manifests, filepath.Join(dir, entry.Name()))
		}
	}

	if len(manifests) == 0 {
		return "", fmt.Errorf("no manifest files found in %s", dir)
	}

	// Sort by modification time (newest first)
	sort.Slice(manifests, func(i, j int) bool {
		infoI, _ := os.Stat(manifests[i])
		infoJ, _ := os.Stat(manifests[j])
		return infoI.ModTime().After(infoJ.ModTime())
	})

	return manifests[0], nil
}

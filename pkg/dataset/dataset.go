package dataset

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Splits are the dataset partitions, in upload order.
var Splits = []string{"train", "val", "test"}

// Classes are the labeled categories, in upload order.
var Classes = []string{"WithMask", "WithoutMask"}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// IsImage reports whether name carries a recognized image extension.
func IsImage(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// ScanResult summarizes one walk over the split/class tree.
type ScanResult struct {
	Root    string
	Missing []string                  // relative paths of absent directories, in walk order
	Counts  map[string]map[string]int // split -> class -> image count
	Total   int
}

// Valid reports whether every split and class directory exists.
func (r *ScanResult) Valid() bool {
	return len(r.Missing) == 0
}

// Count returns the image count for a split/class pair and whether the
// directory was present.
func (r *ScanResult) Count(split, class string) (int, bool) {
	classes, ok := r.Counts[split]
	if !ok {
		return 0, false
	}
	count, ok := classes[class]
	return count, ok
}

// SplitMissing reports whether an entire split directory is absent.
func (r *ScanResult) SplitMissing(split string) bool {
	_, ok := r.Counts[split]
	return !ok
}

// Scan walks the fixed split/class layout under root and counts image
// files per class. Missing directories are recorded, not errors; callers
// choose how strict to be about them.
func Scan(root string) (*ScanResult, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("dataset path not found: %s", root)
	}

	result := &ScanResult{
		Root:   root,
		Counts: make(map[string]map[string]int),
	}

	for _, split := range Splits {
		splitDir := filepath.Join(root, split)
		if _, err := os.Stat(splitDir); err != nil {
			result.Missing = append(result.Missing, split)
			continue
		}
		result.Counts[split] = make(map[string]int)

		for _, class := range Classes {
			classDir := filepath.Join(splitDir, class)
			if _, err := os.Stat(classDir); err != nil {
				result.Missing = append(result.Missing, path.Join(split, class))
				continue
			}

			images, err := ListImages(classDir)
			if err != nil {
				return nil, err
			}
			result.Counts[split][class] = len(images)
			result.Total += len(images)
		}
	}

	return result, nil
}

// ListImages returns the image files directly under dir, sorted by name.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var images []string
	for _, entry := range entries {
		if entry.IsDir() || !IsImage(entry.Name()) {
			continue
		}
		images = append(images, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(images)
	return images, nil
}

package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v2"
)

// DescriptorFile is the name of the generated descriptor at the dataset root.
const DescriptorFile = "data.yaml"

// Descriptor is the data.yaml schema consumed by downstream tooling.
type Descriptor struct {
	Path        string   `yaml:"path"`
	Train       string   `yaml:"train"`
	Val         string   `yaml:"val"`
	Test        string   `yaml:"test"`
	ClassCount  int      `yaml:"nc"`
	Names       []string `yaml:"names"`
	DatasetType string   `yaml:"dataset_type"`
}

// NewDescriptor builds the descriptor for the dataset rooted at root.
func NewDescriptor(root string) (*Descriptor, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving dataset path: %w", err)
	}

	return &Descriptor{
		Path:        abs,
		Train:       "train",
		Val:         "val",
		Test:        "test",
		ClassCount:  len(Classes),
		Names:       Classes,
		DatasetType: "classification",
	}, nil
}

// WriteDescriptor writes data.yaml at the dataset root and returns its path.
// Output is byte-identical across runs for the same root.
func WriteDescriptor(root string) (string, error) {
	descriptor, err := NewDescriptor(root)
	if err != nil {
		return "", err
	}

	out, err := yaml.Marshal(descriptor)
	if err != nil {
		return "", fmt.Errorf("marshalling descriptor: %w", err)
	}

	target := filepath.Join(root, DescriptorFile)
	if err := os.WriteFile(target, out, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", target, err)
	}
	return target, nil
}

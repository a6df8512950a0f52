package driver

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest describes the expected outcome of running a program fixture. It
// sits next to the program file as expect.yaml.
type Manifest struct {
	Description string      `yaml:"description"`
	Expect      Expectation `yaml:"expect"`
}

// Expectation holds the observable result: the printed lines on success, or
// the error kind when the run must fail.
type Expectation struct {
	Stdout []string `yaml:"stdout"`
	Error  string   `yaml:"error"`
}

// LoadManifest reads and parses an expect.yaml file. A missing file yields
// an empty manifest, mirroring how optional fixture manifests behave.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Manifest{}, nil
		}
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &manifest, nil
}

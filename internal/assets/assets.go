package assets

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
)

//go:embed sample-addressbook.yaml
var sampleAddressBook []byte

const SampleFileName = "addressbook.yaml"

// WriteSampleIfMissing seeds targetDir with a sample address book unless a
// YAML file is already there.
func WriteSampleIfMissing(targetDir string) error {
	if targetDir == "" {
		return errors.New("empty targetDir")
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return err
	}
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(targetDir, pattern))
		if err != nil {
			return err
		}
		if len(matches) > 0 {
			return nil
		}
	}
	return os.WriteFile(filepath.Join(targetDir, SampleFileName), sampleAddressBook, 0o644)
}

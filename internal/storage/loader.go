package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/addrbook/addrbook-cli/internal/logging"
	"github.com/addrbook/addrbook-cli/internal/person"
)

// LoadDir reads every *.yaml / *.yml file directly inside dir.
func LoadDir(dir string) ([]person.Person, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	files = sortedYAML(files)
	if len(files) == 0 {
		return nil, fmt.Errorf("no YAML address book files found in %s", dir)
	}
	return LoadFromFiles(files)
}

// LoadFromFiles merges the persons of all files in lexical file order and
// validates the result against the embedded schema. Two persons with the same
// name (ignoring case) or the same id are rejected, naming both files.
func LoadFromFiles(files []string) ([]person.Person, error) {
	combined := AddressBook{}
	seen := map[string]string{}
	for _, f := range sortedYAML(files) {
		b, err := os.ReadFile(f)
		if err != nil {
			return nil, err
		}
		var part AddressBook
		if err := yaml.Unmarshal(b, &part); err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
		if err := checkDuplicatesWithFiles(seen, part, f); err != nil {
			return nil, err
		}
		logging.Debug(fmt.Sprintf("loaded %d persons from %s", len(part.Persons), f))
		combined.Persons = append(combined.Persons, part.Persons...)
	}
	if err := ValidateAgainstSchema(combined); err != nil {
		return nil, err
	}
	out := make([]person.Person, 0, len(combined.Persons))
	for _, r := range combined.Persons {
		out = append(out, r.Person())
	}
	return out, nil
}

func sortedYAML(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		lf := strings.ToLower(f)
		if strings.HasSuffix(lf, ".yaml") || strings.HasSuffix(lf, ".yml") {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

func checkDuplicatesWithFiles(seen map[string]string, part AddressBook, file string) error {
	local := map[string]struct{}{}
	for _, r := range part.Persons {
		p := r.Person()
		checks := []struct{ key, what string }{
			{"name:" + nameKey(p.Name), "person '" + p.Name + "'"},
			{"id:" + p.ID, "id '" + p.ID + "'"},
		}
		for _, c := range checks {
			key, what := c.key, c.what
			if _, ok := local[key]; ok {
				return fmt.Errorf("duplicate %s found in %s", what, file)
			}
			local[key] = struct{}{}
			if prev, ok := seen[key]; ok {
				return fmt.Errorf("duplicate %s found in %s and %s", what, prev, file)
			}
		}
	}
	for key := range local {
		seen[key] = file
	}
	return nil
}

func nameKey(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/addrbook/addrbook-cli/internal/person"
)

func TestLoadFromFiles_MergeOK(t *testing.T) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "a.yaml")
	f2 := filepath.Join(dir, "b.yaml")
	if err := os.WriteFile(f1, []byte(`
persons:
  - name: Alice Pauline
    phone: "94351253"
    email: alice@example.com
    tags: [friends]
`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := os.WriteFile(f2, []byte(`
persons:
  - name: Benson Meier
    address: "311, Clementi Ave 2, #02-25"
    tags: "owesMoney, friends"
`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	got, err := LoadFromFiles([]string{f2, f1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 persons, got %d", len(got))
	}
	if got[0].Name != "Alice Pauline" {
		t.Fatalf("files should load in lexical order, first is %q", got[0].Name)
	}
	if diff := cmp.Diff([]person.Tag{"owesMoney", "friends"}, got[1].Tags); diff != "" {
		t.Fatalf("scalar tags not split (-want +got):\n%s", diff)
	}
	if got[0].ID != person.IDFor("Alice Pauline") {
		t.Fatalf("id not derived: %q", got[0].ID)
	}
}

func TestLoadFromFiles_DuplicateAcrossFiles_ErrorMentionsFiles(t *testing.T) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "a.yaml")
	f2 := filepath.Join(dir, "b.yaml")
	if err := os.WriteFile(f1, []byte(`
persons:
  - name: Alice
`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := os.WriteFile(f2, []byte(`
persons:
  - name: alice
`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	_, err := LoadFromFiles([]string{f1, f2})
	if err == nil {
		t.Fatalf("expected duplicate error")
	}
	if !strings.Contains(err.Error(), "a.yaml") || !strings.Contains(err.Error(), "b.yaml") {
		t.Fatalf("error should mention both files, got: %v", err)
	}
}

func TestLoadFromFiles_DuplicateIDAcrossFiles_ErrorMentionsFiles(t *testing.T) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "a.yaml")
	f2 := filepath.Join(dir, "b.yaml")
	if err := os.WriteFile(f1, []byte(`
persons:
  - id: shared-id
    name: Alice
`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := os.WriteFile(f2, []byte(`
persons:
  - id: shared-id
    name: Bob
`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	_, err := LoadFromFiles([]string{f1, f2})
	if err == nil {
		t.Fatalf("expected duplicate id error")
	}
	if !strings.Contains(err.Error(), "shared-id") || !strings.Contains(err.Error(), "a.yaml") || !strings.Contains(err.Error(), "b.yaml") {
		t.Fatalf("error should name the id and both files, got: %v", err)
	}
}

func TestLoadFromFiles_ExplicitIDClashesWithDerivedID(t *testing.T) {
	f := filepath.Join(t.TempDir(), "a.yaml")
	body := "persons:\n  - name: Alice\n  - id: " + person.IDFor("Alice") + "\n    name: Alicia\n"
	if err := os.WriteFile(f, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadFromFiles([]string{f}); err == nil || !strings.Contains(err.Error(), "duplicate id") {
		t.Fatalf("want duplicate id error, got %v", err)
	}
}

func TestLoadFromFiles_DuplicateInOneFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "a.yaml")
	if err := os.WriteFile(f, []byte(`
persons:
  - name: Bob
  - name: Bob
`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadFromFiles([]string{f}); err == nil {
		t.Fatalf("expected duplicate error")
	}
}

func TestLoadFromFiles_SchemaError(t *testing.T) {
	f := filepath.Join(t.TempDir(), "a.yaml")
	if err := os.WriteFile(f, []byte(`
persons:
  - name: Carol
    email: not-an-email
`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	_, err := LoadFromFiles([]string{f})
	if err == nil || !strings.Contains(err.Error(), "schema validation failed") {
		t.Fatalf("expected schema error, got %v", err)
	}
}

func TestLoadFromFiles_BadYAML(t *testing.T) {
	f := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(f, []byte("persons: [\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	_, err := LoadFromFiles([]string{f})
	if err == nil || !strings.Contains(err.Error(), "broken.yaml") {
		t.Fatalf("error should name the file, got %v", err)
	}
}

func TestLoadDir_IgnoresNonYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "people.yml"), []byte("persons:\n  - name: Dan\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not yaml"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.yaml"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	got, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Dan" {
		t.Fatalf("unexpected persons: %+v", got)
	}
}

func TestLoadDir_Empty(t *testing.T) {
	if _, err := LoadDir(t.TempDir()); err == nil {
		t.Fatalf("expected error for empty dir")
	}
}

package person

import (
	"strings"

	"github.com/google/uuid"
)

type Tag string

type Person struct {
	ID      string
	Name    string
	Phone   string
	Email   string
	Address string
	Tags    []Tag
}

// IDFor derives a stable ID from a contact name, so files without ids still
// produce the same identity across runs.
func IDFor(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("person:"+key)).String()
}

// WithID returns p with ID filled in when it is empty.
func (p Person) WithID() Person {
	if p.ID == "" {
		p.ID = IDFor(p.Name)
	}
	return p
}

func (p Person) HasTag(tag string, caseSensitive bool) bool {
	for _, t := range p.Tags {
		if caseSensitive {
			if string(t) == tag {
				return true
			}
			continue
		}
		if strings.EqualFold(string(t), tag) {
			return true
		}
	}
	return false
}

func (p Person) TagStrings() []string {
	out := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		out = append(out, string(t))
	}
	return out
}

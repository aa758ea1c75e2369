package storage

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/addrbook/addrbook-cli/internal/person"
)

// AddressBook is the on-disk shape of one data file.
type AddressBook struct {
	Persons []Record `yaml:"persons" json:"persons"`
}

type Record struct {
	ID      string  `yaml:"id" json:"id,omitempty"`
	Name    string  `yaml:"name" json:"name"`
	Phone   string  `yaml:"phone" json:"phone,omitempty"`
	Email   string  `yaml:"email" json:"email,omitempty"`
	Address string  `yaml:"address" json:"address,omitempty"`
	Tags    TagList `yaml:"tags" json:"tags,omitempty"`
}

func (r Record) Person() person.Person {
	tags := make([]person.Tag, 0, len(r.Tags))
	for _, t := range r.Tags {
		tags = append(tags, person.Tag(t))
	}
	return person.Person{
		ID:      r.ID,
		Name:    strings.TrimSpace(r.Name),
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
		Tags:    tags,
	}.WithID()
}

// TagList accepts either a YAML sequence or a comma separated scalar.
type TagList []string

func (t *TagList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var out []string
		for _, s := range strings.Split(value.Value, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		*t = out
		return nil
	case yaml.SequenceNode:
		var aux []string
		if err := value.Decode(&aux); err != nil {
			return err
		}
		*t = aux
		return nil
	default:
		return fmt.Errorf("invalid tags node kind: %d", value.Kind)
	}
}

package storage

import (
	_ "embed"
	"encoding/json"
	"errors"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

func ValidateAgainstSchema(ab AddressBook) error {
	if len(schemaJSON) == 0 {
		return errors.New("schema not embedded")
	}
	if ab.Persons == nil {
		ab.Persons = []Record{}
	}
	b, err := json.Marshal(ab)
	if err != nil {
		return err
	}
	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	docLoader := gojsonschema.NewBytesLoader(b)
	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	var msgs []string
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return errors.New("schema validation failed: " + strings.Join(msgs, "; "))
}

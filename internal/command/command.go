package command

import (
	"errors"
	"reflect"

	"github.com/addrbook/addrbook-cli/internal/model"
)

// ErrNilModel is returned when a command is executed without a model.
var ErrNilModel = errors.New("command: model is nil")

// Result is what a command reports back to the user.
type Result struct {
	Feedback string
	ShowHelp bool
	Exit     bool
}

type Command interface {
	Execute(m model.Model) (Result, error)
	Equal(other Command) bool
}

// requireModel rejects nil models, including a nil pointer stored in the
// interface.
func requireModel(m model.Model) error {
	if m == nil {
		return ErrNilModel
	}
	if v := reflect.ValueOf(m); v.Kind() == reflect.Pointer && v.IsNil() {
		return ErrNilModel
	}
	return nil
}

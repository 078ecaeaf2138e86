package requests

import (
	"github.com/goccy/go-json"
)

// FieldValue accepts a string, a string list, or a number, mirroring the
// questionnaire answer kinds.
type FieldValue struct {
	Single string
	Multi  []string
	Number *int
	IsSet  bool
}

func (f *FieldValue) UnmarshalJSON(data []byte) error {
	f.IsSet = true
	var multi []string
	if err := json.Unmarshal(data, &multi); err == nil {
		f.Multi = multi
		return nil
	}
	var number int
	if err := json.Unmarshal(data, &number); err == nil {
		f.Number = &number
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	f.Single = single
	return nil
}

type SubmitIntakeStepRequest struct {
	Step       int        `json:"step" validate:"required,min=1,max=15"`
	FieldValue FieldValue `json:"field_value"`
}

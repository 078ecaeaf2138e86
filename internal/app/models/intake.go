package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Answer holds a single questionnaire answer. A step answer is either a
// single choice / free text, a multi-select list, or a number.
type Answer struct {
	Single string
	Multi  []string
	Number *int
}

func SingleAnswer(value string) Answer {
	return Answer{Single: value}
}

func MultiAnswer(values []string) Answer {
	return Answer{Multi: values}
}

func NumberAnswer(value int) Answer {
	return Answer{Number: &value}
}

func (a Answer) IsMulti() bool {
	return a.Multi != nil
}

func (a Answer) IsNumber() bool {
	return a.Number != nil
}

// Primary returns the value used by the flow transition table: the single
// answer itself, or the first multi-select value.
func (a Answer) Primary() string {
	if a.Multi != nil {
		if len(a.Multi) == 0 {
			return ""
		}
		return a.Multi[0]
	}
	if a.Number != nil {
		return fmt.Sprintf("%d", *a.Number)
	}
	return a.Single
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.Multi != nil {
		return json.Marshal(a.Multi)
	}
	if a.Number != nil {
		return json.Marshal(*a.Number)
	}
	return json.Marshal(a.Single)
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var multi []string
	if err := json.Unmarshal(data, &multi); err == nil {
		a.Multi = multi
		a.Single = ""
		a.Number = nil
		return nil
	}
	var number int
	if err := json.Unmarshal(data, &number); err == nil {
		a.Number = &number
		a.Single = ""
		a.Multi = nil
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	a.Single = single
	a.Multi = nil
	a.Number = nil
	return nil
}

// IntakeProgress is the per-session questionnaire state stored in Redis.
type IntakeProgress struct {
	CurrentStep    int            `json:"current_step"`
	Answers        map[int]Answer `json:"answers"`
	History        []int          `json:"history"`
	PendingResults bool           `json:"pending_results"`
}

func NewIntakeProgress() *IntakeProgress {
	return &IntakeProgress{
		CurrentStep: 1,
		Answers:     make(map[int]Answer),
		History:     []int{},
	}
}

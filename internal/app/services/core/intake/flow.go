package intake

import (
	"mindmatch-service/internal/app/models"
	"mindmatch-service/internal/pkg/exceptions"
	"strings"
	"unicode/utf8"
)

type stepKind int

const (
	kindSingle stepKind = iota
	kindMulti
	kindText
	kindNumber
)

// StepResults is the terminal pseudo-step of the questionnaire.
const StepResults = 0

const (
	maxMultiSelections = 3
	maxTextLength      = 200
)

const (
	SupportTypeStep = 6

	SupportTypeIndividual = "Individual Therapy"
	SupportTypeChild      = "Child & Adolescent Therapy"
	SupportTypeCouples    = "Couples Therapy"
)

type stepSpec struct {
	Field    string
	Kind     stepKind
	Choices  []string
	MinValue int
	MaxValue int
}

type transition struct {
	next     int
	byAnswer map[string]int
}

var stepSpecs = map[int]stepSpec{
	1: {Field: "previous_support", Kind: kindSingle, Choices: []string{"Yes", "No"}},
	2: {Field: "previous_support_type", Kind: kindSingle, Choices: []string{"Psychotherapy", "Medication treatment"}},
	3: {Field: "psychotherapy_approach", Kind: kindSingle, Choices: []string{
		"Schema Therapy",
		"Cognitive Behavioral Therapy",
		"Psychodynamic/Psychoanalytic Therapy",
		"Systemic Therapy",
		"Other",
	}},
	4: {Field: "session_frequency", Kind: kindSingle, Choices: []string{"1-3", "4-6", "6-8"}},
	5: {Field: "reason", Kind: kindText},
	6: {Field: "support_type", Kind: kindSingle, Choices: []string{
		SupportTypeIndividual,
		SupportTypeChild,
		SupportTypeCouples,
	}},
	7: {Field: "improvement_areas", Kind: kindMulti, Choices: []string{
		"Negative thoughts",
		"Depressive feelings",
		"Anxiety/Panic/Worry",
		"Sleep/Appetite problems",
		"Anger management",
		"Romantic relationships",
		"Family relationships",
		"Socialization/Friendship relationships",
		"Work performance/Work relationships",
		"Feeling of loneliness",
		"Lack of belonging",
	}},
	8: {Field: "medication_info", Kind: kindText},
	9: {Field: "medication_continues", Kind: kindSingle, Choices: []string{"Yes", "No"}},
	10: {Field: "sleep_appetite", Kind: kindSingle, Choices: []string{"Yes", "No"}},
	11: {Field: "been_together_years", Kind: kindSingle, Choices: []string{"0-1", "1-3", "3+"}},
	12: {Field: "togetherness_improvement_areas", Kind: kindMulti, Choices: []string{
		"Communication problems",
		"Extended family problems",
		"Financial problems",
		"Lack of social sharing/activity",
		"Lack of romantic interest/affection",
		"Cheating/Infidelity",
		"Lack of sexual desire",
		"Differences in future expectations",
		"Disagreements in child/pet care",
	}},
	13: {Field: "number_of_children", Kind: kindNumber, MinValue: 0, MaxValue: 100},
	14: {Field: "age_of_children", Kind: kindNumber, MinValue: 0, MaxValue: 18},
	15: {Field: "children_improvement_areas", Kind: kindMulti, Choices: []string{
		"Emotion regulation",
		"Social anxiety/withdrawal",
		"School/Exam anxiety",
		"Peer bullying (perpetrating, being exposed)",
		"Adolescent emotional ups and downs",
		"Difficulty in relationship with authority",
		"Boundary violations",
	}},
}

var stepFlow = map[int]transition{
	1:  {byAnswer: map[string]int{"Yes": 2, "No": 6}},
	2:  {byAnswer: map[string]int{"Psychotherapy": 3, "Medication treatment": 8}},
	3:  {next: 4},
	4:  {next: 5},
	5:  {next: 6},
	6:  {byAnswer: map[string]int{SupportTypeIndividual: 7, SupportTypeChild: 13, SupportTypeCouples: 11}},
	7:  {next: StepResults},
	8:  {next: 9},
	9:  {byAnswer: map[string]int{"Yes": 10, "No": 6}},
	10: {next: 6},
	11: {next: 12},
	12: {next: StepResults},
	13: {next: 14},
	14: {next: 15},
	15: {next: StepResults},
}

// branchSteps maps the support type answer to the steps owned by that
// branch. Switching branches invalidates the other branches' answers.
var branchSteps = map[string][]int{
	SupportTypeIndividual: {7},
	SupportTypeChild:      {13, 14, 15},
	SupportTypeCouples:    {11, 12},
}

// BranchMultiStep returns the multi-select step whose values feed the
// recommendation tags for a support type.
func BranchMultiStep(supportType string) (int, bool) {
	switch supportType {
	case SupportTypeIndividual:
		return 7, true
	case SupportTypeCouples:
		return 12, true
	case SupportTypeChild:
		return 15, true
	}
	return 0, false
}

func IsValidStep(step int) bool {
	_, ok := stepSpecs[step]
	return ok
}

// NextStep resolves the transition for a step given the primary answer
// value. The second return value is false when a branching step received
// an answer outside its table.
func NextStep(step int, primaryAnswer string) (int, bool) {
	t, ok := stepFlow[step]
	if !ok {
		return 0, false
	}
	if t.byAnswer != nil {
		next, ok := t.byAnswer[primaryAnswer]
		return next, ok
	}
	return t.next, true
}

// validateAnswer checks a submitted value against the step definition and
// normalizes it into a models.Answer.
func validateAnswer(step int, single string, multi []string, number *int) (models.Answer, error) {
	spec, ok := stepSpecs[step]
	if !ok {
		return models.Answer{}, exceptions.ErrIntakeStepOutOfRange(nil, step)
	}

	switch spec.Kind {
	case kindSingle:
		if multi != nil || number != nil {
			return models.Answer{}, exceptions.ErrIntakeAnswerWrongKind(nil, step)
		}
		if !containsChoice(spec.Choices, single) {
			return models.Answer{}, exceptions.ErrIntakeAnswerNotAllowed(nil, step)
		}
		return models.SingleAnswer(single), nil

	case kindMulti:
		if multi == nil {
			return models.Answer{}, exceptions.ErrIntakeAnswerWrongKind(nil, step)
		}
		if len(multi) > maxMultiSelections {
			return models.Answer{}, exceptions.ErrIntakeTooManySelections(nil, step, maxMultiSelections)
		}
		for _, value := range multi {
			if !containsChoice(spec.Choices, value) {
				return models.Answer{}, exceptions.ErrIntakeAnswerNotAllowed(nil, step)
			}
		}
		return models.MultiAnswer(multi), nil

	case kindText:
		if multi != nil || number != nil {
			return models.Answer{}, exceptions.ErrIntakeAnswerWrongKind(nil, step)
		}
		// Characters, not bytes: answers are frequently multibyte.
		trimmed := strings.TrimSpace(single)
		if utf8.RuneCountInString(trimmed) > maxTextLength {
			return models.Answer{}, exceptions.ErrIntakeAnswerTooLong(nil, step, maxTextLength)
		}
		return models.SingleAnswer(trimmed), nil

	case kindNumber:
		if number == nil {
			return models.Answer{}, exceptions.ErrIntakeAnswerWrongKind(nil, step)
		}
		if *number < spec.MinValue || *number > spec.MaxValue {
			return models.Answer{}, exceptions.ErrIntakeAnswerOutOfRange(nil, step, spec.MinValue, spec.MaxValue)
		}
		return models.NumberAnswer(*number), nil
	}

	return models.Answer{}, exceptions.ErrIntakeStepOutOfRange(nil, step)
}

func containsChoice(choices []string, value string) bool {
	for _, c := range choices {
		if c == value {
			return true
		}
	}
	return false
}

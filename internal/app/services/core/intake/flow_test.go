package intake

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStep_BranchingTransitions(t *testing.T) {
	testCases := []struct {
		name     string
		step     int
		answer   string
		expected int
	}{
		{"previous support yes", 1, "Yes", 2},
		{"branch step with unmapped answer", 6, "", 0},
		{"no previous support skips to support type", 1, "No", 6},
		{"psychotherapy branch", 2, "Psychotherapy", 3},
		{"medication branch", 2, "Medication treatment", 8},
		{"individual therapy branch", 6, SupportTypeIndividual, 7},
		{"child therapy branch", 6, SupportTypeChild, 13},
		{"couples therapy branch", 6, SupportTypeCouples, 11},
		{"medication continues", 9, "Yes", 10},
		{"medication stopped", 9, "No", 6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, ok := NextStep(tc.step, tc.answer)
			if tc.answer == "" {
				assert.False(t, ok)
				return
			}
			assert.True(t, ok)
			assert.Equal(t, tc.expected, next)
		})
	}
}

func TestNextStep_LinearTransitions(t *testing.T) {
	linear := map[int]int{
		3:  4,
		4:  5,
		5:  6,
		8:  9,
		10: 6,
		11: 12,
		13: 14,
		14: 15,
	}
	for step, expected := range linear {
		next, ok := NextStep(step, "anything")
		assert.True(t, ok)
		assert.Equal(t, expected, next)
	}
}

func TestNextStep_TerminalSteps(t *testing.T) {
	for _, step := range []int{7, 12, 15} {
		next, ok := NextStep(step, "anything")
		assert.True(t, ok)
		assert.Equal(t, StepResults, next)
	}
}

func TestNextStep_UnknownStep(t *testing.T) {
	_, ok := NextStep(42, "Yes")
	assert.False(t, ok)
}

func TestNextStep_FullIndividualWalk(t *testing.T) {
	// Yes -> Psychotherapy -> approach -> frequency -> reason ->
	// Individual Therapy -> improvement areas -> results.
	walk := []struct {
		step   int
		answer string
	}{
		{1, "Yes"},
		{2, "Psychotherapy"},
		{3, "Schema Therapy"},
		{4, "1-3"},
		{5, "looking for support"},
		{6, SupportTypeIndividual},
		{7, "Negative thoughts"},
	}
	expected := []int{2, 3, 4, 5, 6, 7, StepResults}

	for i, submission := range walk {
		next, ok := NextStep(submission.step, submission.answer)
		assert.True(t, ok, "step %d", submission.step)
		assert.Equal(t, expected[i], next, "step %d", submission.step)
	}
}

func TestValidateAnswer_SingleChoice(t *testing.T) {
	answer, err := validateAnswer(1, "Yes", nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, "Yes", answer.Single)

	_, err = validateAnswer(1, "Maybe", nil, nil)
	assert.Error(t, err)
}

func TestValidateAnswer_MultiSelect(t *testing.T) {
	answer, err := validateAnswer(7, "", []string{"Negative thoughts", "Anger management"}, nil)
	assert.NoError(t, err)
	assert.Len(t, answer.Multi, 2)

	_, err = validateAnswer(7, "", []string{
		"Negative thoughts",
		"Depressive feelings",
		"Anxiety/Panic/Worry",
		"Anger management",
	}, nil)
	assert.Error(t, err, "more than three selections must be rejected")

	_, err = validateAnswer(7, "", []string{"Not a real area"}, nil)
	assert.Error(t, err)

	_, err = validateAnswer(7, "Negative thoughts", nil, nil)
	assert.Error(t, err, "single value on a multi-select step must be rejected")
}

func TestValidateAnswer_FreeText(t *testing.T) {
	answer, err := validateAnswer(5, "  struggling with sleep  ", nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, "struggling with sleep", answer.Single)

	long := make([]byte, 201)
	for i := range long {
		long[i] = 'a'
	}
	_, err = validateAnswer(5, string(long), nil, nil)
	assert.Error(t, err)

	// The bound counts characters, not bytes.
	multibyte := strings.Repeat("ğ", 150)
	answer, err = validateAnswer(5, multibyte, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, multibyte, answer.Single)

	_, err = validateAnswer(5, strings.Repeat("ğ", 201), nil, nil)
	assert.Error(t, err)
}

func TestValidateAnswer_Number(t *testing.T) {
	two := 2
	answer, err := validateAnswer(13, "", nil, &two)
	assert.NoError(t, err)
	assert.Equal(t, 2, *answer.Number)

	nineteen := 19
	_, err = validateAnswer(14, "", nil, &nineteen)
	assert.Error(t, err, "children age above 18 must be rejected")

	negative := -1
	_, err = validateAnswer(13, "", nil, &negative)
	assert.Error(t, err)

	_, err = validateAnswer(13, "2", nil, nil)
	assert.Error(t, err, "string on a number step must be rejected")
}

func TestBranchMultiStep(t *testing.T) {
	step, ok := BranchMultiStep(SupportTypeIndividual)
	assert.True(t, ok)
	assert.Equal(t, 7, step)

	step, ok = BranchMultiStep(SupportTypeCouples)
	assert.True(t, ok)
	assert.Equal(t, 12, step)

	step, ok = BranchMultiStep(SupportTypeChild)
	assert.True(t, ok)
	assert.Equal(t, 15, step)

	_, ok = BranchMultiStep("Group Therapy")
	assert.False(t, ok)
}

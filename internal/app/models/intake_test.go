package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestAnswerJSONKinds(t *testing.T) {
	var single Answer
	assert.NoError(t, json.Unmarshal([]byte(`"Yes"`), &single))
	assert.Equal(t, "Yes", single.Single)

	var multi Answer
	assert.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &multi))
	assert.Equal(t, []string{"a", "b"}, multi.Multi)

	var number Answer
	assert.NoError(t, json.Unmarshal([]byte(`3`), &number))
	assert.Equal(t, 3, *number.Number)
}

func TestAnswerPrimary(t *testing.T) {
	assert.Equal(t, "Yes", SingleAnswer("Yes").Primary())
	assert.Equal(t, "a", MultiAnswer([]string{"a", "b"}).Primary())
	assert.Equal(t, "3", NumberAnswer(3).Primary())
}

func TestIntakeProgressRoundTrip(t *testing.T) {
	progress := NewIntakeProgress()
	progress.CurrentStep = 6
	progress.History = []int{1, 2}
	progress.Answers[1] = SingleAnswer("Yes")
	progress.Answers[7] = MultiAnswer([]string{"Negative thoughts"})

	raw, err := json.Marshal(progress)
	assert.NoError(t, err)

	var decoded IntakeProgress
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, 6, decoded.CurrentStep)
	assert.Equal(t, []int{1, 2}, decoded.History)
	assert.Equal(t, "Yes", decoded.Answers[1].Single)
	assert.Equal(t, []string{"Negative thoughts"}, decoded.Answers[7].Multi)
}

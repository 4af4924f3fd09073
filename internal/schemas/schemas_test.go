package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestValidate_Dataset(t *testing.T) {
	ok := parse(t, `{"questions":[{"id":"1001","tareaId":1,"question":"Q","answer":"a",
		"options":[{"letter":"a","text":"A"},{"letter":"b","text":"B"}]}]}`)
	assert.NoError(t, Validate(Dataset, ok))

	missing := parse(t, `{"questions":[{"id":"1001","question":"Q","options":[]}]}`)
	assert.Error(t, Validate(Dataset, missing))

	assert.Error(t, Validate(Dataset, parse(t, `[]`)))
}

func TestValidate_Payload(t *testing.T) {
	ok := parse(t, `{"schemaVersion":1,"progressById":{"1001":{
		"card":{"due":"2025-01-02T10:00:00Z","stability":2.3,"scheduled_days":2},
		"nextReviewAt":"2025-01-02","seenCount":1,"correctCount":1,"wrongCount":0,"leechScore":0}}}`)
	assert.NoError(t, Validate(Payload, ok))

	noProgress := parse(t, `{"schemaVersion":1}`)
	assert.Error(t, Validate(Payload, noProgress))

	negativeLeech := parse(t, `{"schemaVersion":1,"progressById":{"1001":{
		"card":{"due":"x","stability":1,"scheduled_days":0},
		"nextReviewAt":"2025-01-02","seenCount":1,"correctCount":1,"wrongCount":0,"leechScore":-1}}}`)
	assert.Error(t, Validate(Payload, negativeLeech))
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("nope", map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown schema")
}

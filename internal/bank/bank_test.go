package bank

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topics() []Topic {
	return []Topic{
		{ID: 1, Name: "T1"},
		{ID: 2, Name: "T2"},
		{ID: 3, Name: "T3"},
		{ID: 4, Name: "T4"},
		{ID: 5, Name: "T5"},
	}
}

func q(id string, topic TopicID, answer string, letters ...string) Question {
	var opts []Option
	for _, l := range letters {
		opts = append(opts, Option{Letter: l, Text: strings.ToUpper(l)})
	}
	return Question{ID: id, TopicID: topic, Prompt: "?", Options: opts, Answer: answer}
}

func TestNewPool_InfersTypeAndIndexes(t *testing.T) {
	p := NewPool(DatasetVersion, topics(), []Question{
		q("1002", 1, "a", "a", "b", "c"),
		q("1001", 1, "a", "a", "b"),
		q("5001", 5, "b", "a", "b", "c", "d"),
	})

	assert.Equal(t, 3, p.Len())
	got, ok := p.Question("1001")
	require.True(t, ok)
	assert.Equal(t, TypeTrueFalse, got.Type)

	got, _ = p.Question("1002")
	assert.Equal(t, TypeMultipleChoice, got.Type)

	byTopic := p.ByTopic(1)
	require.Len(t, byTopic, 2)
	assert.Equal(t, "1001", byTopic[0].ID, "topic lists sorted by id")

	_, ok = p.Question("9999")
	assert.False(t, ok)
	assert.Equal(t, []string{"1001", "1002", "5001"}, p.SortedIDs())
	assert.Equal(t, "T5", p.TopicName(5))
}

func TestNewPool_ExplicitTypeKept(t *testing.T) {
	qq := q("1001", 1, "a", "a", "b")
	qq.Type = TypeMultipleChoice
	p := NewPool(DatasetVersion, topics(), []Question{qq})
	got, _ := p.Question("1001")
	assert.Equal(t, TypeMultipleChoice, got.Type)
}

func TestPool_ReturnsCopies(t *testing.T) {
	p := NewPool(DatasetVersion, topics(), []Question{q("1001", 1, "a", "a", "b")})
	qs := p.Questions()
	qs[0].ID = "mutated"
	qs[0].Options[0].Letter = "z"

	got, ok := p.Question("1001")
	require.True(t, ok)
	assert.Equal(t, "a", got.Options[0].Letter)

	got.Options[1].Text = "changed"
	byTopic := p.ByTopic(1)
	require.Len(t, byTopic, 1)
	assert.Equal(t, "B", byTopic[0].Options[1].Text)

	byTopic[0].Options[0].Letter = "y"
	again, _ := p.Question("1001")
	assert.Equal(t, "a", again.Options[0].Letter)
	assert.Equal(t, "B", again.Options[1].Text)
	assert.Equal(t, "a", p.Questions()[0].Options[0].Letter)
}

func TestValidate_CleanPool(t *testing.T) {
	p := NewPool(DatasetVersion, topics(), []Question{q("1001", 1, "a", "a", "b")})
	assert.Empty(t, Validate(p))
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	p := NewPool("old", []Topic{{ID: 1, Name: "T1"}}, []Question{
		q("1001", 1, "a", "a", "b"),
		q("1001", 1, "a", "a", "b"),
		q("2001", 2, "a", "a", "b"),
		q("9001", 9, "a", "a", "b"),
		q("1003", 1, "e", "a", "b", "c"),
	})

	errs := Validate(p)
	assert.True(t, HasCode(errs, CodeDatasetVersion))
	assert.True(t, HasCode(errs, CodeDuplicateID))
	assert.True(t, HasCode(errs, CodeInvalidTopicID))
	assert.True(t, HasCode(errs, CodeMissingTopic))
	assert.True(t, HasCode(errs, CodeAnswerNotInOptions))

	var dup ValidationError
	for _, e := range errs {
		if e.Code == CodeDuplicateID {
			dup = e
		}
	}
	assert.Equal(t, "1001", dup.QuestionID)
}

func TestLoadFile_Sample(t *testing.T) {
	p, errs, err := LoadFile("testdata/sample.json")
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, 3, p.Len())
	assert.Len(t, p.Topics(), 5)

	tf, ok := p.Question("2001")
	require.True(t, ok)
	assert.Equal(t, TopicID(2), tf.TopicID)
	assert.Equal(t, TypeTrueFalse, tf.Type)
}

func TestLoad_PrefersTareaNames(t *testing.T) {
	in := `{"tareas":[{"id":1,"name":"Uno"}],"tasks":[{"id":1,"name":"One"}],
		"questions":[{"id":"1001","tareaId":1,"taskId":4,"question":"?","answer":"a",
		"options":[{"letter":"a","text":"A"},{"letter":"b","text":"B"}]}]}`
	p, _, err := Load(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "Uno", p.TopicName(1))
	got, _ := p.Question("1001")
	assert.Equal(t, TopicID(1), got.TopicID)
}

func TestLoad_WrongDumpVersion(t *testing.T) {
	in := `{"datasetVersion":"ccse-2-25","tareas":[{"id":1,"name":"Uno"}],
		"questions":[{"id":"1001","tareaId":1,"question":"?","answer":"a",
		"options":[{"letter":"a","text":"A"},{"letter":"b","text":"B"}]}]}`
	_, errs, err := Load(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, CodeDatasetVersion, errs[0].Code)
	assert.Contains(t, errs[0].Message, "ccse-2-25")
}

func TestLoad_MissingTopicReference(t *testing.T) {
	in := `{"tareas":[{"id":1,"name":"Uno"}],
		"questions":[{"id":"1001","question":"?","answer":"a",
		"options":[{"letter":"a","text":"A"},{"letter":"b","text":"B"}]}]}`
	_, errs, err := Load(strings.NewReader(in))
	require.NoError(t, err)
	assert.True(t, HasCode(errs, CodeInvalidTopicID))
}

func TestLoad_RejectsBadShape(t *testing.T) {
	_, _, err := Load(strings.NewReader(`{"questions":"nope"}`))
	assert.Error(t, err)

	_, _, err = Load(strings.NewReader(`not json`))
	assert.Error(t, err)
}

package bank

// DatasetVersion is the only question-bank edition this tool understands.
const DatasetVersion = "ccse-2-26"

// TopicID identifies one of the five exam topic groups ("tareas").
type TopicID int

// TopicIDs lists every topic in exam order.
var TopicIDs = []TopicID{1, 2, 3, 4, 5}

// Valid reports whether t is one of the five known topics.
func (t TopicID) Valid() bool {
	return t >= 1 && t <= 5
}

// Topic is a named topic group.
type Topic struct {
	ID   TopicID `json:"id"`
	Name string  `json:"name"`
}

// QuestionType distinguishes multiple-choice from true/false items.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "mcq"
	TypeTrueFalse      QuestionType = "tf"
)

// Option is one labeled answer choice.
type Option struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// Question is a single immutable bank item.
type Question struct {
	ID      string       `json:"id"`
	TopicID TopicID      `json:"tareaId"`
	Prompt  string       `json:"question"`
	Options []Option     `json:"options"`
	Answer  string       `json:"answer"`
	Type    QuestionType `json:"type,omitempty"`
}

// HasOption reports whether letter labels one of q's options.
func (q Question) HasOption(letter string) bool {
	for _, o := range q.Options {
		if o.Letter == letter {
			return true
		}
	}
	return false
}

// inferType returns tf for two-option questions and mcq otherwise.
func inferType(q Question) QuestionType {
	if len(q.Options) == 2 {
		return TypeTrueFalse
	}
	return TypeMultipleChoice
}

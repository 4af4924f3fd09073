package study

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/repaso/internal/bank"
)

// Focus is the preferred topic, or 0 for all topics. It is written to JSON
// as "all" or the topic number.
type Focus bank.TopicID

// FocusAll means no preferred topic.
const FocusAll Focus = 0

// Topic returns the focus as a topic id (0 for all).
func (f Focus) Topic() bank.TopicID { return bank.TopicID(f) }

func (f Focus) MarshalJSON() ([]byte, error) {
	if f == FocusAll {
		return []byte(`"all"`), nil
	}
	return json.Marshal(int(f))
}

func (f *Focus) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "all" {
			return fmt.Errorf("invalid focus %q", s)
		}
		*f = FocusAll
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid focus: %w", err)
	}
	if n != 0 && !bank.TopicID(n).Valid() {
		return fmt.Errorf("invalid focus topic %d", n)
	}
	*f = Focus(n)
	return nil
}

// Settings are the learner's study preferences.
type Settings struct {
	DefaultPreset Preset `json:"defaultPreset"`
	RequeueWrong  bool   `json:"requeueWrong"`
	FocusTopic    Focus  `json:"focusTareaId"`
	OnlyFocus     bool   `json:"onlyThisTarea"`
}

// DefaultSettings returns the settings used when none are stored.
func DefaultSettings() Settings {
	return Settings{
		DefaultPreset: PresetMedium,
		RequeueWrong:  true,
		FocusTopic:    FocusAll,
	}
}

// MergeSettings overlays the fields present in a JSON settings object onto
// the defaults. Unknown fields are ignored.
func MergeSettings(raw json.RawMessage) (Settings, error) {
	s := DefaultSettings()
	if len(raw) == 0 || string(raw) == "null" {
		return s, nil
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("decode settings: %w", err)
	}
	if _, ok := Presets[s.DefaultPreset]; !ok {
		s.DefaultPreset = PresetMedium
	}
	return s, nil
}

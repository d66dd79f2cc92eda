package entities

// OptionsPerQuestion is the number of choices offered in recall mode.
const OptionsPerQuestion = 4

// RecallQuestion is a multiple choice question: pick the number of Contact.
type RecallQuestion struct {
	Contact       Contact   `json:"contact"`
	Options       []Contact `json:"options"` // shuffled, exactly one carries CorrectAnswer
	CorrectAnswer string    `json:"correct_answer"`
}

// CorrectIndex returns the option slot holding the correct number, or -1.
func (q RecallQuestion) CorrectIndex() int {
	for i, o := range q.Options {
		if o.Number == q.CorrectAnswer {
			return i
		}
	}
	return -1
}

// InputQuestion asks for the full number of Contact.
type InputQuestion struct {
	Contact       Contact `json:"contact"`
	CorrectAnswer string  `json:"correct_answer"`
}

// InputPreset configures the complete input mode.
type InputPreset struct {
	Questions int // number of questions in a game
	Points    int // points per correct answer
}

// InputPresets are the complete input mode difficulty settings.
var InputPresets = map[Difficulty]InputPreset{
	DifficultyEasy:   {Questions: 5, Points: 20},
	DifficultyMedium: {Questions: 10, Points: 25},
	DifficultyHard:   {Questions: 15, Points: 30},
}

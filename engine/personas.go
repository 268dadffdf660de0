package engine

import "strings"

// Persona shapes the voice of the move commentary. The classification logic
// is shared; only the quotes differ.
type Persona struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Style        string `json:"style"` // "aggressive", "defensive", "balanced"
	WinQuote     string `json:"win_quote"`
	LossQuote    string `json:"loss_quote"`
	CheckQuote   string `json:"check_quote"`
	CaptureQuote string `json:"capture_quote"`
	BlunderQuote string `json:"blunder_quote"`
}

// DefaultPersona is used when a requested persona is unknown.
const DefaultPersona = "teacher"

var personas = map[string]Persona{
	"teacher": {
		Name:         "Teacher",
		Description:  "A helpful mentor who explains moves clearly.",
		Style:        "balanced",
		WinQuote:     "Good game! You can learn a lot from this loss.",
		LossQuote:    "Excellent play! You have mastered this lesson.",
		CheckQuote:   "Careful, your King is under attack!",
		CaptureQuote: "I am taking this piece to gain an advantage.",
		BlunderQuote: "That move might be a mistake. Let's see why.",
	},
	"trashtalker": {
		Name:         "Trash Talker",
		Description:  "An arrogant opponent who mocks your moves.",
		Style:        "aggressive",
		WinQuote:     "Too easy! Go back to checkers.",
		LossQuote:    "You got lucky! I was lagging.",
		CheckQuote:   "Check! You nervous?",
		CaptureQuote: "Yoink! Thanks for the free piece.",
		BlunderQuote: "What was that? Did your cat walk on the keyboard?",
	},
	"grandmaster": {
		Name:         "Grandmaster",
		Description:  "A serious and analytical opponent.",
		Style:        "balanced",
		WinQuote:     "Checkmate. A logical conclusion.",
		LossQuote:    "I resign. Well played.",
		CheckQuote:   "Check.",
		CaptureQuote: "Capturing.",
		BlunderQuote: "Inaccuracy detected.",
	},
}

// PersonaByName returns the named persona, falling back to the teacher.
func PersonaByName(name string) Persona {
	if p, ok := personas[strings.ToLower(name)]; ok {
		return p
	}
	return personas[DefaultPersona]
}

// PersonaNames lists the available persona keys.
func PersonaNames() []string {
	return []string{"teacher", "trashtalker", "grandmaster"}
}

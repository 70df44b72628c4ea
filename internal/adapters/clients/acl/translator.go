package acl

import (
	"html"
	"strings"
	"unicode"

	"github.com/jsamuelsen/trivia-service/internal/ports"
)

// TranslateSlice applies translate to every item and drops those it rejects.
// The second result counts the rejected items.
func TranslateSlice[E, D any](items []E, translate func(E) (D, bool)) ([]D, int) {
	out := make([]D, 0, len(items))
	rejected := 0

	for _, item := range items {
		translated, ok := translate(item)
		if !ok {
			rejected++
			continue
		}

		out = append(out, translated)
	}

	return out, rejected
}

var difficultyRatings = map[string]int{
	"easy":   1,
	"medium": 2,
	"hard":   3,
}

// opentdbQuestion is one entry of an Open Trivia DB results array.
type opentdbQuestion struct {
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// translateQuestion decodes HTML entities, rates the difficulty and reduces
// the upstream category to its leading word ("Science: Computers" -> "Science").
// Entries with blank text or an unknown difficulty are rejected.
func translateQuestion(ext opentdbQuestion) (ports.ExternalQuestion, bool) {
	text := strings.TrimSpace(html.UnescapeString(ext.Question))
	answer := strings.TrimSpace(html.UnescapeString(ext.CorrectAnswer))

	if text == "" || answer == "" {
		return ports.ExternalQuestion{}, false
	}

	difficulty, ok := difficultyRatings[strings.ToLower(ext.Difficulty)]
	if !ok {
		return ports.ExternalQuestion{}, false
	}

	return ports.ExternalQuestion{
		Text:         text,
		Answer:       answer,
		CategoryName: leadingWord(html.UnescapeString(ext.Category)),
		Difficulty:   difficulty,
	}, true
}

func leadingWord(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	if len(words) == 0 {
		return ""
	}

	return words[0]
}

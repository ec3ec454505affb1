package models

// Difficulty is the skill level a user requests for a generated problem.
// The value is folded verbatim into the topic sent to the backend
// ("arrays - Beginner level"), so the constants carry display casing.
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// Difficulties lists the selectable levels in UI order.
func Difficulties() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Advanced}
}

// ParseDifficulty maps a form value to a Difficulty, defaulting to Beginner
// for anything unrecognised so a tampered form still produces a valid request.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case Beginner, Intermediate, Advanced:
		return Difficulty(s)
	default:
		return Beginner
	}
}

// LanguageChoice is the preferred-language selector on the problem generator
// page. Unlike Language it includes "Any", and its values are display names
// because the choice is folded into the generated topic text, not sent as a
// wire language identifier.
type LanguageChoice string

const (
	AnyLanguage  LanguageChoice = "Any"
	PythonChoice LanguageChoice = "Python"
	JavaChoice   LanguageChoice = "Java"
	CPPChoice    LanguageChoice = "C++"
)

// LanguageChoices lists the selectable preferences in UI order.
func LanguageChoices() []LanguageChoice {
	return []LanguageChoice{AnyLanguage, PythonChoice, JavaChoice, CPPChoice}
}

// ParseLanguageChoice maps a form value to a LanguageChoice, defaulting to
// AnyLanguage for anything unrecognised.
func ParseLanguageChoice(s string) LanguageChoice {
	switch LanguageChoice(s) {
	case AnyLanguage, PythonChoice, JavaChoice, CPPChoice:
		return LanguageChoice(s)
	default:
		return AnyLanguage
	}
}

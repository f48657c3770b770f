package model

// Archetype is one of the six personality categories a respondent can pick per question.
type Archetype string

const (
	ArchetypeA Archetype = "A"
	ArchetypeB Archetype = "B"
	ArchetypeC Archetype = "C"
	ArchetypeD Archetype = "D"
	ArchetypeE Archetype = "E"
	ArchetypeF Archetype = "F"
)

// Archetypes lists every category in tie-break order.
var Archetypes = []Archetype{ArchetypeA, ArchetypeB, ArchetypeC, ArchetypeD, ArchetypeE, ArchetypeF}

// QuestionCount is the number of forced-choice questions in a survey.
const QuestionCount = 9

// KeywordCount is the number of keywords a respondent selects.
const KeywordCount = 3

// ParseArchetype reports whether s names a valid category.
func ParseArchetype(s string) (Archetype, bool) {
	for _, a := range Archetypes {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}

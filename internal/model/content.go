package model

import "fmt"

// Content is the display table keyed by strings such as type_A_name or comment_A_B
type Content map[string]string

// Get returns the value for key, or fallback when the key is missing or blank
func (c Content) Get(key, fallback string) string {
	if v, ok := c[key]; ok && v != "" {
		return v
	}
	return fallback
}

// Content table keys
const (
	KeyKeywordList = "keyword_list"
	KeyQ10Text     = "q10_text"
)

func TypeNameKey(a Archetype) string {
	return fmt.Sprintf("type_%s_name", a)
}

func TypeDescriptionKey(a Archetype) string {
	return fmt.Sprintf("type_%s_description", a)
}

func CommentKey(first, second Archetype) string {
	return fmt.Sprintf("comment_%s_%s", first, second)
}

func QuestionTextKey(n int) string {
	return fmt.Sprintf("q%d_text", n)
}

func ChoiceTextKey(n int, a Archetype) string {
	return fmt.Sprintf("q%d_choice_%s", n, a)
}

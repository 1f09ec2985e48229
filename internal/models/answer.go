package models

// Answer is a vote choice. The empty string means "not drawn yet" when used
// as a level's correct answer.
type Answer string

const (
	AnswerAlive Answer = "alive"
	AnswerDead  Answer = "dead"
	AnswerUnset Answer = ""
)

// Valid reports whether the answer is one a player may cast.
func (a Answer) Valid() bool {
	return a == AnswerAlive || a == AnswerDead
}

// Opposite returns the other castable answer.
func (a Answer) Opposite() Answer {
	if a == AnswerAlive {
		return AnswerDead
	}
	return AnswerAlive
}

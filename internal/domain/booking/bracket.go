package booking

// AgeBracket labels an attendee for display and for the service's records.
type AgeBracket string

const (
	BracketNone   AgeBracket = ""
	BracketInfant AgeBracket = "Infant"
	BracketChild  AgeBracket = "Child"
	BracketAdult  AgeBracket = "Adult"
	BracketSenior AgeBracket = "Senior"
)

// ClassifyAge maps an age to its bracket. Negative ages have no bracket,
// which blocks submission.
func ClassifyAge(age int) AgeBracket {
	switch {
	case age < 0:
		return BracketNone
	case age < 2:
		return BracketInfant
	case age <= 12:
		return BracketChild
	case age <= 59:
		return BracketAdult
	default:
		return BracketSenior
	}
}

package constants

// Vote and decision values. Closed set shared with the clients; the API
// validates against it because the client is untrusted.
const (
	VoteMove  = "move"
	VoteToss  = "toss"
	VoteGive  = "give"
	VoteSell  = "sell"
	VoteOther = "other"
)

var ValidVotes = []string{VoteMove, VoteToss, VoteGive, VoteSell, VoteOther}

func IsValidVote(vote string) bool {
	for _, v := range ValidVotes {
		if vote == v {
			return true
		}
	}
	return false
}

// Error messages
const (
	ErrItemNotFound       = "Item not found"
	ErrUnexpected         = "Unexpected error"
	ErrInvalidID          = "Invalid id"
	ErrInvalidInput       = "Invalid input"
	ErrInvalidCredentials = "Invalid username or password"
	ErrUsernameTaken      = "Username already exists"
	ErrInvalidVote        = "Invalid vote. Must be move, toss, give, sell, or other"
	ErrInvalidDecision    = "Invalid decision. Must be move, toss, give, sell, or other"
	ErrAdminOnly          = "Only admins can delete items"
	ErrInvalidAdminKey    = "Invalid admin key"
)

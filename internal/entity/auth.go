package entity

// AuthenticatedUser is the identity extracted from a verified access token.
// Client names the frontend or service that minted the token.
type AuthenticatedUser struct {
	ID     string `json:"id"`
	Client string `json:"client"`
}

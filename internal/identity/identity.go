package identity

import "time"

// Identity is an account record. GameID is an optional resource scope: when
// set, the account may only fetch the script for that one game; when empty,
// the account is unrestricted.
type Identity struct {
	ID             string
	Email          string
	CredentialHash string
	GameID         string
	CreatedAt      time.Time
}

// Package authz holds the resource-scope decision. It is deliberately a
// pure function: handlers resolve the identity first, then ask whether that
// identity may fetch the requested game's script.
package authz

import "github.com/7PXS/AvouraAuth/internal/identity"

// Allowed reports whether id may access the script for gameID. An identity
// with no GameID is unrestricted; a scoped identity may only access its own
// game.
func Allowed(id *identity.Identity, gameID string) bool {
	return id.GameID == "" || id.GameID == gameID
}

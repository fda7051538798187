package scripts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when no script exists for the requested game id.
var ErrNotFound = errors.New("scripts: not found")

// Repository serves script bytes for a game id from a flat directory of
// <gameid>.lua files. It is the resource-fetch collaborator behind the
// authorized download route.
type Repository struct {
	dir string
}

func NewRepository(dir string) *Repository {
	return &Repository{dir: dir}
}

// Fetch returns the script bytes for gameID. Game ids naming anything
// outside the scripts directory are rejected as not found before the
// filesystem is consulted.
func (r *Repository) Fetch(gameID string) ([]byte, error) {
	if gameID == "" || strings.ContainsAny(gameID, `/\`) || strings.Contains(gameID, "..") {
		return nil, ErrNotFound
	}

	content, err := os.ReadFile(filepath.Join(r.dir, gameID+".lua"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scripts: read %s: %w", gameID, err)
	}

	return content, nil
}

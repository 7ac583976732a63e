package core

import "github.com/google/uuid"

// IdentifierAcquire returns a fresh identifier for a scene node.
func IdentifierAcquire() uuid.UUID {
	return uuid.New()
}

// IdentifierParse reads an identifier written in a scene file. An empty
// string yields a fresh identifier.
func IdentifierParse(s string) (uuid.UUID, error) {
	if s == "" {
		return IdentifierAcquire(), nil
	}
	return uuid.Parse(s)
}

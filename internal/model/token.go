package model

import "github.com/google/uuid"

// TokenManager issues and verifies signed bearer tokens. Verification is
// stateless: a token stays valid for its full lifetime once issued.
type TokenManager interface {
	GenerateSessionToken(userID uuid.UUID, username string) (string, error)
	GenerateResetToken(userID uuid.UUID) (string, error)
	ParseSessionToken(token string) (userID uuid.UUID, username string, err error)
	ParseResetToken(token string) (uuid.UUID, error)
}

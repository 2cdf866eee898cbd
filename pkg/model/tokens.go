package model

import "github.com/google/uuid"

// TokenIssuer assigns the externally visible identifier of a combination from its stable key
type TokenIssuer interface {
	Issue(key string) string
}

// Namespace used by deterministic tokens unless another one is given
var TokenNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("sectionplanner.combination"))

type randomTokens struct{}

// Issues a fresh random UUID for every combination, even for the same key across calls
func RandomTokens() TokenIssuer {
	return randomTokens{}
}

func (randomTokens) Issue(string) string {
	return uuid.NewString()
}

type deterministicTokens struct {
	namespace uuid.UUID
}

// Issues a name-based (SHA-1) UUID, so the same combination always gets the same token
func DeterministicTokens(namespace uuid.UUID) TokenIssuer {
	return deterministicTokens{namespace}
}

func (tokens deterministicTokens) Issue(key string) string {
	return uuid.NewSHA1(tokens.namespace, []byte(key)).String()
}

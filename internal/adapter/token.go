package adapter

import "strings"

// Token represents a API token
type Token struct {
	Key    string
	Secret string
}

// NewToken creates a API token
func NewToken(key, secret string) Token {
	return Token{
		Key:    strings.TrimSpace(key),
		Secret: strings.TrimSpace(secret),
	}
}

func (t Token) IsEmpty() bool {
	return len(t.Key) == 0 || len(t.Secret) == 0
}

// String never prints the secret.
func (t Token) String() string {
	if len(t.Key) <= 4 {
		return "****"
	}
	return t.Key[:4] + "****"
}

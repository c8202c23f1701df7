package utils

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost matches the cost the dashboard has always used for owner passwords.
const DefaultBcryptCost = 10

// HashPassword returns a salted bcrypt hash. Costs outside bcrypt's range fall back to DefaultBcryptCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes pw at the given bcrypt cost; out-of-range costs fall
// back to bcrypt.DefaultCost.
func HashPassword(pw string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
	return string(b), err
}

func CheckPassword(hashed, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}

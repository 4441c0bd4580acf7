package credentials

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier hashes passwords at load time and compares them at
// login time. The store never sees plaintext after construction.
type CredentialVerifier interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

type BcryptVerifier struct {
	Cost int
}

func (v BcryptVerifier) Hash(password string) (string, error) {
	cost := v.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(b), err
}

func (v BcryptVerifier) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsBcryptHash reports whether s already looks like a bcrypt hash.
func IsBcryptHash(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}

package model

import "golang.org/x/crypto/bcrypt"

// User is registered application user
type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone,omitempty"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	Address      string `json:"address,omitempty"`
}

// VerifyPassword checks provided password against stored hash
func (u *User) VerifyPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

// GeneratePasswordHash builds hash for raw password
func GeneratePasswordHash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Session is server-side session issued on successful login
type Session struct {
	Token     string `json:"token"`
	UserID    int    `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IssuedAt  int64  `json:"issuedAt"`
}

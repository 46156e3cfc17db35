package models

// UserCredentials is what the authentication layer needs to verify a login
type UserCredentials struct {
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Roles        []string `json:"roles"`
}

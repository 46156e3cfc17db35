package response

// LoginResponse carries the issued access token
type LoginResponse struct {
	AccessToken string   `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string   `json:"token_type" example:"Bearer"`
	ExpiresIn   int64    `json:"expires_in" example:"3600"`
	Username    string   `json:"username" example:"admin@villa.dev"`
	Roles       []string `json:"roles" example:"ADMIN"`
}

// PrincipalResponse describes the authenticated caller
type PrincipalResponse struct {
	Username string   `json:"username" example:"admin@villa.dev"`
	Roles    []string `json:"roles" example:"ADMIN"`
}

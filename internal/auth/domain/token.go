package domain

// TokenPair is what login, password setup and refresh hand back: a
// short-lived access JWT plus a long-lived refresh JWT.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType,omitempty"` // typically "Bearer"
	ExpiresIn    int64  `json:"expiresIn"`           // seconds until access expiry
}

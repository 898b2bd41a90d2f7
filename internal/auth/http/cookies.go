package http

import (
	"net/http"
	"time"

	"github.com/wesports/auth/pkg/authsdk"
	"github.com/wesports/auth/pkg/jwtx"
)

// Cookie names used for web clients. Browser clients send
// "X-Client-Type: web" and get HttpOnly cookies instead of body tokens.
const (
	cookieAccessToken       = "accessToken"
	cookieRefreshToken      = "refresh_token"
	cookieRegistrationToken = "registrationToken"

	headerClientType = "X-Client-Type"
)

func isWebClient(r *http.Request) bool {
	return r.Header.Get(headerClientType) == "web"
}

// cookieConfig controls the attributes on auth cookies. Secure should be on
// everywhere except local development over plain HTTP.
type cookieConfig struct {
	Secure bool
}

func (c cookieConfig) set(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (c cookieConfig) clear(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// deliverAuthResponse moves tokens into cookies for web clients and blanks
// them from the JSON body. Native clients get the body untouched.
func (c cookieConfig) deliverAuthResponse(w http.ResponseWriter, r *http.Request, resp *authsdk.AuthResponse, refreshTTL time.Duration) {
	if !isWebClient(r) {
		return
	}
	if resp.AccessToken != "" {
		accessTTL := jwtx.DefaultAccessTokenTTL
		if resp.ExpiresIn > 0 {
			accessTTL = time.Duration(resp.ExpiresIn) * time.Second
		}
		c.set(w, cookieAccessToken, resp.AccessToken, accessTTL)
		resp.AccessToken = ""
	}
	if resp.RefreshToken != "" {
		c.set(w, cookieRefreshToken, resp.RefreshToken, refreshTTL)
		resp.RefreshToken = ""
	}
}

// deliverRegistrationToken does the same for the bridge token minted at OTP
// verification.
func (c cookieConfig) deliverRegistrationToken(w http.ResponseWriter, r *http.Request, resp *authsdk.VerifyOTPResponse) {
	if !isWebClient(r) {
		return
	}
	if resp.RegistrationToken != "" {
		c.set(w, cookieRegistrationToken, resp.RegistrationToken, jwtx.DefaultRegistrationTokenTTL)
		resp.RegistrationToken = ""
	}
}

// tokenFromBodyOrCookie prefers the body field, falling back to the named
// cookie for web clients.
func tokenFromBodyOrCookie(r *http.Request, bodyValue, cookieName string) string {
	if bodyValue != "" {
		return bodyValue
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}

package authsdk

// Wire contracts shared between the service handlers and SDK consumers.
// Domain outcomes ride in Status/Message; transport-level failures surface
// as APIError instead.

// Status values used across step and auth responses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// RegisterStartRequest begins email sign-up.
type RegisterStartRequest struct {
	Email    string `json:"email"`
	Language string `json:"language,omitempty"` // optional hint, e.g. "fr"
}

// VerifyOTPRequest submits the emailed 6-digit code.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// SetupPasswordRequest finishes credential creation. The registration token
// may ride in the body or, for web clients, in the registrationToken cookie.
type SetupPasswordRequest struct {
	Password          string `json:"password"`
	ConfirmPassword   string `json:"confirmPassword"`
	RegistrationToken string `json:"registrationToken,omitempty"`
}

// SelectRoleRequest picks the platform role.
type SelectRoleRequest struct {
	Role string `json:"role"`
}

// ProfileFormRequest carries the identity fields collected after role
// selection. Birthday is ISO 8601 (YYYY-MM-DD).
type ProfileFormRequest struct {
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Birthday        string   `json:"birthday,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Nationality     string   `json:"nationality,omitempty"`
	Residence       string   `json:"residence,omitempty"`
	SpokenLanguages []string `json:"spokenLanguages,omitempty"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest rotates a refresh token. The token may ride in the body or,
// for web clients, in the refresh_token cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken,omitempty"`
}

// LogoutRequest revokes a refresh token.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken,omitempty"`
}

// StepResponse is the generic registration and onboarding step outcome.
type StepResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	NextStep string `json:"nextStep,omitempty"`
}

// VerifyOTPResponse returns the short-lived registration token on success.
type VerifyOTPResponse struct {
	Status            string `json:"status"`
	Message           string `json:"message"`
	RegistrationToken string `json:"registrationToken,omitempty"`
	NextStep          string `json:"nextStep,omitempty"`
}

// AuthResponse returns a token pair plus the account snapshot. For web
// clients the token fields are blanked and delivered as HttpOnly cookies
// instead.
type AuthResponse struct {
	Status       string    `json:"status"`
	Message      string    `json:"message"`
	AccessToken  string    `json:"accessToken,omitempty"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	TokenType    string    `json:"tokenType,omitempty"`
	ExpiresIn    int64     `json:"expiresIn,omitempty"` // seconds until access expiry
	User         *UserInfo `json:"user,omitempty"`
	NextStep     string    `json:"nextStep,omitempty"`
}

// UserInfo is the account snapshot embedded in auth responses.
type UserInfo struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Role             string `json:"role,omitempty"`
	RegistrationStep string `json:"registrationStep"`
}

// GenderRequest sets the gender during onboarding.
type GenderRequest struct {
	Gender string `json:"gender"`
}

// PositionRequest sets the playing position during onboarding.
type PositionRequest struct {
	Position string `json:"position"`
}

// CategoryRequest sets the competition category during onboarding.
type CategoryRequest struct {
	Category string `json:"category"`
}

// OnboardingStatus reports wizard progress for the authenticated user.
type OnboardingStatus struct {
	CurrentStep      string `json:"currentStep"`
	EmailVerified    bool   `json:"emailVerified"`
	PasswordSet      bool   `json:"passwordSet"`
	RoleSelected     bool   `json:"roleSelected"`
	ProfileCompleted bool   `json:"profileCompleted"`
	GenderSet        bool   `json:"genderSet"`
	PositionSet      bool   `json:"positionSet"`
	CategorySet      bool   `json:"categorySet"`
	Completed        bool   `json:"completed"`
	NextStep         string `json:"nextStep,omitempty"`
}

// Language is a selectable platform language.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName,omitempty"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks carries per-dependency status on the readiness probe.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

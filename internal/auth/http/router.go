package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/wesports/auth/internal/auth/service"
	"github.com/wesports/auth/internal/auth/store"
	"github.com/wesports/auth/pkg/httpx"
	"github.com/wesports/auth/pkg/slogx"

	_ "github.com/wesports/auth/api/auth" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	cookies      cookieConfig

	store               store.Store
	TokenService        *service.TokenService
	RegistrationService *service.RegistrationService
	LoginService        *service.LoginService
	OnboardingService   *service.OnboardingService
	LanguageService     *service.LanguageService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	secureCookies bool,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		cookies:      cookieConfig{Secure: secureCookies},
		store:        st,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerRegistration()
	r.registerAuth()
	r.registerOnboarding()
	r.registerLanguages()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			WeSports Authentication Service API
//	@version		0.1.0
//	@description	User registration, authentication and onboarding for the WeSports recruitment platform.
//	@description
//	@description				Sign-up is a staged wizard: email verification by 6-digit code, password setup,
//	@description				role selection, profile form and onboarding. Access tokens are HS256 JWTs.
//
//	@contact.name				WeSports Team
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerRegistration() {
	h := &RegisterHandler{
		Registration: r.RegistrationService,
		Cookies:      r.cookies,
		RefreshTTL:   r.TokenService.RefreshTTL,
	}

	// Public wizard steps - strict limits, these mint codes and tokens
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleStart),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/verify-otp",
		httpx.Chain(http.HandlerFunc(h.HandleVerifyOTP),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/setup-password",
		httpx.Chain(http.HandlerFunc(h.HandleSetupPassword),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Later wizard steps run under the access token from password setup
	verifier := r.TokenService.AccessVerifier()
	r.Mux.Handle("POST /v1/auth/select-role",
		httpx.Chain(http.HandlerFunc(h.HandleSelectRole),
			httpx.AuthnMiddleware(verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/profile-form",
		httpx.Chain(http.HandlerFunc(h.HandleProfileForm),
			httpx.AuthnMiddleware(verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAuth() {
	loginHandler := &LoginHandler{
		Login:      r.LoginService,
		Cookies:    r.cookies,
		RefreshTTL: r.TokenService.RefreshTTL,
	}
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	tokenHandler := &TokenHandler{Tokens: r.TokenService, Cookies: r.cookies}
	r.Mux.Handle("POST /v1/auth/refresh",
		httpx.Chain(http.HandlerFunc(tokenHandler.HandleRefresh),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(http.HandlerFunc(tokenHandler.HandleLogout),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerOnboarding() {
	h := &OnboardingHandler{Onboarding: r.OnboardingService}
	verifier := r.TokenService.AccessVerifier()

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/onboarding/status", secured(h.HandleStatus))
	r.Mux.Handle("POST /v1/onboarding/gender", secured(h.HandleGender))
	r.Mux.Handle("POST /v1/onboarding/position", secured(h.HandlePosition))
	r.Mux.Handle("POST /v1/onboarding/category", secured(h.HandleCategory))
	r.Mux.Handle("POST /v1/onboarding/complete", secured(h.HandleComplete))

	// Choice lists are public reference data
	r.Mux.Handle("GET /v1/onboarding/positions",
		httpx.Chain(http.HandlerFunc(h.HandlePositions),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /v1/onboarding/categories",
		httpx.Chain(http.HandlerFunc(h.HandleCategories),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerLanguages() {
	h := &LanguagesHandler{Languages: r.LanguageService}
	r.Mux.Handle("GET /v1/languages",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - generous limits, monitoring systems poll often
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.TokenService.Signer),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

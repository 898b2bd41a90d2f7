// Package authsdk is a Go client for the WeSports authentication service.
//
// Unauthenticated wizard operations hang off SDKClient:
//
//	client := authsdk.NewSDKClient("http://localhost:8080")
//	_, err := client.Register(ctx, "player@example.com", "en")
//	verify, err := client.VerifyOTP(ctx, "player@example.com", "123456")
//	session, _, err := client.SetupPassword(ctx, verify.RegistrationToken, "password123", "password123")
//
// SetupPassword and Login return a Session carrying the token pair. Sessions
// refresh the access token automatically when it nears expiry and expose the
// authenticated wizard and onboarding operations:
//
//	session, _, err := client.Login(ctx, "player@example.com", "password123")
//	_, err = session.SelectRole(ctx, "PLAYER")
//	status, err := session.OnboardingStatus(ctx)
//
// Failures surface as *APIError with the server's status code and message.
package authsdk

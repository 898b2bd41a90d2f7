package domain

// RegistrationStep tracks how far a user has progressed through sign-up.
// Steps only ever move forward; COMPLETED is terminal.
type RegistrationStep string

const (
	StepEmailVerification RegistrationStep = "EMAIL_VERIFICATION"
	StepPasswordSetup     RegistrationStep = "PASSWORD_SETUP"
	StepRoleSelection     RegistrationStep = "ROLE_SELECTION"
	StepProfileForm       RegistrationStep = "PROFILE_FORM"
	StepOnboarding        RegistrationStep = "ONBOARDING"
	StepCompleted         RegistrationStep = "COMPLETED"
)

var stepOrder = map[RegistrationStep]int{
	StepEmailVerification: 0,
	StepPasswordSetup:     1,
	StepRoleSelection:     2,
	StepProfileForm:       3,
	StepOnboarding:        4,
	StepCompleted:         5,
}

// Before reports whether s comes earlier in the flow than other.
func (s RegistrationStep) Before(other RegistrationStep) bool {
	return stepOrder[s] < stepOrder[other]
}

// Advance returns the later of s and next, so a repeated step submission
// never moves a user backwards.
func (s RegistrationStep) Advance(next RegistrationStep) RegistrationStep {
	if s.Before(next) {
		return next
	}
	return s
}

// IsCompleted reports whether registration has finished.
func (s RegistrationStep) IsCompleted() bool { return s == StepCompleted }

package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubjectID_Deterministic(t *testing.T) {
	a := SubjectID("alice@example.com")
	b := SubjectID("alice@example.com")
	require.Equal(t, a, b)

	// Normalization folds case and whitespace into the same subject
	require.Equal(t, a, SubjectID("  ALICE@Example.COM "))

	require.NotEqual(t, a, SubjectID("bob@example.com"))
}

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "alice@example.com", NormalizeEmail("  Alice@Example.COM "))
	require.Equal(t, "", NormalizeEmail("   "))
}

func TestRegistrationStep_Ordering(t *testing.T) {
	require.True(t, StepEmailVerification.Before(StepPasswordSetup))
	require.True(t, StepPasswordSetup.Before(StepCompleted))
	require.False(t, StepCompleted.Before(StepOnboarding))
}

func TestRegistrationStep_Advance(t *testing.T) {
	// Forward moves apply
	require.Equal(t, StepRoleSelection, StepPasswordSetup.Advance(StepRoleSelection))

	// Backwards moves are ignored
	require.Equal(t, StepCompleted, StepCompleted.Advance(StepOnboarding))
	require.Equal(t, StepProfileForm, StepProfileForm.Advance(StepProfileForm))
}

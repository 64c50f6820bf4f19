package services

import (
	"testing"

	"stays-backend/models"
	"stays-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpAndSignIn(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, "test-secret")

	user, token, err := auth.SignUp(SignUpInput{
		Email:     "Ada@Example.com",
		Password:  "hunter22",
		FirstName: "Ada",
		LastName:  "Obi",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	require.NotEmpty(t, token)

	claims, err := utils.ValidateSessionToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	// The profile is created alongside the account.
	var profile models.Profile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, "Ada", profile.FirstName)
	assert.Zero(t, profile.LoyaltyPoints)

	_, _, err = auth.SignIn("ada@example.com", "hunter22")
	assert.NoError(t, err)
	_, _, err = auth.SignIn("ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = auth.SignIn("nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignUpValidation(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, "test-secret")

	_, _, err := auth.SignUp(SignUpInput{Email: "not-an-email", Password: "hunter22"})
	assert.ErrorIs(t, err, ErrValidation)

	_, _, err = auth.SignUp(SignUpInput{Email: "ada@example.com", Password: "short"})
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, _, err = auth.SignUp(SignUpInput{Email: "ada@example.com", Password: "hunter22"})
	require.NoError(t, err)
	_, _, err = auth.SignUp(SignUpInput{Email: "ada@example.com", Password: "hunter23"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAdminCapability(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, "test-secret")

	user := seedUser(t, db, "guest@example.com")
	staff := seedUser(t, db, "staff@stayshotel.ng")
	require.NoError(t, db.Create(&models.AdminUser{UserID: staff.ID, Role: "admin"}).Error)

	admin, err := auth.AdminFor(user.ID)
	require.NoError(t, err)
	assert.Nil(t, admin)

	admin, err = auth.AdminFor(staff.ID)
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "admin", admin.Role)
}

func TestSessionTokenTampering(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, "test-secret")

	_, token, err := auth.SignUp(SignUpInput{Email: "ada@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, err = utils.ValidateSessionToken("other-secret", token)
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}

package services

import (
	"testing"
	"time"

	"backend/pkg/apperr"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(db, repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLoginCustomer(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService(db)

	customer, err := svc.RegisterCustomer(&RegisterCustomerIn{
		Email:    "Alice@Example.com",
		Password: "hunter2hunter2",
		Name:     "Alice",
		City:     "Springfield",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", customer.Email, "email is normalized")

	token, user, err := svc.Login("alice@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "customer", user.Role)

	_, _, err = svc.Login("alice@example.com", "wrong")
	assert.True(t, apperr.IsCode(err, apperr.CodeUnauthorized))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService(db)

	_, err := svc.RegisterCustomer(&RegisterCustomerIn{
		Email: "alice@example.com", Password: "hunter2hunter2", Name: "Alice",
	})
	require.NoError(t, err)

	_, err = svc.RegisterVendor(&RegisterVendorIn{
		Email: "alice@example.com", Password: "hunter2hunter2", Name: "Grill",
	})
	assert.True(t, apperr.IsCode(err, apperr.CodeConflict))
}

func TestResolvePrincipal(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService(db)

	customer, err := svc.RegisterCustomer(&RegisterCustomerIn{
		Email: "alice@example.com", Password: "hunter2hunter2", Name: "Alice",
	})
	require.NoError(t, err)
	vendor, err := svc.RegisterVendor(&RegisterVendorIn{
		Email: "grill@example.com", Password: "hunter2hunter2", Name: "Grill",
	})
	require.NoError(t, err)

	p, err := svc.ResolvePrincipal(*customer.UserID)
	require.NoError(t, err)
	assert.Equal(t, PrincipalCustomer, p.Kind)
	assert.Equal(t, customer.ID, p.CustomerID)

	p, err = svc.ResolvePrincipal(*vendor.UserID)
	require.NoError(t, err)
	assert.Equal(t, PrincipalVendor, p.Kind)
	assert.Equal(t, vendor.ID, p.VendorID)
}

type fakeMailer struct {
	to      []string
	bodies  []string
	failErr error
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.to = append(m.to, to)
	m.bodies = append(m.bodies, body)
	return m.failErr
}

func TestPasswordResetRoundTrip(t *testing.T) {
	db := setupDB(t)
	auth := newAuthService(db)
	mailer := &fakeMailer{}
	reset := NewPasswordResetService(repository.NewUserRepository(db), mailer,
		"test-secret", time.Hour, "http://localhost/reset")

	customer, err := auth.RegisterCustomer(&RegisterCustomerIn{
		Email: "alice@example.com", Password: "hunter2hunter2", Name: "Alice",
	})
	require.NoError(t, err)
	_ = customer

	require.NoError(t, reset.Request("alice@example.com"))
	require.Len(t, mailer.to, 1)
	assert.Equal(t, "alice@example.com", mailer.to[0])

	// unknown address gets the same silent success, no mail
	require.NoError(t, reset.Request("nobody@example.com"))
	assert.Len(t, mailer.to, 1)

	// pull the token back out of the mailed link
	body := mailer.bodies[0]
	idx := len(body) - 1
	for idx >= 0 && body[idx] != '=' {
		idx--
	}
	token := body[idx+1:]

	require.NoError(t, reset.Confirm(token, "newpassword1"))

	_, _, err = auth.Login("alice@example.com", "hunter2hunter2")
	assert.Error(t, err, "old password no longer works")
	_, _, err = auth.Login("alice@example.com", "newpassword1")
	assert.NoError(t, err)
}

func TestPasswordResetConfirmRejectsBadToken(t *testing.T) {
	db := setupDB(t)
	reset := NewPasswordResetService(repository.NewUserRepository(db), &fakeMailer{},
		"test-secret", time.Hour, "http://localhost/reset")

	err := reset.Confirm("not-a-token", "newpassword1")
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))

	err = reset.Confirm("", "short")
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))
}

func TestPasswordResetMailFailureIsSwallowed(t *testing.T) {
	db := setupDB(t)
	auth := newAuthService(db)
	mailer := &fakeMailer{failErr: assert.AnError}
	reset := NewPasswordResetService(repository.NewUserRepository(db), mailer,
		"test-secret", time.Hour, "http://localhost/reset")

	_, err := auth.RegisterCustomer(&RegisterCustomerIn{
		Email: "alice@example.com", Password: "hunter2hunter2", Name: "Alice",
	})
	require.NoError(t, err)

	assert.NoError(t, reset.Request("alice@example.com"))
}

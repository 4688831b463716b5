package account_test

import (
	"errors"
	"testing"
	"time"

	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/account"
)

// TestAccount_Validate tests validation of Account.
func TestAccount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		account account.Account
		wantErr bool
	}{
		{
			name: "valid admin account",
			account: account.Account{
				ID:    "1",
				Email: "admin@communityhub.io",
				Role:  account.RoleAdmin,
			},
		},
		{
			name: "valid user account",
			account: account.Account{
				ID:    "2",
				Email: "staff@communityhub.io",
				Role:  account.RoleUser,
			},
		},
		{
			name: "empty email",
			account: account.Account{
				ID:   "3",
				Role: account.RoleAdmin,
			},
			wantErr: true,
		},
		{
			name: "email without at sign",
			account: account.Account{
				ID:    "4",
				Email: "not-an-email",
				Role:  account.RoleAdmin,
			},
			wantErr: true,
		},
		{
			name: "role outside closed set",
			account: account.Account{
				ID:    "5",
				Email: "coach@communityhub.io",
				Role:  "coach",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestAccount_SetPassword tests the console password policy.
func TestAccount_SetPassword(t *testing.T) {
	var a account.Account
	if err := a.SetPassword(""); !errors.Is(err, account.ErrEmptyPassword) {
		t.Errorf("empty password: err = %v", err)
	}
	if err := a.SetPassword("short"); !errors.Is(err, account.ErrPasswordTooShort) {
		t.Errorf("short password: err = %v", err)
	}
	if err := a.SetPassword("correct horse battery"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if err := a.CheckPassword("correct horse battery"); err != nil {
		t.Errorf("CheckPassword: %v", err)
	}
	if err := a.CheckPassword("wrong horse"); !errors.Is(err, account.ErrWrongPassword) {
		t.Errorf("wrong password: err = %v", err)
	}
}

func TestAccount_IsAdmin(t *testing.T) {
	admin := account.Account{Role: account.RoleAdmin}
	if !admin.IsAdmin() {
		t.Error("admin role should report IsAdmin")
	}
	user := account.Account{Role: account.RoleUser}
	if user.IsAdmin() {
		t.Error("user role should not report IsAdmin")
	}
}

// TestAccount_Lockout tests failed-login lockout behavior.
func TestAccount_Lockout(t *testing.T) {
	var a account.Account
	for i := 0; i < 4; i++ {
		a.RecordFailedLogin()
	}
	if a.IsLocked() {
		t.Error("locked before 5 failures")
	}
	a.RecordFailedLogin()
	if !a.IsLocked() {
		t.Error("not locked after 5 failures")
	}
	a.ResetFailedLogins()
	if a.IsLocked() || a.FailedLogins != 0 || !a.LockedUntil.Equal(time.Time{}) {
		t.Error("reset did not clear lockout")
	}
}

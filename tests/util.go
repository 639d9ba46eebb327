package testutil

import (
	"testing"
	"time"

	"github.com/bahati/malezi/core"
	"github.com/bahati/malezi/core/user"
)

// NewConfig returns an app config suitable for tests: no simulated store
// latency and a throwaway signing key.
func NewConfig() *core.Config {
	// Debug stays off so HTTP error bodies keep their production shape.
	return &core.Config{
		TestMode:           true,
		Env:                "TEST",
		AppName:            "Malezi",
		SecretKey:          "test-only-secret-key",
		FrontendBaseURL:    "http://localhost:3000",
		DefaultFromName:    "Malezi",
		DefaultFromAddress: "noreply@localhost",
		StaffEmail:         "staff@localhost",
		Server: core.ServerConfig{
			Port:                      "8000",
			JWTExpirationDelta:        time.Hour,
			JWTRefreshExpirationDelta: 4 * time.Hour,
		},
	}
}

func CreateUser(
	t *testing.T,
	repo user.Repository,
	name, uname, email, pwd string,
	roles []string,
	isActive bool,
) user.User {
	t.Helper()
	now := time.Now().UTC()
	usr := user.User{
		Name:      name,
		Username:  uname,
		Email:     email,
		Roles:     roles,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("CreateUser() failed: %v", err)
		}
	}
	usr, err := repo.CreateUser(usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

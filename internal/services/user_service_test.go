package services

import (
	"context"
	"testing"

	"github.com/thrashered1/SmartSaveAI/internal/testutil"
)

func TestUserServiceRegister(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)
	ctx := context.Background()

	t.Run("creates user with lowercased email", func(t *testing.T) {
		user, err := svc.Register(ctx, RegisterRequest{
			Email:    "Alice@Example.COM",
			Password: "hunter2hunter2",
			Name:     "Alice",
		})
		testutil.AssertNoError(t, err)
		if user.Email != "alice@example.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
		if user.Password == "hunter2hunter2" {
			t.Error("password stored in plaintext")
		}
		if user.ID == "" {
			t.Error("expected generated id")
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterRequest{
			Email:    "alice@example.com",
			Password: "hunter2hunter2",
			Name:     "Alice Again",
		})
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})
}

func TestUserServiceAuthenticate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)
	ctx := context.Background()

	user := testutil.CreateTestUser(t, db)

	t.Run("valid credentials", func(t *testing.T) {
		got, err := svc.Authenticate(ctx, LoginRequest{
			Email:    user.Email,
			Password: testutil.TestPassword,
		})
		testutil.AssertNoError(t, err)
		if got.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, got.ID)
		}
		if got.LastLoginAt == nil {
			t.Error("expected last login to be stamped")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, LoginRequest{
			Email:    user.Email,
			Password: "not-the-password",
		})
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, LoginRequest{
			Email:    "nobody@example.com",
			Password: testutil.TestPassword,
		})
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})
}

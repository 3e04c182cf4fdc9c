package services

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"cryptofolio/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("satoshi", "supersecret")
		testutil.AssertNoError(t, err)

		if user.ID == 0 {
			t.Fatal("expected non-zero user ID")
		}
		if user.Username != "satoshi" {
			t.Errorf("unexpected username %q", user.Username)
		}
		if user.Password == "supersecret" {
			t.Error("password must be stored hashed")
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("supersecret")) != nil {
			t.Error("stored hash should verify against the original password")
		}
		if !user.IsActive {
			t.Error("new users should be active")
		}
	})

	t.Run("duplicate_username", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("satoshi", "supersecret")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("satoshi", "othersecret")
		testutil.AssertAppError(t, err, "DUPLICATE_USERNAME")
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("", "supersecret")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateUser("satoshi", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("short_username", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("ab", "supersecret")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestAttemptLogin(t *testing.T) {
	t.Run("success_records_login_time", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created, err := svc.CreateUser("satoshi", "supersecret")
		testutil.AssertNoError(t, err)

		user, err := svc.AttemptLogin("satoshi", "supersecret")
		testutil.AssertNoError(t, err)
		if user.ID != created.ID {
			t.Errorf("expected user %d, got %d", created.ID, user.ID)
		}
		if user.LastLoginAt == nil {
			t.Error("expected login time to be recorded")
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("satoshi", "supersecret")
		testutil.AssertNoError(t, err)

		_, err = svc.AttemptLogin("satoshi", "wrong")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("unknown_username_same_error", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		// Unknown user and wrong password must be indistinguishable.
		_, err := svc.AttemptLogin("nobody", "supersecret")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})
}

func TestGetUserByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	created, err := svc.CreateUser("satoshi", "supersecret")
	testutil.AssertNoError(t, err)

	user, err := svc.GetUserByID(created.ID)
	testutil.AssertNoError(t, err)
	if user.Username != "satoshi" {
		t.Errorf("unexpected username %q", user.Username)
	}

	_, err = svc.GetUserByID(9999)
	testutil.AssertAppError(t, err, "USER_NOT_FOUND")
}

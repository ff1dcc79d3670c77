package services

import (
	"errors"
	"testing"

	"github.com/DragianXOG/diet-app/config"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	db := newTestDB(t)
	old := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = old })

	t.Setenv("JWT_SECRET", "test-secret")

	token, err := RegisterUser("Alex@Example.com", "hunter2hunter2", "Alex Doe")
	if err != nil {
		t.Fatal(err)
	}
	if token == "" {
		t.Fatal("register should return a token")
	}

	if _, err := RegisterUser("alex@example.com", "another-pass", "Dup"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate email err = %v, want ErrEmailTaken", err)
	}

	// Login is case-insensitive on email.
	if _, err := AuthenticateUser("ALEX@example.com", "hunter2hunter2"); err != nil {
		t.Errorf("login failed: %v", err)
	}
	if _, err := AuthenticateUser("alex@example.com", "wrong"); err == nil {
		t.Error("wrong password should fail")
	}
	if _, err := AuthenticateUser("nobody@example.com", "hunter2hunter2"); err == nil {
		t.Error("unknown user should fail")
	}
}

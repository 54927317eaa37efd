package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func newTestService() *Service {
	return NewService(NewMemoryStore(), nil, nil)
}

func TestService_LoginDemoAccount(t *testing.T) {
	svc := newTestService()

	sess, err := svc.Login(context.Background(), "demo@streambox.com", "Demo123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.User.ID != "demo-1" || sess.User.Username != "demo" {
		t.Fatalf("session user = %+v, want demo account", sess.User)
	}
	if !strings.HasPrefix(sess.Token, "local_token_demo-1_") {
		t.Fatalf("token = %q, want local_token_demo-1_ prefix", sess.Token)
	}
	if !svc.VerifyToken(sess.Token) {
		t.Fatalf("VerifyToken rejected a token the service minted")
	}
}

func TestService_LoginWrongPassword(t *testing.T) {
	svc := newTestService()

	_, err := svc.Login(context.Background(), "demo@streambox.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if err.Error() != "Invalid email or password" {
		t.Fatalf("message = %q, want the display message", err.Error())
	}
}

func TestService_LoginUnknownEmail(t *testing.T) {
	svc := newTestService()

	_, err := svc.Login(context.Background(), "nobody@example.com", "Demo123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestService_RegisterThenLogin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	sess, err := svc.Register(ctx, "newuser", "new@example.com", "Secret1!")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if sess.User.Username != "newuser" || sess.User.Email != "new@example.com" {
		t.Fatalf("session user = %+v", sess.User)
	}
	if sess.User.FirstName != "newuser" || sess.User.LastName != "User" {
		t.Fatalf("profile defaults = %q %q, want username + User", sess.User.FirstName, sess.User.LastName)
	}
	if !svc.VerifyToken(sess.Token) {
		t.Fatalf("registration token not verifiable: %q", sess.Token)
	}

	again, err := svc.Login(ctx, "new@example.com", "Secret1!")
	if err != nil {
		t.Fatalf("Login after Register: %v", err)
	}
	if again.User.ID != sess.User.ID {
		t.Fatalf("login returned a different account: %q vs %q", again.User.ID, sess.User.ID)
	}
}

func TestService_RegisterDuplicateEmailIsCaseInsensitive(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(context.Background(), "other", "DEMO@STREAMBOX.COM", "Secret1!")
	if !errors.Is(err, ErrEmailRegistered) {
		t.Fatalf("err = %v, want ErrEmailRegistered", err)
	}
}

func TestService_RegisterDuplicateUsernameIsCaseInsensitive(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(context.Background(), "DEMO", "other@example.com", "Secret1!")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("err = %v, want ErrUsernameTaken", err)
	}
}

func TestService_RegisterTrimsFields(t *testing.T) {
	svc := newTestService()

	sess, err := svc.Register(context.Background(), "  spaced  ", "  spaced@example.com  ", "Secret1!")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if sess.User.Username != "spaced" || sess.User.Email != "spaced@example.com" {
		t.Fatalf("fields not trimmed: %+v", sess.User)
	}
}

func TestService_VerifyTokenShape(t *testing.T) {
	svc := newTestService()

	if svc.VerifyToken("") {
		t.Fatalf("empty token accepted")
	}
	if svc.VerifyToken("some-remote-jwt") {
		t.Fatalf("foreign token accepted")
	}
	if !svc.VerifyToken("local_token_user_x_123") {
		t.Fatalf("well-shaped local token rejected")
	}
}

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	maker := NewTokenMaker("secret", time.Hour)
	userID := uuid.New()

	token, err := maker.CreateToken(userID)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	claims, err := maker.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID.String() {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
}

func TestExpiredTokenFailsValidation(t *testing.T) {
	maker := NewTokenMaker("secret", -time.Minute)

	token, err := maker.CreateToken(uuid.New())
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if _, err := maker.ValidateToken(token); err == nil {
		t.Error("expired token validated")
	}
}

func TestNonHMACSignatureFailsValidation(t *testing.T) {
	maker := NewTokenMaker("secret", time.Hour)

	claims := &Claims{
		UserID: uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	if _, err := maker.ValidateToken(unsigned); err == nil {
		t.Error("alg=none token validated")
	}
}

func TestWrongSecretFailsValidation(t *testing.T) {
	token, err := NewTokenMaker("secret-a", time.Hour).CreateToken(uuid.New())
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if _, err := NewTokenMaker("secret-b", time.Hour).ValidateToken(token); err == nil {
		t.Error("token signed with another secret validated")
	}
}

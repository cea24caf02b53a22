package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTCarriesIdentityClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed, err := GenerateJWT(42, "asha@yamkar.in", "employee")
	if err != nil {
		t.Fatalf("generate jwt: %v", err)
	}

	token, err := jwt.Parse(signed, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not validate: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["userId"].(float64) != 42 {
		t.Fatalf("unexpected userId claim: %v", claims["userId"])
	}
	if claims["role"].(string) != "employee" {
		t.Fatalf("unexpected role claim: %v", claims["role"])
	}
	if claims["email"].(string) != "asha@yamkar.in" {
		t.Fatalf("unexpected email claim: %v", claims["email"])
	}
}

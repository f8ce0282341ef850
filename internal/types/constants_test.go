package types

import "testing"

func TestCorsOriginsDefaults(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("CLIENT_URL", "")

	got := corsOrigins()

	if len(got) != 2 || got[0] != "http://localhost:3000" {
		t.Fatalf("expected development defaults, got %v", got)
	}
}

func TestCorsOriginsFromEnv(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", " https://app.example.com , ,https://staging.example.com")
	t.Setenv("CLIENT_URL", "")

	got := corsOrigins()

	if len(got) != 2 {
		t.Fatalf("expected env list to replace the defaults, got %v", got)
	}
	if got[0] != "https://app.example.com" || got[1] != "https://staging.example.com" {
		t.Errorf("unexpected origins: %v", got)
	}
}

func TestCorsOriginsClientURLAppends(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com")
	t.Setenv("CLIENT_URL", "https://beta.example.com")

	got := corsOrigins()

	if len(got) != 2 || got[1] != "https://beta.example.com" {
		t.Fatalf("expected CLIENT_URL appended, got %v", got)
	}
}

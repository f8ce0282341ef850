package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{BadRequest(""), http.StatusBadRequest},
		{Unauthorized(), http.StatusUnauthorized},
		{Unauthenticated(), http.StatusUnauthorized},
		{Forbidden(""), http.StatusForbidden},
		{NotFound(""), http.StatusNotFound},
		{Conflict("taken"), http.StatusConflict},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := tc.err.Status(); got != tc.want {
			t.Errorf("kind %d: status = %d, want %d", tc.err.Kind, got, tc.want)
		}
	}
}

func TestDefaultMessages(t *testing.T) {
	if got := BadRequest("").Message; got != "Invalid request" {
		t.Errorf("BadRequest default = %q", got)
	}
	if got := Forbidden("").Message; got != "You are not authorized to perform this action" {
		t.Errorf("Forbidden default = %q", got)
	}
	if got := Unauthorized().Message; got != "Invalid email or password" {
		t.Errorf("Unauthorized message = %q", got)
	}
	if got := Unauthenticated().Message; got != "Not authenticated" {
		t.Errorf("Unauthenticated message = %q", got)
	}
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := Internal(cause)

	if err.Message == cause.Error() {
		t.Error("internal error must not expose the underlying cause")
	}
	if !errors.Is(err, cause) {
		t.Error("cause should be reachable via errors.Is")
	}
}

func TestFrom(t *testing.T) {
	original := Forbidden("nope")

	if got := From(fmt.Errorf("wrapped: %w", original)); got != original {
		t.Error("From should unwrap to the original *Error")
	}

	unknown := errors.New("disk on fire")
	wrapped := From(unknown)

	if wrapped.Kind != KindInternal {
		t.Errorf("unknown errors should become internal, got kind %d", wrapped.Kind)
	}
}

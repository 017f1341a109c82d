package domain_test

import (
	"strings"
	"testing"

	"github.com/msomdec/job-portal/internal/domain"
)

func TestUser_StringMasksPassword(t *testing.T) {
	u := domain.User{Email: "a@x.com", Fullname: "Ann", Role: "applicant", Password: "p1"}

	s := u.String()
	if strings.Contains(s, "p1") {
		t.Fatalf("expected password to be masked, got %q", s)
	}
	if !strings.Contains(s, "a@x.com") || !strings.Contains(s, "applicant") {
		t.Fatalf("expected email and role in %q", s)
	}
}

package store

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"2witter/models"
)

func TestRegisterThenAuthenticate(t *testing.T) {
	s := NewAccountStore("")
	for _, name := range []string{"alice", "bob", "Alice", "gopher 1"} {
		if _, err := s.Register(name, "pw-"+name, "", ""); err != nil {
			t.Fatalf("register %q: %v", name, err)
		}
		if _, err := s.Authenticate(name, "pw-"+name); err != nil {
			t.Fatalf("authenticate %q: %v", name, err)
		}
	}
	if s.Len() != 4 {
		t.Fatalf("got %d accounts", s.Len())
	}
}

func TestRegisterStoresTrimmedProfile(t *testing.T) {
	s := NewAccountStore("")
	got, err := s.Register("alice", "  secret ", "  hi there\n", " http://x/a.png ")
	if err != nil {
		t.Fatal(err)
	}
	want := models.Account{
		Username: "alice",
		Password: "  secret ",
		Bio:      "hi there",
		Picture:  "http://x/a.png",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	stored, _ := s.Lookup("alice")
	if diff := cmp.Diff(want, stored); diff != "" {
		t.Fatalf("stored (-want +got):\n%s", diff)
	}
}

func TestRegisterDefaultPicture(t *testing.T) {
	got, err := NewAccountStore("").Register("alice", "pw", "", "   ")
	if err != nil {
		t.Fatal(err)
	}
	if got.Picture != models.DefaultPicture {
		t.Fatalf("got %q", got.Picture)
	}

	got, err = NewAccountStore("http://local/p.png").Register("bob", "pw", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if got.Picture != "http://local/p.png" {
		t.Fatalf("got %q", got.Picture)
	}
}

func TestRegisterMissingField(t *testing.T) {
	s := NewAccountStore("")
	cases := [][2]string{
		{"", "pw"},
		{"   ", "pw"},
		{"alice", ""},
		{"alice", " \t"},
	}
	for _, c := range cases {
		if _, err := s.Register(c[0], c[1], "", ""); !errors.Is(err, ErrMissingField) {
			t.Fatalf("register(%q, %q): got %v", c[0], c[1], err)
		}
	}
	if s.Len() != 0 {
		t.Fatalf("got %d accounts", s.Len())
	}
}

func TestRegisterDuplicate(t *testing.T) {
	s := NewAccountStore("")
	if _, err := s.Register("alice", "one", "first", ""); err != nil {
		t.Fatal(err)
	}
	for _, pw := range []string{"one", "two", "three"} {
		if _, err := s.Register("alice", pw, "", ""); !errors.Is(err, ErrDuplicateUsername) {
			t.Fatalf("got %v", err)
		}
	}
	account, _ := s.Lookup("alice")
	if account.Password != "one" || account.Bio != "first" {
		t.Fatalf("original account changed: %+v", account)
	}
}

func TestAuthenticateFailures(t *testing.T) {
	s := NewAccountStore("")
	if _, err := s.Register("alice", "secret", "", ""); err != nil {
		t.Fatal(err)
	}
	for _, c := range [][2]string{
		{"alice", "wrong"},
		{"alice", "secret "},
		{"alice", "Secret"},
		{"nobody", "secret"},
		{"Alice", "secret"},
	} {
		if _, err := s.Authenticate(c[0], c[1]); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("authenticate(%q, %q): got %v", c[0], c[1], err)
		}
	}
	if _, err := s.Authenticate("alice", "  "); !errors.Is(err, ErrMissingField) {
		t.Fatalf("got %v", err)
	}
}

func TestPicture(t *testing.T) {
	s := NewAccountStore("")
	if _, err := s.Register("alice", "pw", "", "http://x/a.png"); err != nil {
		t.Fatal(err)
	}
	if got := s.Picture("alice"); got != "http://x/a.png" {
		t.Fatalf("got %q", got)
	}
	if got := s.Picture("ghost"); got != models.DefaultPicture {
		t.Fatalf("got %q", got)
	}
}

// ABOUTME: Tests for credential validation rules.
package wire_test

import (
	"testing"

	"github.com/2389-research/gifbox/wire"
)

func TestValidEmail(t *testing.T) {
	cases := map[string]bool{
		"a@b.com":             true,
		"user.name@host.io":   true,
		"not-an-email":        false,
		"":                    false,
		"Bob <bob@host.io>":   false,
		"missing-at.host.com": false,
	}
	for in, want := range cases {
		if got := wire.ValidEmail(in); got != want {
			t.Errorf("ValidEmail(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestValidPassword(t *testing.T) {
	if wire.ValidPassword("12345") {
		t.Error("expected 5 characters to be rejected")
	}
	if !wire.ValidPassword("123456") {
		t.Error("expected 6 characters to be accepted")
	}
}

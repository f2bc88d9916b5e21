package version

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveBlankFallsBackToDefault(t *testing.T) {
	r := NewResolver("X-API-Version", "1", []string{"1"})

	for _, header := range []string{"", "   "} {
		v, err := r.Resolve(header)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", header, err)
		}
		if v != V1 {
			t.Fatalf("expected default version 1, got %s", v)
		}
	}
}

func TestResolveSupportedVersion(t *testing.T) {
	r := NewResolver("X-API-Version", "1", []string{"1", "2"})

	v, err := r.Resolve(" 2 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != Version("2") {
		t.Fatalf("expected version 2, got %s", v)
	}
}

func TestResolveUnsupportedVersion(t *testing.T) {
	r := NewResolver("X-API-Version", "1", []string{"1"})

	_, err := r.Resolve("99")
	var uve *UnsupportedVersionError
	if !errors.As(err, &uve) {
		t.Fatalf("expected UnsupportedVersionError, got %v", err)
	}
	if !strings.Contains(err.Error(), "99") {
		t.Fatalf("expected error to name the received value, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "1") {
		t.Fatalf("expected error to list supported versions, got %q", err.Error())
	}
}

func TestNewResolverEnsuresDefaultIsSupported(t *testing.T) {
	r := NewResolver("X-API-Version", "1", nil)

	v, err := r.Resolve("1")
	if err != nil {
		t.Fatalf("expected default version to be implicitly supported, got %v", err)
	}
	if v != V1 {
		t.Fatalf("expected version 1, got %s", v)
	}
	if r.HeaderName() != "X-API-Version" {
		t.Fatalf("unexpected header name %s", r.HeaderName())
	}
}

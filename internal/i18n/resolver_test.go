package i18n

import (
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveQueryBeatsHeader(t *testing.T) {
	r := NewResolver("fr")
	req := httptest.NewRequest("GET", "/stories?lang=ar", nil)
	req.Header.Set("Accept-Language", "en-US")
	if got := r.FromRequest(req); Code(got) != "ar" {
		t.Fatalf("got %v, want ar", got)
	}
}

func TestResolveAcceptLanguage(t *testing.T) {
	r := NewResolver("fr")
	req := httptest.NewRequest("GET", "/stories", nil)
	req.Header.Set("Accept-Language", "en-GB,en;q=0.9")
	if got := r.FromRequest(req); Code(got) != "en" {
		t.Fatalf("got %v, want en", got)
	}
}

func TestResolveDefault(t *testing.T) {
	r := NewResolver("fr")
	req := httptest.NewRequest("GET", "/stories", nil)
	if got := r.FromRequest(req); Code(got) != "fr" {
		t.Fatalf("got %v, want fr", got)
	}
}

func TestResolveUnsupportedFallsBack(t *testing.T) {
	r := NewResolver("fr")
	req := httptest.NewRequest("GET", "/stories?lang=ja", nil)
	got := r.FromRequest(req)
	if Code(got) != "fr" && Code(got) != "en" && Code(got) != "ar" {
		t.Fatalf("resolved unsupported language %v", got)
	}
}

func TestDirection(t *testing.T) {
	if Direction(language.Arabic) != "rtl" {
		t.Fatalf("arabic should be rtl")
	}
	if Direction(language.French) != "ltr" {
		t.Fatalf("french should be ltr")
	}
}

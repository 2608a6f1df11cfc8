// Package i18n resolves a supported language for a request and projects
// catalog content down to it. The core engines never see language tags; they
// receive already-localized item lists.
package i18n

import (
	"net/http"

	"golang.org/x/text/language"
)

// Supported languages, French first as the app's default.
var Supported = []language.Tag{
	language.French,
	language.English,
	language.Arabic,
}

var matcher = language.NewMatcher(Supported)

// Resolver picks a supported language from a request, preferring an explicit
// ?lang= over Accept-Language, falling back to a configured default.
type Resolver struct {
	def language.Tag
}

func NewResolver(defaultLang string) *Resolver {
	def := language.French
	if defaultLang != "" {
		if tag, err := language.Parse(defaultLang); err == nil {
			def = supportedTag(tag)
		}
	}
	return &Resolver{def: def}
}

func (r *Resolver) Default() language.Tag { return r.def }

// FromRequest resolves the language for one request.
func (r *Resolver) FromRequest(req *http.Request) language.Tag {
	prefs := []string{}
	if q := req.URL.Query().Get("lang"); q != "" {
		prefs = append(prefs, q)
	}
	if h := req.Header.Get("Accept-Language"); h != "" {
		prefs = append(prefs, h)
	}
	if len(prefs) == 0 {
		return r.def
	}
	tag, _ := language.MatchStrings(matcher, prefs...)
	return supportedTag(tag)
}

// Code returns the two-letter code used as the catalog's content key.
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// Direction reports the text direction for rendering: Arabic is
// right-to-left, the rest left-to-right.
func Direction(tag language.Tag) string {
	if Code(tag) == "ar" {
		return "rtl"
	}
	return "ltr"
}

// supportedTag collapses a matcher result (which may carry extensions from
// the input) onto one of the Supported tags.
func supportedTag(tag language.Tag) language.Tag {
	_, i, _ := matcher.Match(tag)
	return Supported[i]
}

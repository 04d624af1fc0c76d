package models

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/rpupo63/editorial-backend/errs"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// IsValidSlug reports whether s is lowercase words joined by single hyphens.
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

func validateSlug(slug string) error {
	if slug == "" {
		return errs.NewMissingRequiredFieldError("slug")
	}
	if !IsValidSlug(slug) {
		return errs.NewInvalidFieldError("slug", "use lowercase letters, digits and single hyphens")
	}
	return nil
}

func validateURL(field string, raw *string) error {
	if raw == nil || *raw == "" || strings.HasPrefix(*raw, "/") {
		return nil
	}
	u, err := url.Parse(*raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errs.NewInvalidFieldError(field, "must be an absolute http(s) URL")
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

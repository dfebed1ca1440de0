package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var ErrInvalidShippingInfo = errors.New("invalid shipping info")

var (
	cityPattern = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)
	zipPattern  = regexp.MustCompile(`^\d{5}$`)
)

type ShippingInfo struct {
	City    string
	State   string
	ZipCode string
}

// Normalize trims city and state.
func (s ShippingInfo) Normalize() ShippingInfo {
	return ShippingInfo{
		City:    strings.TrimSpace(s.City),
		State:   strings.TrimSpace(s.State),
		ZipCode: s.ZipCode,
	}
}

// Validate checks a normalized ShippingInfo and reports the first failing
// field wrapped in ErrInvalidShippingInfo.
func (s ShippingInfo) Validate() error {
	cityLen := utf8.RuneCountInString(s.City)

	switch {
	case cityLen < 2:
		return fmt.Errorf("%w: city must be at least 2 characters", ErrInvalidShippingInfo)
	case cityLen > 50:
		return fmt.Errorf("%w: city must be less than 50 characters", ErrInvalidShippingInfo)
	case !cityPattern.MatchString(s.City):
		return fmt.Errorf("%w: city can only contain letters, spaces, hyphens and apostrophes", ErrInvalidShippingInfo)
	case s.State == "":
		return fmt.Errorf("%w: state is required", ErrInvalidShippingInfo)
	case !zipPattern.MatchString(s.ZipCode):
		return fmt.Errorf("%w: zip code must be 5 digits", ErrInvalidShippingInfo)
	}

	return nil
}

package slug

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// Make derives a URL-safe slug from an event title: lowercase ASCII letters
// and digits with single hyphens between words.
func Make(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) && r < unicode.MaxASCII, unicode.IsDigit(r) && r < unicode.MaxASCII:
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// ExistsFunc reports whether a slug is already taken.
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// Unique returns the first free slug for title, suffixing -2, -3, ... on
// collision. The probe count is capped so a broken exists check cannot loop
// forever.
func Unique(ctx context.Context, title string, exists ExistsFunc) (string, error) {
	base := Make(title)
	if base == "" {
		base = "event"
	}

	candidate := base
	for i := 2; i <= 50; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}

	return "", fmt.Errorf("could not find a free slug for %q", base)
}

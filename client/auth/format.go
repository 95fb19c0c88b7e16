package auth

import "strings"

// Format is an Authorization header convention
type Format string

const (
	// FormatBearer renders "Bearer <token>"
	FormatBearer Format = "bearer"
	// FormatToken renders "Token <token>"
	FormatToken Format = "token"
	// FormatRaw renders the raw token without any scheme
	FormatRaw Format = "raw"
)

// probeOrder is the order alternative formats are tried after a 401.
var probeOrder = []Format{FormatBearer, FormatRaw, FormatToken}

// Formats returns every format in probe order
func Formats() []Format {
	return append([]Format(nil), probeOrder...)
}

// ParseFormat returns a format for the stored tag, unknown or empty tags map to bearer.
func ParseFormat(tag string) Format {
	if format := Format(strings.ToLower(strings.TrimSpace(tag))); format.IsValid() {
		return format
	}
	return FormatBearer
}

// IsValid reports whether f is one of the known formats
func (f Format) IsValid() bool {
	switch f {
	case FormatBearer, FormatToken, FormatRaw:
		return true
	}
	return false
}

// Header renders the Authorization header value for the credential
func (f Format) Header(credential *Credential) string {
	if credential == nil || credential.Token == "" {
		return ""
	}
	switch f {
	case FormatToken:
		return "Token " + credential.Token
	case FormatRaw:
		if credential.Raw != "" {
			return credential.Raw
		}
		return credential.Token
	default:
		return "Bearer " + credential.Token
	}
}

// Fallback returns formats to probe once current was rejected.
func Fallback(current Format) []Format {
	current = ParseFormat(string(current))
	var result = make([]Format, 0, len(probeOrder)-1)
	for _, candidate := range probeOrder {
		if candidate != current {
			result = append(result, candidate)
		}
	}
	return result
}

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat_Header(t *testing.T) {
	credential := &Credential{Token: "Bearer abc", Raw: "abc"}
	var testCases = []struct {
		description string
		format      Format
		credential  *Credential
		expect      string
	}{
		{description: "bearer", format: FormatBearer, credential: credential, expect: "Bearer Bearer abc"},
		{description: "token", format: FormatToken, credential: credential, expect: "Token Bearer abc"},
		{description: "raw", format: FormatRaw, credential: credential, expect: "abc"},
		{description: "raw falls back to token", format: FormatRaw, credential: &Credential{Token: "xyz"}, expect: "xyz"},
		{description: "unknown defaults to bearer", format: Format("basic"), credential: &Credential{Token: "xyz"}, expect: "Bearer xyz"},
		{description: "no credential", format: FormatBearer, credential: nil, expect: ""},
		{description: "empty token", format: FormatToken, credential: &Credential{}, expect: ""},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, testCase.format.Header(testCase.credential), testCase.description)
	}
}

func TestFallback(t *testing.T) {
	var testCases = []struct {
		current Format
		expect  []Format
	}{
		{current: FormatBearer, expect: []Format{FormatRaw, FormatToken}},
		{current: FormatToken, expect: []Format{FormatBearer, FormatRaw}},
		{current: FormatRaw, expect: []Format{FormatBearer, FormatToken}},
		{current: Format("weird"), expect: []Format{FormatRaw, FormatToken}},
		{current: Format(""), expect: []Format{FormatRaw, FormatToken}},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, Fallback(testCase.current), string(testCase.current))
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatRaw, ParseFormat("raw"))
	assert.Equal(t, FormatToken, ParseFormat(" Token "))
	assert.Equal(t, FormatBearer, ParseFormat(""))
	assert.Equal(t, FormatBearer, ParseFormat("jwt"))
	assert.True(t, FormatRaw.IsValid())
	assert.False(t, Format("jwt").IsValid())
}

func TestFormats(t *testing.T) {
	formats := Formats()
	assert.Equal(t, []Format{FormatBearer, FormatRaw, FormatToken}, formats)
	formats[0] = FormatToken
	assert.Equal(t, FormatBearer, Formats()[0])
}

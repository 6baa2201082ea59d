package gateway

import (
	"ccsed-client/internal/pkg/exceptions"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseWithCookies(cookies ...string) *http.Response {
	header := http.Header{}
	for _, cookie := range cookies {
		header.Add("Set-Cookie", cookie)
	}
	return &http.Response{Header: header}
}

func TestExtractCredential(t *testing.T) {
	tests := []struct {
		name      string
		bodyToken string
		response  *http.Response
		wantToken string
		wantKind  exceptions.Kind
	}{
		{
			name:      "body and matching cookie",
			bodyToken: "abc",
			response:  responseWithCookies("token=abc; Path=/; HttpOnly"),
			wantToken: "abc",
		},
		{
			name:      "body only",
			bodyToken: "abc",
			response:  responseWithCookies(),
			wantToken: "abc",
		},
		{
			name:      "cookie fallback among other cookies",
			response:  responseWithCookies("lang=es", "token=xyz; Path=/"),
			wantToken: "xyz",
		},
		{
			name:      "body and cookie disagree",
			bodyToken: "abc",
			response:  responseWithCookies("token=other"),
			wantKind:  exceptions.KindValidation,
		},
		{
			name:     "neither source",
			response: responseWithCookies("lang=es"),
			wantKind: exceptions.KindAuth,
		},
		{
			name:     "empty cookie value",
			response: responseWithCookies("token=; Path=/"),
			wantKind: exceptions.KindAuth,
		},
		{
			name:      "body token with empty cookie",
			bodyToken: "abc",
			response:  responseWithCookies("token=; Path=/; Max-Age=0"),
			wantToken: "abc",
		},
		{
			name:      "body token with whitespace",
			bodyToken: "ab c",
			response:  responseWithCookies(),
			wantKind:  exceptions.KindAuth,
		},
		{
			name:     "nil response",
			response: nil,
			wantKind: exceptions.KindAuth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			credential, err := extractCredential(tt.bodyToken, tt.response)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, exceptions.IsKind(err, tt.wantKind), "got %v", err)
				assert.True(t, credential.IsEmpty())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, credential.Value)
		})
	}
}

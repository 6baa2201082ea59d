package gateway

import (
	"ccsed-client/internal/app/models"
	"ccsed-client/internal/pkg/constvars"
	"ccsed-client/internal/pkg/exceptions"
	"errors"
	"net/http"
	"strings"
)

// extractCredential picks the login token. The JSON body is the primary
// source and the token cookie the fallback; when both are present they must
// agree.
func extractCredential(bodyToken string, resp *http.Response) (models.Credential, error) {
	bodyToken = strings.TrimSpace(bodyToken)
	cookieToken, cookieFound := tokenFromCookies(resp)

	switch {
	case bodyToken != "" && cookieFound && cookieToken != bodyToken:
		return models.Credential{}, exceptions.ErrTokenDivergent(errors.New("body and cookie tokens differ"))
	case bodyToken != "":
		if !isWellFormedToken(bodyToken) {
			return models.Credential{}, exceptions.ErrTokenMalformed(errors.New("body token contains whitespace or control characters"))
		}
		return models.NewCredential(bodyToken), nil
	case cookieFound:
		if !isWellFormedToken(cookieToken) {
			return models.Credential{}, exceptions.ErrTokenMalformed(errors.New("cookie token is malformed"))
		}
		return models.NewCredential(cookieToken), nil
	default:
		return models.Credential{}, exceptions.ErrTokenMissing(errors.New("neither body nor set-cookie carried a token"))
	}
}

// tokenFromCookies treats a blank token cookie, as sent when the backend
// clears it, the same as no cookie.
func tokenFromCookies(resp *http.Response) (string, bool) {
	if resp == nil {
		return "", false
	}
	for _, cookie := range resp.Cookies() {
		if cookie.Name != constvars.CookieNameToken {
			continue
		}
		if value := strings.TrimSpace(cookie.Value); value != "" {
			return value, true
		}
	}
	return "", false
}

func isWellFormedToken(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if r <= ' ' || r == 0x7f {
			return false
		}
	}
	return true
}

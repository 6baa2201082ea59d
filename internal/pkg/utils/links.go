package utils

import (
	"ccsed-client/internal/pkg/constvars"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// BuildMapsURL returns the map link for a [latitude, longitude] pair.
func BuildMapsURL(latitude, longitude float64) string {
	return fmt.Sprintf(constvars.MapsQueryUrlFormat, formatCoordinate(latitude), formatCoordinate(longitude))
}

// BuildDialerURL strips everything a dialer would reject, keeping a leading plus.
func BuildDialerURL(phone string) string {
	var builder strings.Builder
	for i, r := range strings.TrimSpace(phone) {
		if (r >= '0' && r <= '9') || (r == '+' && i == 0) {
			builder.WriteRune(r)
		}
	}
	return fmt.Sprintf(constvars.DialerUrlFormat, builder.String())
}

// ResolveAssetURL resolves a backend-relative asset path such as an
// announcement image against the backend base URL.
func ResolveAssetURL(baseURL, assetPath string) (string, error) {
	if assetPath == "" {
		return "", nil
	}
	base, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(strings.TrimLeft(assetPath, "/"))
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}

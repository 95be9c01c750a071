// Package safety provides request policy checks for the browser-facing tools.
package safety

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
)

// maxURLLength caps model-supplied URLs; longer inputs are rejected outright.
const maxURLLength = 2048

// allowPrivateHosts reports whether loopback and private-range hosts may be
// fetched. Off by default; AGT_ALLOW_PRIVATE_HOSTS=1 enables it (tests, local
// development against a local server).
func allowPrivateHosts() bool {
	return os.Getenv("AGT_ALLOW_PRIVATE_HOSTS") == "1"
}

// ValidateURL parses raw and enforces the fetch policy:
//   - http or https scheme only
//   - a non-empty host, no embedded credentials
//   - no loopback, private, or link-local hosts unless explicitly allowed
//
// On success it returns the parsed URL for the caller to fetch.
func ValidateURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, fmt.Errorf("url is empty")
	}
	if len(raw) > maxURLLength {
		return nil, fmt.Errorf("url exceeds %d characters", maxURLLength)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("scheme %q not allowed; use http or https", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("url has no host")
	}
	if u.User != nil {
		return nil, fmt.Errorf("urls with embedded credentials are not allowed")
	}

	if !allowPrivateHosts() {
		if err := checkPublicHost(u.Hostname()); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// checkPublicHost rejects names and literal addresses that resolve inside the
// local machine or a private network. Name-based checks are best-effort; the
// literal-IP check is authoritative for IP URLs.
func checkPublicHost(host string) error {
	lower := strings.ToLower(host)
	if lower == "localhost" || strings.HasSuffix(lower, ".localhost") || strings.HasSuffix(lower, ".local") {
		return fmt.Errorf("host %q is not publicly routable", host)
	}
	if ip := net.ParseIP(host); ip != nil {
		if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsUnspecified() {
			return fmt.Errorf("ip %q is not publicly routable", host)
		}
	}
	return nil
}

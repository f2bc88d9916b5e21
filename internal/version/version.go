// Package version resolves the API protocol version requested by a client.
package version

import (
	"fmt"
	"strings"
)

// Version is a supported API protocol version, e.g. "1".
type Version string

// V1 is the only version recognized in the current configuration.
const V1 Version = "1"

// UnsupportedVersionError signals a version header value outside the
// configured supported set.
type UnsupportedVersionError struct {
	Value     string
	Supported []Version
}

func (e *UnsupportedVersionError) Error() string {
	names := make([]string, len(e.Supported))
	for i, v := range e.Supported {
		names[i] = string(v)
	}
	return fmt.Sprintf("unsupported API version: %s (supported: %s)", e.Value, strings.Join(names, ", "))
}

// Resolver selects an API version from an inbound header value against a
// configured default and supported set. Adding a version is a configuration
// change; call sites stay untouched.
type Resolver struct {
	headerName     string
	defaultVersion Version
	supported      []Version
}

// NewResolver builds a resolver. The supported set always contains the
// default version.
func NewResolver(headerName, defaultVersion string, supported []string) *Resolver {
	r := &Resolver{
		headerName:     headerName,
		defaultVersion: Version(defaultVersion),
	}
	for _, s := range supported {
		if s = strings.TrimSpace(s); s != "" {
			r.supported = append(r.supported, Version(s))
		}
	}
	if !r.isSupported(r.defaultVersion) {
		r.supported = append(r.supported, r.defaultVersion)
	}
	return r
}

// HeaderName returns the configured request header carrying the version.
func (r *Resolver) HeaderName() string {
	return r.headerName
}

// Resolve maps a raw header value to a version. Missing or blank values fall
// back to the configured default; unknown values fail with an
// UnsupportedVersionError naming the received value and the supported set.
func (r *Resolver) Resolve(headerValue string) (Version, error) {
	headerValue = strings.TrimSpace(headerValue)
	if headerValue == "" {
		return r.defaultVersion, nil
	}
	if r.isSupported(Version(headerValue)) {
		return Version(headerValue), nil
	}
	return "", &UnsupportedVersionError{Value: headerValue, Supported: r.supported}
}

func (r *Resolver) isSupported(v Version) bool {
	for _, s := range r.supported {
		if s == v {
			return true
		}
	}
	return false
}

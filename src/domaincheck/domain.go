// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domaincheck

import (
	"strings"

	"golang.org/x/net/idna"
)

// normalizeDomain trims whitespace from a domain name. Nothing else is
// validated: malformed names are passed through to the probes, which
// fail naturally and report sentinels.
func normalizeDomain(domain string) string {
	return strings.TrimSpace(domain)
}

// asciiDomain converts a domain to its ASCII (punycode) form for use as
// a probe target, so internationalized names resolve and connect
// correctly. The caller-facing [Record.Domain] keeps the original
// spelling. On conversion failure the raw name is returned unchanged.
func asciiDomain(domain string) string {
	ascii, err := idna.Lookup.ToASCII(domain)
	if err != nil {
		return domain
	}
	return ascii
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domaincheck

import "errors"

// Sentinel errors for the domaincheck package.
var (
	// ErrNoDomains is returned when a batch check is invoked with an
	// empty domain list.
	ErrNoDomains = errors.New("domaincheck: no domains provided")

	// ErrAllDNSFailed is returned internally when every configured DNS
	// server failed to answer an NS query.
	ErrAllDNSFailed = errors.New("domaincheck: all DNS servers failed to respond")

	// ErrDNSTimeout is returned when a DNS query exceeds the configured timeout.
	ErrDNSTimeout = errors.New("domaincheck: DNS query timed out")

	// ErrInternalPanic is returned when an internal panic is recovered during execution.
	ErrInternalPanic = errors.New("domaincheck: internal panic recovered")
)

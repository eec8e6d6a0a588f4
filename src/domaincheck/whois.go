// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domaincheck

import (
	"context"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
)

// WhoisFunc performs a raw WHOIS query for a domain and returns the
// registry's textual response. The default implementation uses a
// timeout-bounded [whois.Client]; tests and advanced callers can inject
// their own via [WithWhoisFunc].
type WhoisFunc func(ctx context.Context, domain string) (string, error)

// defaultWhoisFunc wraps the whois client so the query can be abandoned
// when the context is done. The client enforces its own dial timeout;
// the goroutine is left to finish in the background on cancellation.
func defaultWhoisFunc(client *whois.Client) WhoisFunc {
	return func(ctx context.Context, domain string) (string, error) {
		type whoisResult struct {
			raw string
			err error
		}
		ch := make(chan whoisResult, 1)

		go func() {
			raw, err := client.Whois(domain)
			ch <- whoisResult{raw: raw, err: err}
		}()

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case result := <-ch:
			return result.raw, result.err
		}
	}
}

// checkExpiry queries WHOIS registration data for a domain and renders
// the expiration date as an ISO calendar date (YYYY-MM-DD).
//
// The two failure sentinels are deliberately distinct: [ExpiryUnknown]
// means the registry answered but the expiration field was absent or not
// date-typed, while [ExpiryLookupFailed] means the query or parse itself
// failed (network error, unsupported TLD, malformed response).
func (c *Checker) checkExpiry(ctx context.Context, domain string) string {
	raw, err := c.whoisFunc(ctx, domain)
	if err != nil {
		return ExpiryLookupFailed
	}

	info, err := whoisparser.Parse(raw)
	if err != nil {
		return ExpiryLookupFailed
	}

	return formatExpiry(info)
}

// formatExpiry extracts the expiration date from parsed WHOIS data.
// Registries sometimes report several expiry values; the parser keeps
// the first one encountered, matching the reported date to the record
// shown by registry web lookups.
func formatExpiry(info whoisparser.WhoisInfo) string {
	if info.Domain == nil {
		return ExpiryUnknown
	}
	if info.Domain.ExpirationDateInTime == nil {
		// Field missing entirely, or present but not parseable as a
		// date (ExpirationDate still carries the raw text then).
		return ExpiryUnknown
	}
	return info.Domain.ExpirationDateInTime.Format("2006-01-02")
}

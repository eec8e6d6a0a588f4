// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domaincheck

import (
	"net/http"
	"strings"
	"time"

	"github.com/miekg/dns"
)

// Option is a functional option for configuring a [Checker].
type Option func(*Checker)

// WithChecks selects which checks run. The default enables all four.
//
// Note the documented dependency: Parking without NameServers reports
// [ParkedNA] for every domain, because the classifier has no delegation
// data to work with.
func WithChecks(cfg CheckConfig) Option {
	return func(c *Checker) {
		c.checks = cfg
	}
}

// WithTimeout sets the timeout for each probe attempt (per HTTP scheme,
// per DNS query, per WHOIS query). The default is 5 seconds.
//
// This option has no effect on transports injected via [WithHTTPClient],
// [WithDNSClient], or [WithWhoisFunc]; their own timeout configuration
// takes precedence.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) {
		c.timeout = d
	}
}

// WithConcurrency sets the maximum number of domains processed in
// parallel. The default is 1: domains are checked strictly one at a
// time, which keeps load on resolvers and WHOIS servers predictable.
// Each record is still written atomically, so raising this never mixes
// partial results across domains.
func WithConcurrency(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithDescriptiveStatus switches the accessibility field from the
// binary Accessible/Inaccessible form to "<code> - <description>"
// (e.g. "404 - Not Found"), with [StatusNoResponse] when neither scheme
// yields any HTTP response.
func WithDescriptiveStatus() Option {
	return func(c *Checker) {
		c.descriptive = true
	}
}

// WithParkingKeywords appends extra substrings to the parking keyword
// table. Keywords are matched case-insensitively against name-server
// hostnames; they are lowercased here so matching stays consistent.
func WithParkingKeywords(keywords ...string) Option {
	return func(c *Checker) {
		for _, keyword := range keywords {
			keyword = strings.ToLower(strings.TrimSpace(keyword))
			if keyword != "" {
				c.parkingKeywords = append(c.parkingKeywords, keyword)
			}
		}
	}
}

// WithProgress registers a callback invoked after each domain completes.
// Calls are serialized by the checker.
func WithProgress(fn ProgressFunc) Option {
	return func(c *Checker) {
		c.progress = fn
	}
}

// WithDNSServers replaces the name servers queried by the NS probe.
// Addresses without a port get ":53" appended. By default the probe
// uses the resolvers from /etc/resolv.conf, falling back to a public
// resolver when none are configured.
func WithDNSServers(servers ...string) Option {
	return func(c *Checker) {
		c.dnsServers = c.dnsServers[:0]
		for _, server := range servers {
			server = strings.TrimSpace(server)
			if server != "" {
				c.dnsServers = append(c.dnsServers, withDefaultPort(server, "53"))
			}
		}
	}
}

// WithDNSClient sets a custom [dns.Client] for all DNS operations.
// This allows full control over the transport configuration, including:
//
//   - TCP transport (Net: "tcp")
//   - DNS-over-TLS (Net: "tcp-tls" with TLSConfig)
//   - Custom Dialer for proxy or interface binding
//
// When set, [WithTimeout] will not affect DNS queries; the client's own
// Timeout will be used instead.
//
// Passing nil is a no-op and the default UDP client will be used.
func WithDNSClient(client *dns.Client) Option {
	return func(c *Checker) {
		if client != nil {
			c.dnsClient = client
		}
	}
}

// WithEDNS0Size sets the EDNS0 UDP buffer size.
// The default is 1232 bytes, which is the recommended size to prevent
// IP fragmentation over UDP.
//
// See: https://dnsflagday.net/2020/
func WithEDNS0Size(size uint16) Option {
	return func(c *Checker) {
		if size > 0 {
			c.edns0Size = size
		}
	}
}

// WithHTTPClient sets a custom [http.Client] for the accessibility
// probe, e.g. to configure proxies, TLS settings, or redirect policy.
// Passing nil is a no-op.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Checker) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithWhoisFunc replaces the raw WHOIS query implementation. The
// default uses a timeout-bounded likexian/whois client; tests inject
// canned registry responses through this option.
// Passing nil is a no-op.
func WithWhoisFunc(fn WhoisFunc) Option {
	return func(c *Checker) {
		if fn != nil {
			c.whoisFunc = fn
		}
	}
}

// WithCache sets a custom [Cache] implementation.
// By default, the checker uses an in-memory cache with a 5-minute TTL,
// which deduplicates repeated domains within and across batches.
//
// Pass nil to disable caching entirely.
func WithCache(cache Cache) Option {
	return func(c *Checker) {
		c.cache = cache
		c.noCache = cache == nil
	}
}

// WithCacheTTL sets the TTL for the built-in in-memory cache.
// This has no effect if a custom cache is set via [WithCache].
// The default is 5 minutes.
func WithCacheTTL(d time.Duration) Option {
	return func(c *Checker) {
		c.cacheTTL = d
	}
}

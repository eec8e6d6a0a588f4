// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package domaincheck checks lists of domain names for HTTP liveness,
// DNS delegation, parking-provider signatures, and registration expiry,
// and aggregates the outcomes into uniform per-domain records suitable
// for tabular export.
//
// Each domain runs through up to four independent probes:
//
//   - Accessibility — GET http://<domain>, then https://<domain>, with a
//     bounded timeout per attempt.
//   - Name servers — NS record lookup via raw DNS queries, results
//     dot-stripped and sorted for reproducible output.
//   - Parking — keyword classifier over the name-server list, matching
//     known parking-service substrings (sedoparking, bodis, afternic, …).
//   - Expiry — WHOIS query with the expiration date rendered as
//     YYYY-MM-DD.
//
// Probes never fail outward. Every network error, timeout, or malformed
// response is absorbed at the probe boundary and surfaces as a fixed
// sentinel string in the [Record] ("Inaccessible", "No Response", "N/A",
// "Unknown", "Lookup Failed"), so a batch always yields one complete
// record per input domain and a single bad domain can never abort the
// rest. Disabled checks fill their fields with "Skipped", keeping the
// export schema identical regardless of configuration.
//
// # Quick Start
//
//	c := domaincheck.New()
//
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
//	defer cancel()
//
//	records, err := c.Check(ctx, "example.com", "parked-somewhere.net")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, r := range records {
//	    fmt.Printf("%-25s %-14s parked=%-4s expires=%s\n",
//	        r.Domain, r.Status, r.Parked, r.Expiry)
//	}
//
// # Configuration
//
// Use functional options to customize the checker:
//
//	c := domaincheck.New(
//	    // Run only the DNS-side checks.
//	    domaincheck.WithChecks(domaincheck.CheckConfig{
//	        NameServers: true,
//	        Parking:     true,
//	    }),
//
//	    // Slow network? Allow 10 seconds per probe attempt.
//	    domaincheck.WithTimeout(10 * time.Second),
//
//	    // Fan out across 8 domains at a time.
//	    domaincheck.WithConcurrency(8),
//
//	    // Report "404 - Not Found" instead of "Inaccessible".
//	    domaincheck.WithDescriptiveStatus(),
//
//	    // Extend the parking keyword table.
//	    domaincheck.WithParkingKeywords("parklogic", "smartname"),
//	)
//
// Available options:
//
//   - [WithChecks]          — Select which checks run (default: all)
//   - [WithTimeout]         — Timeout per probe attempt (default: 5s)
//   - [WithConcurrency]     — Domains processed in parallel (default: 1)
//   - [WithDescriptiveStatus] — "<code> - <description>" accessibility form
//   - [WithParkingKeywords] — Extend the parking keyword table
//   - [WithProgress]        — Per-domain completion callback
//   - [WithDNSServers]      — Resolvers for the NS probe (default: resolv.conf)
//   - [WithDNSClient]       — Custom client for TCP, TLS, or custom dialer
//   - [WithEDNS0Size]       — EDNS0 UDP buffer size (default: 1232)
//   - [WithHTTPClient]      — Custom HTTP client for the accessibility probe
//   - [WithWhoisFunc]       — Custom raw WHOIS query implementation
//   - [WithCache]           — Custom Cache implementation; pass nil to disable
//   - [WithCacheTTL]        — TTL for the built-in in-memory cache (default: 5m)
//
// # The Parking Field
//
// The parking verdict depends on name-server data, which gives it three
// non-skipped states instead of two:
//
//   - "Yes" — at least one name server matched a parking keyword
//   - "No"  — name servers were found, none matched
//   - "N/A" — the check was enabled but there was nothing to classify:
//     the NS lookup returned empty, or the name-server check did not run
//     in this invocation
//
// "Skipped" appears only when the parking check itself was disabled.
// Callers that distinguish "we looked and found nothing suspicious" from
// "we could not look" rely on this split; do not collapse it.
//
// # Export
//
// [WriteCSV] and [SaveCSV] produce UTF-8 CSV with the fixed [Header] row;
// [WriteXLSX] and [SaveXLSX] produce the same table as an XLSX workbook.
// [SortByAttention] optionally reorders a result set so unreachable and
// possibly-parked domains surface first, with a stable sort preserving
// input order among ties.
//
// # Batch CLI
//
// The cmd/domain-checker command wraps this package for newline-delimited
// input files, progress output, and CSV/XLSX export. Runnable SDK
// demonstrations live under examples/.
package domaincheck

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domaincheck

import (
	"sort"
	"strings"
)

// Sentinel values used to fill [Record] fields when a check was skipped,
// produced no data, or failed. They are plain strings so that exported
// tables keep a uniform schema regardless of which checks ran.
const (
	// Skipped fills any field whose check was disabled for the run.
	Skipped = "Skipped"

	// StatusAccessible and StatusInaccessible are the binary accessibility
	// outcomes. StatusNoResponse is the descriptive-form outcome when both
	// the http and https attempts failed at the transport level.
	StatusAccessible   = "Accessible"
	StatusInaccessible = "Inaccessible"
	StatusNoResponse   = "No Response"

	// ParkedYes and ParkedNo are classifier verdicts. ParkedNA means the
	// parking check was enabled but there was no name-server data to
	// evaluate: either the lookup returned nothing or the name-server
	// check did not run in this invocation. It is deliberately distinct
	// from Skipped.
	ParkedYes = "Yes"
	ParkedNo  = "No"
	ParkedNA  = "N/A"

	// NameServersNone fills the name-server column when the lookup ran
	// and found no records.
	NameServersNone = "N/A"

	// ExpiryUnknown means WHOIS data was retrieved but carried no usable
	// expiration date. ExpiryLookupFailed means the WHOIS query or parse
	// itself failed.
	ExpiryUnknown      = "Unknown"
	ExpiryLookupFailed = "Lookup Failed"
)

// Record is the outcome of checking a single domain. Every field is
// always populated; fields of disabled checks hold [Skipped].
type Record struct {
	// Domain is the domain name as provided by the caller,
	// whitespace-trimmed.
	Domain string

	// Status is the HTTP accessibility outcome: Accessible/Inaccessible
	// in the binary form, or "<code> - <description>"/"No Response" in
	// the descriptive form.
	Status string

	// NameServers is the comma-joined, lexicographically sorted list of
	// NS targets, or a sentinel.
	NameServers string

	// Parked is the parking classifier verdict: Yes, No, N/A, or Skipped.
	Parked string

	// Expiry is the registration expiration date as YYYY-MM-DD,
	// or a sentinel.
	Expiry string

	// Err is non-nil only when the domain was never probed: the batch
	// was cancelled before its turn, or its pipeline panicked. Probe
	// failures do not set it; they are absorbed into the sentinel
	// fields above. Err is not part of the tabular export.
	Err error
}

// Header is the fixed column set of the tabular export, in order.
var Header = []string{"Domain", "Status", "Name Servers", "Possibly Parked", "Expiration Date"}

// Row returns the record's fields in [Header] order.
func (r Record) Row() []string {
	return []string{r.Domain, r.Status, r.NameServers, r.Parked, r.Expiry}
}

// unreachable reports whether the status field denotes a domain that
// produced no usable HTTP response in either form.
func (r Record) unreachable() bool {
	return r.Status == StatusInaccessible || r.Status == StatusNoResponse
}

// SortByAttention reorders records in place so that the ones most likely
// to need action come first: unreachable domains before reachable ones,
// and within the unreachable group, domains flagged as possibly parked
// before the rest. Reachable records keep their input order regardless
// of the parking verdict. The sort is stable, so records with equal keys
// keep their input order.
func SortByAttention(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.unreachable() != b.unreachable() {
			return a.unreachable()
		}
		if !a.unreachable() {
			return false
		}
		return a.Parked == ParkedYes && b.Parked != ParkedYes
	})
}

// joinNameServers renders a name-server list for display. An empty list
// maps to [NameServersNone].
func joinNameServers(servers []string) string {
	if len(servers) == 0 {
		return NameServersNone
	}
	return strings.Join(servers, ", ")
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domaincheck_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/domain-checker/src/domaincheck"
)

func rec(domain, status, parked string) domaincheck.Record {
	return domaincheck.Record{
		Domain:      domain,
		Status:      status,
		NameServers: domaincheck.Skipped,
		Parked:      parked,
		Expiry:      domaincheck.Skipped,
	}
}

func TestSortByAttention(t *testing.T) {
	records := []domaincheck.Record{
		rec("a.example", domaincheck.StatusAccessible, domaincheck.ParkedNo),
		rec("b.example", domaincheck.StatusInaccessible, domaincheck.ParkedYes),
		rec("c.example", domaincheck.StatusInaccessible, domaincheck.ParkedNo),
		rec("d.example", domaincheck.StatusAccessible, domaincheck.ParkedYes),
	}

	domaincheck.SortByAttention(records)

	got := make([]string, len(records))
	for i, r := range records {
		got[i] = r.Domain
	}
	// Unreachable first (parked before not), then reachable; ties keep
	// input order.
	assert.Equal(t, []string{"b.example", "c.example", "a.example", "d.example"}, got)
}

func TestSortByAttentionReachableKeepInputOrder(t *testing.T) {
	// The parking verdict only ranks records within the unreachable
	// group. A reachable parked domain must not move ahead of reachable
	// records listed before it.
	records := []domaincheck.Record{
		rec("plain.example", domaincheck.StatusAccessible, domaincheck.ParkedNo),
		rec("parked.example", domaincheck.StatusAccessible, domaincheck.ParkedYes),
		rec("other.example", domaincheck.StatusAccessible, domaincheck.ParkedNo),
	}

	domaincheck.SortByAttention(records)

	got := make([]string, len(records))
	for i, r := range records {
		got[i] = r.Domain
	}
	assert.Equal(t, []string{"plain.example", "parked.example", "other.example"}, got)
}

func TestSortByAttentionStable(t *testing.T) {
	records := []domaincheck.Record{
		rec("first.example", domaincheck.StatusInaccessible, domaincheck.ParkedYes),
		rec("second.example", domaincheck.StatusInaccessible, domaincheck.ParkedYes),
		rec("third.example", domaincheck.StatusInaccessible, domaincheck.ParkedYes),
	}

	domaincheck.SortByAttention(records)

	assert.Equal(t, "first.example", records[0].Domain)
	assert.Equal(t, "second.example", records[1].Domain)
	assert.Equal(t, "third.example", records[2].Domain)
}

func TestSortByAttentionNoResponse(t *testing.T) {
	// The descriptive form's "No Response" counts as unreachable too.
	records := []domaincheck.Record{
		rec("up.example", "200 - OK", domaincheck.ParkedNo),
		rec("down.example", domaincheck.StatusNoResponse, domaincheck.ParkedNo),
	}

	domaincheck.SortByAttention(records)

	assert.Equal(t, "down.example", records[0].Domain)
}

func TestCSVRoundTrip(t *testing.T) {
	records := []domaincheck.Record{
		{
			Domain:      "example.com",
			Status:      domaincheck.StatusAccessible,
			NameServers: "a.iana-servers.net, b.iana-servers.net",
			Parked:      domaincheck.ParkedNo,
			Expiry:      "2025-08-13",
		},
		{
			Domain:      "parked.example",
			Status:      domaincheck.StatusInaccessible,
			NameServers: domaincheck.NameServersNone,
			Parked:      domaincheck.ParkedNA,
			Expiry:      domaincheck.ExpiryLookupFailed,
		},
		{
			Domain:      "skipped.example",
			Status:      domaincheck.Skipped,
			NameServers: domaincheck.Skipped,
			Parked:      domaincheck.Skipped,
			Expiry:      domaincheck.Skipped,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, domaincheck.WriteCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(records)+1, "header plus one row per record")

	assert.Equal(t, domaincheck.Header, rows[0])
	for i, r := range records {
		assert.Equal(t, r.Row(), rows[i+1], "row %d should survive the round trip verbatim", i)
	}
}

func TestRecordRow(t *testing.T) {
	r := domaincheck.Record{
		Domain:      "example.com",
		Status:      "200 - OK",
		NameServers: "ns1.example.net",
		Parked:      domaincheck.ParkedNo,
		Expiry:      domaincheck.ExpiryUnknown,
	}

	row := r.Row()
	require.Len(t, row, len(domaincheck.Header))
	assert.Equal(t, []string{"example.com", "200 - OK", "ns1.example.net", "No", "Unknown"}, row)
}

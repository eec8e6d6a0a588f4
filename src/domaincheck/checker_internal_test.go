// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domaincheck

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dnsChecks enables everything except the HTTP probe, so pipeline tests
// stay off the real network.
var dnsChecks = CheckConfig{NameServers: true, Parking: true, Expiry: true}

func TestCheckOneParkedDomain(t *testing.T) {
	addr, cleanup := startNSServer(t, "ns2.example.com.", "ns1.sedoparking.com.")
	defer cleanup()

	c := New(
		WithChecks(dnsChecks),
		WithDNSServers(addr),
		WithWhoisFunc(whoisStub(rawWhoisExample, nil)),
	)

	rec := c.CheckOne(context.Background(), "  example.com ")
	assert.Equal(t, "example.com", rec.Domain, "domain should be whitespace-trimmed")
	assert.Equal(t, Skipped, rec.Status, "disabled check keeps its sentinel")
	assert.Equal(t, "ns1.sedoparking.com, ns2.example.com", rec.NameServers)
	assert.Equal(t, ParkedYes, rec.Parked)
	assert.Equal(t, "2025-08-13", rec.Expiry)
	assert.NoError(t, rec.Err)
}

func TestCheckOneUnparkedDomain(t *testing.T) {
	addr, cleanup := startNSServer(t, "a.iana-servers.net.", "b.iana-servers.net.")
	defer cleanup()

	c := New(
		WithChecks(dnsChecks),
		WithDNSServers(addr),
		WithWhoisFunc(whoisStub(rawWhoisNoExpiry, nil)),
	)

	rec := c.CheckOne(context.Background(), "example.com")
	assert.Equal(t, "a.iana-servers.net, b.iana-servers.net", rec.NameServers)
	assert.Equal(t, ParkedNo, rec.Parked)
	assert.Equal(t, ExpiryUnknown, rec.Expiry)
}

func TestCheckOneNoDelegation(t *testing.T) {
	addr, cleanup := startNXDOMAINServer(t)
	defer cleanup()

	c := New(
		WithChecks(CheckConfig{NameServers: true, Parking: true}),
		WithDNSServers(addr),
	)

	rec := c.CheckOne(context.Background(), "no-such-domain.invalid")
	assert.Equal(t, NameServersNone, rec.NameServers)
	assert.Equal(t, ParkedNA, rec.Parked, "no delegation data: N/A, not No")
	assert.Equal(t, Skipped, rec.Expiry)
}

func TestCheckOneResolutionFailure(t *testing.T) {
	// No server listening: the probe absorbs the transport failure and
	// reports the same sentinels as an empty record set.
	c := New(
		WithChecks(CheckConfig{NameServers: true, Parking: true}),
		WithDNSServers("127.0.0.1:19998"),
		WithDNSClient(&dns.Client{Timeout: 300 * time.Millisecond, Net: "udp"}),
	)

	rec := c.CheckOne(context.Background(), "example.com")
	assert.Equal(t, NameServersNone, rec.NameServers)
	assert.Equal(t, ParkedNA, rec.Parked)
	assert.NoError(t, rec.Err)
}

func TestCheckOneWithCaching(t *testing.T) {
	var queryCount atomic.Int32

	handler := dns.HandlerFunc(func(w dns.ResponseWriter, r *dns.Msg) {
		queryCount.Add(1)
		m := new(dns.Msg)
		m.SetReply(r)
		m.Answer = append(m.Answer, &dns.NS{
			Hdr: dns.RR_Header{
				Name:   r.Question[0].Name,
				Rrtype: dns.TypeNS,
				Class:  dns.ClassINET,
				Ttl:    3600,
			},
			Ns: "ns1.example.net.",
		})
		_ = w.WriteMsg(m)
	})

	addr, cleanup := startTestDNSServer(t, handler)
	defer cleanup()

	c := New(
		WithChecks(CheckConfig{NameServers: true}),
		WithDNSServers(addr),
	)

	ctx := context.Background()

	// First call — hits DNS.
	r1 := c.CheckOne(ctx, "example.com")
	assert.Equal(t, "ns1.example.net", r1.NameServers)
	assert.Equal(t, int32(1), queryCount.Load())

	// Second call — served from cache, no new DNS query.
	r2 := c.CheckOne(ctx, "example.com")
	assert.Equal(t, r1, r2)
	assert.Equal(t, int32(1), queryCount.Load(), "expected no new DNS queries after cache hit")

	c.FlushCache()

	// After flush — hits DNS again.
	_ = c.CheckOne(ctx, "example.com")
	assert.Equal(t, int32(2), queryCount.Load(), "expected a fresh DNS query after FlushCache")
}

func TestCacheKeyedByCheckConfig(t *testing.T) {
	var queryCount atomic.Int32

	handler := dns.HandlerFunc(func(w dns.ResponseWriter, r *dns.Msg) {
		queryCount.Add(1)
		m := new(dns.Msg)
		m.SetReply(r)
		_ = w.WriteMsg(m)
	})

	addr, cleanup := startTestDNSServer(t, handler)
	defer cleanup()

	cache := newMemoryCache(defaultCacheTTL)

	nsOnly := New(
		WithChecks(CheckConfig{NameServers: true}),
		WithDNSServers(addr),
		WithCache(cache),
	)
	withParking := New(
		WithChecks(CheckConfig{NameServers: true, Parking: true}),
		WithDNSServers(addr),
		WithCache(cache),
	)

	ctx := context.Background()

	r1 := nsOnly.CheckOne(ctx, "example.com")
	assert.Equal(t, Skipped, r1.Parked)

	// Different check config must not reuse the other run's record.
	r2 := withParking.CheckOne(ctx, "example.com")
	assert.Equal(t, ParkedNA, r2.Parked)
	assert.Equal(t, int32(2), queryCount.Load(), "expected separate cache entries per check config")
}

// panicCache is a Cache implementation that panics on Get.
type panicCache struct{}

func (c *panicCache) Get(key string) (Record, bool) {
	panic("cache panic")
}

func (c *panicCache) Set(key string, val Record) {
	// No-op
}

func (c *panicCache) Flush() {
	// No-op
}

func TestCheckPanicRecovery(t *testing.T) {
	c := New(
		WithChecks(CheckConfig{NameServers: true}),
		WithCache(&panicCache{}), // Injected faulty cache
	)

	results, err := c.Check(context.Background(), "example.com")
	require.NoError(t, err, "a single domain's panic must not fail the batch")
	require.Len(t, results, 1)

	assert.True(t, errors.Is(results[0].Err, ErrInternalPanic), "expected ErrInternalPanic, got: %v", results[0].Err)
	assert.Equal(t, "example.com", results[0].Domain)
	assert.Equal(t, Skipped, results[0].NameServers, "panicked record still has a uniform schema")
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, "a1n1p1e1", AllChecks().fingerprint())
	assert.Equal(t, "a0n0p0e0", CheckConfig{}.fingerprint())
	assert.Equal(t, "a0n1p1e1", dnsChecks.fingerprint())
	assert.NotEqual(t, dnsChecks.fingerprint(), AllChecks().fingerprint())
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domaincheck

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/miekg/dns"
)

// fallbackDNSServer is queried when no resolvers can be discovered from
// the host configuration.
const fallbackDNSServer = "8.8.8.8:53"

// systemDNSServers returns the resolvers configured on the host,
// normalized to host:port form. If discovery fails (for example on a
// host without /etc/resolv.conf), a public resolver is used.
func systemDNSServers() []string {
	conf, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil || len(conf.Servers) == 0 {
		return []string{fallbackDNSServer}
	}
	servers := make([]string, 0, len(conf.Servers))
	for _, s := range conf.Servers {
		servers = append(servers, withDefaultPort(s, conf.Port))
	}
	return servers
}

// withDefaultPort appends a port to a server address that lacks one.
// Bare IPv6 addresses are bracketed.
func withDefaultPort(server, port string) string {
	if port == "" {
		port = "53"
	}
	if strings.HasPrefix(server, "[") {
		if strings.Contains(server, "]:") {
			return server
		}
		return server + ":" + port
	}
	switch strings.Count(server, ":") {
	case 0:
		return server + ":" + port
	case 1: // already host:port
		return server
	default:
		return "[" + server + "]:" + port
	}
}

// queryDNS sends a DNS query for the given domain to the specified server.
// It respects context cancellation and the client's configured timeout.
func queryDNS(ctx context.Context, client *dns.Client, domain, server string, qtype uint16, edns0Size uint16) (*dns.Msg, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), qtype)
	msg.RecursionDesired = true
	if edns0Size > 0 {
		msg.SetEdns0(edns0Size, false)
	}

	// Create a channel to receive the result so we can
	// respect context cancellation.
	type dnsResult struct {
		msg *dns.Msg
		err error
	}
	ch := make(chan dnsResult, 1)

	go func() {
		resp, _, err := client.ExchangeContext(ctx, msg, server)
		ch <- dnsResult{msg: resp, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrDNSTimeout, ctx.Err())
	case result := <-ch:
		if result.err != nil {
			return nil, result.err
		}
		return result.msg, nil
	}
}

// lookupNameServers resolves the NS record set for a domain. Targets are
// returned with the trailing root-label dot stripped and sorted ascending
// so that display and keyword matching are reproducible across runs.
//
// Servers are tried in order (primary with failover). A server that
// answers, even with NXDOMAIN or an empty record set, ends the failover
// chain: only transport-level failures advance to the next server.
func (c *Checker) lookupNameServers(ctx context.Context, domain string) ([]string, error) {
	var lastErr error

	for _, server := range c.dnsServers {
		resp, err := queryDNS(ctx, c.dnsClient, domain, server, dns.TypeNS, c.edns0Size)
		if err != nil {
			lastErr = err
			continue
		}
		return extractNS(resp), nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllDNSFailed, lastErr)
	}
	return nil, ErrAllDNSFailed
}

// extractNS pulls NS targets out of a response message. Non-success
// response codes and non-NS records yield no entries.
func extractNS(msg *dns.Msg) []string {
	if msg == nil || msg.Rcode != dns.RcodeSuccess {
		return nil
	}

	var servers []string
	for _, rr := range msg.Answer {
		ns, ok := rr.(*dns.NS)
		if !ok {
			continue
		}
		servers = append(servers, strings.TrimSuffix(ns.Ns, "."))
	}
	sort.Strings(servers)
	return servers
}

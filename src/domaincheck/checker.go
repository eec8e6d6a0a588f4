// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domaincheck

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/likexian/whois"
	"github.com/miekg/dns"
)

// Default configuration values.
const (
	defaultTimeout     = 5 * time.Second
	defaultCacheTTL    = 5 * time.Minute
	defaultConcurrency = 1 // sequential; raise via WithConcurrency
	defaultEDNS0Size   = 1232
)

// CheckConfig selects which checks run for each domain. The parking
// check consumes the name-server result: enabling Parking without
// NameServers yields [ParkedNA] for every domain, since there is no
// delegation data to classify.
type CheckConfig struct {
	Accessibility bool `yaml:"accessibility"`
	NameServers   bool `yaml:"name_servers"`
	Parking       bool `yaml:"parking"`
	Expiry        bool `yaml:"expiry"`
}

// AllChecks returns a CheckConfig with every check enabled, the default
// for batch runs.
func AllChecks() CheckConfig {
	return CheckConfig{Accessibility: true, NameServers: true, Parking: true, Expiry: true}
}

// fingerprint encodes the config into a short cache-key component.
func (cfg CheckConfig) fingerprint() string {
	mark := func(b bool) byte {
		if b {
			return '1'
		}
		return '0'
	}
	return string([]byte{'a', mark(cfg.Accessibility), 'n', mark(cfg.NameServers), 'p', mark(cfg.Parking), 'e', mark(cfg.Expiry)})
}

// ProgressFunc receives a notification after each domain completes.
// completed counts finished domains, total is the batch size. The
// checker serializes calls, so implementations need no locking.
type ProgressFunc func(domain string, completed, total int)

// Checker runs liveness, delegation, parking, and expiry checks over
// domains and aggregates the outcomes into uniform [Record]s.
type Checker struct {
	checks          CheckConfig
	timeout         time.Duration
	concurrency     int
	descriptive     bool
	parkingKeywords []string

	dnsServers []string
	dnsClient  *dns.Client
	edns0Size  uint16

	httpClient *http.Client
	whoisFunc  WhoisFunc

	cache    Cache
	cacheTTL time.Duration
	noCache  bool

	progress   ProgressFunc
	progressMu sync.Mutex
}

// New creates a new [Checker] with all checks enabled and sequential
// processing. Use functional options to customize behavior.
//
//	// Default configuration:
//	c := domaincheck.New()
//
//	// Custom configuration:
//	c := domaincheck.New(
//	    domaincheck.WithTimeout(10 * time.Second),
//	    domaincheck.WithConcurrency(8),
//	)
func New(opts ...Option) *Checker {
	c := &Checker{
		checks:      AllChecks(),
		timeout:     defaultTimeout,
		concurrency: defaultConcurrency,
		edns0Size:   defaultEDNS0Size,
		cacheTTL:    defaultCacheTTL,
	}
	c.parkingKeywords = make([]string, len(defaultParkingKeywords))
	copy(c.parkingKeywords, defaultParkingKeywords)

	for _, opt := range opts {
		opt(c)
	}

	// Initialize cache if not set or disabled by option.
	if c.cache == nil && !c.noCache {
		c.cache = newMemoryCache(c.cacheTTL)
	}

	if c.dnsClient == nil {
		c.dnsClient = &dns.Client{
			Timeout: c.timeout,
			Net:     "udp",
		}
	}
	if len(c.dnsServers) == 0 {
		c.dnsServers = systemDNSServers()
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	if c.whoisFunc == nil {
		c.whoisFunc = defaultWhoisFunc(whois.NewClient().SetTimeout(c.timeout))
	}

	return c
}

// Check runs the configured checks over multiple domains and returns one
// [Record] per domain, in input order. Domains are processed through a
// concurrency-bounded worker pool (sequential by default); each record
// is written atomically into its slot, so partial results never mix
// across domains.
//
// Per-domain failures never abort the batch: probes absorb their own
// errors into sentinel fields, and a panic while processing one domain
// is recovered into that domain's record. The only errors returned are
// [ErrNoDomains] and context cancellation.
func (c *Checker) Check(ctx context.Context, domains ...string) ([]Record, error) {
	if len(domains) == 0 {
		return nil, ErrNoDomains
	}

	records := make([]Record, len(domains))
	var wg sync.WaitGroup
	var completed atomic.Int64

	// Semaphore to limit concurrency.
	// We use a buffered channel to limit the number
	// of concurrent goroutines.
	sem := make(chan struct{}, c.concurrency)

Loop:
	for i, domain := range domains {
		// Check context before starting new work
		select {
		case <-ctx.Done():
			// Fill remaining results so the set keeps one entry per
			// input domain, then stop spawning new work. We must still
			// wait for active goroutines.
			for j := i; j < len(domains); j++ {
				records[j] = skippedRecord(normalizeDomain(domains[j]))
				records[j].Err = ctx.Err()
			}
			break Loop
		default:
		}

		wg.Add(1)

		// Acquire semaphore before spawning goroutine to limit
		// the number of active goroutines.
		sem <- struct{}{}

		go func(idx int, d string) {
			defer wg.Done()
			defer func() { <-sem }() // Release semaphore

			records[idx] = c.checkRecovered(ctx, d)
			c.reportProgress(records[idx].Domain, int(completed.Add(1)), len(domains))
		}(i, domain)
	}

	wg.Wait()
	// Check context one last time to return correct error if we broke early
	if ctx.Err() != nil {
		return records, ctx.Err()
	}
	return records, nil
}

// checkRecovered shields the batch from panics in a single domain's
// pipeline: the recovered panic becomes that record's Err.
func (c *Checker) checkRecovered(ctx context.Context, domain string) (rec Record) {
	defer func() {
		if r := recover(); r != nil {
			rec = skippedRecord(normalizeDomain(domain))
			rec.Err = fmt.Errorf("%w: %v", ErrInternalPanic, r)
		}
	}()
	return c.CheckOne(ctx, domain)
}

// CheckOne runs the configured checks for a single domain and returns a
// complete [Record]. Probes run in dependency order: accessibility,
// name servers, parking (over the name-server result), expiry. Disabled
// checks yield [Skipped]; probe failures yield their domain-appropriate
// sentinels. This method never fails.
func (c *Checker) CheckOne(ctx context.Context, domain string) Record {
	domain = normalizeDomain(domain)

	cacheKey := domain + "|" + c.checks.fingerprint()
	if c.descriptive {
		cacheKey += "|v"
	}
	if c.cache != nil {
		if cached, ok := c.cache.Get(cacheKey); ok {
			return cached
		}
	}

	// Probes get the punycode form; the record keeps the user's spelling.
	target := asciiDomain(domain)
	rec := skippedRecord(domain)

	if c.checks.Accessibility {
		if c.descriptive {
			rec.Status = c.checkAccessibilityVerbose(ctx, target)
		} else {
			rec.Status = c.checkAccessibility(ctx, target)
		}
	}

	var nameServers []string
	if c.checks.NameServers {
		ns, err := c.lookupNameServers(ctx, target)
		if err != nil {
			// Resolution failure reads the same as an empty record set.
			ns = nil
		}
		nameServers = ns
		rec.NameServers = joinNameServers(nameServers)
	}

	if c.checks.Parking {
		switch {
		case len(nameServers) == 0:
			// Enabled but nothing to classify: either the lookup came
			// back empty or the name-server check did not run. Distinct
			// from Skipped.
			rec.Parked = ParkedNA
		case c.isParkingNS(nameServers):
			rec.Parked = ParkedYes
		default:
			rec.Parked = ParkedNo
		}
	}

	if c.checks.Expiry {
		rec.Expiry = c.checkExpiry(ctx, target)
	}

	// A cancelled run yields sentinel-only records; keep those out of
	// the cache so a later run probes for real.
	if c.cache != nil && ctx.Err() == nil {
		c.cache.Set(cacheKey, rec)
	}
	return rec
}

// FlushCache clears all cached check results.
func (c *Checker) FlushCache() {
	if c.cache != nil {
		c.cache.Flush()
	}
}

// Checks returns the checker's check configuration.
func (c *Checker) Checks() CheckConfig {
	return c.checks
}

// ParkingKeywords returns a copy of the active parking keyword table.
func (c *Checker) ParkingKeywords() []string {
	keywords := make([]string, len(c.parkingKeywords))
	copy(keywords, c.parkingKeywords)
	return keywords
}

// reportProgress delivers a completion notification, serialized so the
// callback never runs concurrently with itself.
func (c *Checker) reportProgress(domain string, completed, total int) {
	if c.progress == nil {
		return
	}
	c.progressMu.Lock()
	defer c.progressMu.Unlock()
	c.progress(domain, completed, total)
}

// skippedRecord returns a record with every check field set to [Skipped].
func skippedRecord(domain string) Record {
	return Record{
		Domain:      domain,
		Status:      Skipped,
		NameServers: Skipped,
		Parked:      Skipped,
		Expiry:      Skipped,
	}
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domaincheck

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ReadDomains parses a newline-delimited domain list. Surrounding
// whitespace is stripped and blank lines are dropped; no other
// validation is applied, so malformed names flow through to the probes.
func ReadDomains(r io.Reader) ([]string, error) {
	var domains []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		domain := strings.TrimSpace(scanner.Text())
		if domain != "" {
			domains = append(domains, domain)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return domains, nil
}

// ReadDomainsFile reads a newline-delimited domain list from a file.
func ReadDomainsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadDomains(f)
}

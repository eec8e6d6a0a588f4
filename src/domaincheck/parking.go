// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domaincheck

import "strings"

// defaultParkingKeywords are substrings of name servers operated by
// known domain-parking services. A domain whose delegation points at any
// of these is very likely parked rather than in active use. The table is
// copied at construction time and never mutated afterwards.
var defaultParkingKeywords = []string{
	"parkingcrew",
	"sedoparking",
	"bodis",
	"afternic",
	"above",
	"uniregistry",
	"domaincontrol",
	"cashparking",
	"namebright",
	"namestore",
}

// isParkingNS reports whether any name server in the list matches any of
// the configured parking keywords, case-insensitively. An empty list
// returns false; the caller decides how to report the absence of
// name-server data.
func (c *Checker) isParkingNS(nameServers []string) bool {
	for _, ns := range nameServers {
		host := strings.ToLower(ns)
		for _, keyword := range c.parkingKeywords {
			if strings.Contains(host, keyword) {
				return true
			}
		}
	}
	return false
}

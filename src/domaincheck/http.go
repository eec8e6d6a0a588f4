// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domaincheck

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// statusDescriptions maps HTTP status codes to the short descriptions
// used by the descriptive accessibility form. Codes outside the table
// are reported as "Other".
var statusDescriptions = map[int]string{
	200: "OK",
	301: "Moved Permanently",
	302: "Found",
	403: "Forbidden",
	404: "Not Found",
	500: "Internal Server Error",
}

// statusDescription renders a status code as "<code> - <description>".
func statusDescription(code int) string {
	desc, ok := statusDescriptions[code]
	if !ok {
		desc = "Other"
	}
	return fmt.Sprintf("%d - %s", code, desc)
}

// httpGet performs a single GET against url and returns the response
// status code. The body is drained and closed so the client's
// connections can be reused.
func (c *Checker) httpGet(ctx context.Context, url string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

// checkAccessibility probes http://<domain> then https://<domain> and
// reports the binary outcome. An attempt counts as accessible when it
// returns a status code below 400; an error-class status on the plain
// http attempt still advances to https before the domain is declared
// inaccessible.
func (c *Checker) checkAccessibility(ctx context.Context, domain string) string {
	for _, url := range []string{"http://" + domain, "https://" + domain} {
		code, err := c.httpGet(ctx, url)
		if err != nil {
			continue
		}
		if code < 400 {
			return StatusAccessible
		}
	}
	return StatusInaccessible
}

// checkAccessibilityVerbose probes http://<domain> then https://<domain>
// and reports the descriptive outcome: the first attempt that yields any
// HTTP response, success or error status, short-circuits the second.
// Only a transport-level failure advances to the next scheme; when both
// schemes fail to connect the result is [StatusNoResponse].
func (c *Checker) checkAccessibilityVerbose(ctx context.Context, domain string) string {
	for _, url := range []string{"http://" + domain, "https://" + domain} {
		code, err := c.httpGet(ctx, url)
		if err != nil {
			continue
		}
		return statusDescription(code)
	}
	return StatusNoResponse
}

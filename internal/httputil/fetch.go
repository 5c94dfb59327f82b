// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the E-utilities transport.
package httputil

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// MaxBodyBytes bounds how much of a response body ReadBody will buffer.
// efetch batches of 100 records stay well under this.
var MaxBodyBytes int64 = 64 << 20

// ReadBody executes req with the given User-Agent and returns the body of a
// 200 response. Any other status is an error carrying the start of the body,
// which is where NCBI puts its error message.
func ReadBody(client *http.Client, req *http.Request, userAgent string) ([]byte, error) {
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, snippet(body))
	}
	if int64(len(body)) > MaxBodyBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes", MaxBodyBytes)
	}
	return body, nil
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}

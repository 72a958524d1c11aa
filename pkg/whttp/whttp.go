// Package whttp is a thin wrapper around retryablehttp used by the catalog
// providers. It centralizes the user agent, common headers and response
// draining, and extracts the HTML title so callers can detect error pages
// served with a 200 status.
package whttp

import (
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/net/html"
)

const userAgent = "stashkeep (+https://github.com/mklnz/stashkeep)"

type Header struct {
	Name  string
	Value string
}

type Request struct {
	URL     string
	Method  string
	Headers []Header
}

type Response struct {
	StatusCode int
	Length     int
	HTMLTitle  string
	BodyString string
}

// DefaultClient returns a retrying client with request/response logging
// silenced; community data sites rate-limit aggressively and the retry
// backoff handles that.
func DefaultClient() *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = 4
	client.Logger = nil
	return client
}

// Send performs the request. A nil client gets DefaultClient().
func Send(req *Request, client *retryablehttp.Client) (*Response, error) {
	if client == nil {
		client = DefaultClient()
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	r, err := retryablehttp.NewRequest(method, req.URL, nil)
	if err != nil {
		return nil, err
	}

	r.Header.Set("User-Agent", userAgent)
	r.Header.Set("Accept", "*/*")
	r.Header.Set("Accept-Language", "en")
	for _, h := range req.Headers {
		r.Header.Add(h.Name, h.Value)
	}

	resp, err := client.Do(r)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	res := &Response{
		StatusCode: resp.StatusCode,
		BodyString: string(body),
	}
	res.Length = utf8.RuneCountInString(res.BodyString)
	if title, ok := htmlTitle(res.BodyString); ok {
		res.HTMLTitle = strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(title, "\n", ""), "\r", ""))
	}
	return res, nil
}

func htmlTitle(body string) (string, bool) {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return "", false
	}
	return traverse(doc)
}

func traverse(n *html.Node) (string, bool) {
	if n.Type == html.ElementNode && n.Data == "title" {
		if n.FirstChild != nil {
			return n.FirstChild.Data, true
		}
		return "", true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result, ok := traverse(c); ok {
			return result, ok
		}
	}
	return "", false
}

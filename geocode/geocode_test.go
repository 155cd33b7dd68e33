package geocode

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(handler http.HandlerFunc) (*Client, func()) {
	srv := httptest.NewServer(handler)
	c := &Client{BaseURL: srv.URL, HTTP: &http.Client{Timeout: time.Second}}
	return c, srv.Close
}

func TestReverse(t *testing.T) {
	c, done := testClient(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got == "" {
			t.Errorf("missing User-Agent header")
		}
		w.Write([]byte(`{"display_name":"12 Lake Road, Dhaka, Bangladesh"}`))
	})
	defer done()

	if got := c.Reverse(23.8103, 90.4125); got != "12 Lake Road, Dhaka, Bangladesh" {
		t.Errorf("Reverse = %q", got)
	}
}

func TestReverseServerError(t *testing.T) {
	c, done := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer done()

	if got := c.Reverse(1, 2); got != NotAvailable {
		t.Errorf("Reverse = %q, want NotAvailable", got)
	}
}

func TestReverseBadBody(t *testing.T) {
	c, done := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})
	defer done()

	if got := c.Reverse(1, 2); got != NotAvailable {
		t.Errorf("Reverse = %q, want NotAvailable", got)
	}
}

func TestReverseEmptyDisplayName(t *testing.T) {
	c, done := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	defer done()

	if got := c.Reverse(1, 2); got != NotAvailable {
		t.Errorf("Reverse = %q, want NotAvailable", got)
	}
}

func TestReverseUnreachable(t *testing.T) {
	c, done := testClient(func(w http.ResponseWriter, r *http.Request) {})
	done() // shut the server down before calling

	if got := c.Reverse(1, 2); got != NotAvailable {
		t.Errorf("Reverse = %q, want NotAvailable", got)
	}
}

package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/casefeed"
	casehttp "github.com/fwojciec/casefeed/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const atomFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>GDPRhub - Recent decisions</title>
  <entry>
    <id>https://gdprhub.eu/index.php?title=CNIL_SAN-2023-001</id>
    <title>CNIL - SAN-2023-001</title>
    <summary>&lt;table class="wikitable"&gt;&lt;tr&gt;&lt;th&gt;Authority:&lt;/th&gt;&lt;td&gt;CNIL&lt;/td&gt;&lt;/tr&gt;&lt;/table&gt;</summary>
  </entry>
  <entry>
    <title>Entry without an id</title>
    <summary>skipped</summary>
  </entry>
  <entry>
    <id>https://gdprhub.eu/index.php?title=AEPD_EXP-2023</id>
    <title>AEPD - EXP-2023</title>
  </entry>
</feed>`

func TestParseFeed(t *testing.T) {
	t.Parallel()

	t.Run("entries in document order, id-less entries skipped", func(t *testing.T) {
		t.Parallel()

		entries, err := casehttp.ParseFeed([]byte(atomFeed))
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, "https://gdprhub.eu/index.php?title=CNIL_SAN-2023-001", entries[0].ID)
		assert.Equal(t, "CNIL - SAN-2023-001", entries[0].Title)
		assert.Contains(t, entries[0].Summary, `<table class="wikitable">`)

		// Missing summary yields an empty body, not a skipped entry.
		assert.Equal(t, "https://gdprhub.eu/index.php?title=AEPD_EXP-2023", entries[1].ID)
		assert.Equal(t, "", entries[1].Summary)
	})

	t.Run("malformed XML", func(t *testing.T) {
		t.Parallel()

		_, err := casehttp.ParseFeed([]byte("<feed><entry>"))
		require.Error(t, err)
		assert.Equal(t, casefeed.EINVALID, casefeed.ErrorCode(err))
	})
}

func TestFeedService_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("fetches and parses the feed", func(t *testing.T) {
		t.Parallel()

		var gotUserAgent string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUserAgent = r.Header.Get("User-Agent")
			w.Header().Set("Content-Type", "application/atom+xml")
			_, _ = w.Write([]byte(atomFeed))
		}))
		defer srv.Close()

		s := casehttp.NewFeedService(srv.Client(), srv.URL)
		entries, err := s.Fetch(context.Background())

		require.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, casehttp.DefaultUserAgent, gotUserAgent)
	})

	t.Run("non-200 response", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		s := casehttp.NewFeedService(srv.Client(), srv.URL)
		_, err := s.Fetch(context.Background())

		require.Error(t, err)
		assert.Equal(t, casefeed.EINTERNAL, casefeed.ErrorCode(err))
	})

	t.Run("context cancellation aborts the request", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		s := casehttp.NewFeedService(srv.Client(), srv.URL)
		_, err := s.Fetch(ctx)
		require.Error(t, err)
	})
}

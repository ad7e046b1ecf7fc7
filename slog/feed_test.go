package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/casefeed"
	"github.com/fwojciec/casefeed/mock"
	caseslog "github.com/fwojciec/casefeed/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedService_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs entry count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.FeedService{
			FetchFn: func(ctx context.Context) ([]casefeed.FeedEntry, error) {
				return []casefeed.FeedEntry{{ID: "e1"}, {ID: "e2"}}, nil
			},
		}

		svc := caseslog.NewFeedService(inner, logger)
		entries, err := svc.Fetch(context.Background())

		require.NoError(t, err)
		assert.Len(t, entries, 2)
		output := buf.String()
		assert.Contains(t, output, "feed fetched")
		assert.Contains(t, output, "entries=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.FeedService{
			FetchFn: func(ctx context.Context) ([]casefeed.FeedEntry, error) {
				return nil, errors.New("connection failed")
			},
		}

		svc := caseslog.NewFeedService(inner, logger)
		_, err := svc.Fetch(context.Background())

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "feed fetch failed")
		assert.Contains(t, output, "err=\"connection failed\"")
	})
}

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordVerification(t *testing.T) {
	before := testutil.ToFloat64(verifications.WithLabelValues(OutcomeVerified))
	RecordVerification(OutcomeVerified)
	assert.Equal(t, before+1, testutil.ToFloat64(verifications.WithLabelValues(OutcomeVerified)))
}

func TestTrackInFlight(t *testing.T) {
	before := testutil.ToFloat64(httpInFlight)
	done := TrackInFlight()
	assert.Equal(t, before+1, testutil.ToFloat64(httpInFlight))
	done()
	assert.Equal(t, before, testutil.ToFloat64(httpInFlight))
}

func TestObserveHTTP_UnknownMethodsShareOneLabel(t *testing.T) {
	other := httpRequests.WithLabelValues("other", "unmatched", "404")
	before := testutil.ToFloat64(other)

	ObserveHTTP("BREW", "", "404", time.Millisecond)
	series := testutil.CollectAndCount(httpRequests)
	ObserveHTTP("XYZZY-1234", "", "404", time.Millisecond)

	assert.Equal(t, before+2, testutil.ToFloat64(other))
	assert.Equal(t, series, testutil.CollectAndCount(httpRequests))
}

func TestHandlerExposesCollectors(t *testing.T) {
	ObserveHTTP(http.MethodGet, "/health", "200", 3*time.Millisecond)
	RecordCachePurge(2)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "coin_wallet_http_requests_total")
	assert.Contains(t, body, "coin_wallet_bank_verification_cache_purged_total")
}

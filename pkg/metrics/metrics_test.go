package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRecordAndExpose(t *testing.T) {
	RecordRequest("events", "GET", "200")
	RecordRequestDuration("events", "GET", 12.5)
	RecordAuthFailure()
	RecordSessionChange()
	RecordSessionClear()
	RecordCacheHit("skills")
	RecordCacheMiss("faculties")
	RecordMultipartBytes(2048)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	for _, want := range []string{
		"talentlink_requests_total",
		"talentlink_auth_failures_total",
		"talentlink_reference_cache_hits_total",
		"talentlink_multipart_bytes_total",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metric %s missing from exposition", want)
		}
	}
}

func TestDisabledManager(t *testing.T) {
	m := NewManager(WithEnabled(false))
	// Recording through a disabled manager's helpers must not panic.
	m.enabled = false
	if m.registry == nil {
		t.Fatal("registry not initialized")
	}
}

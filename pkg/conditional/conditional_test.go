package conditional

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeETag(t *testing.T) {
	body := []byte(`<rss version="2.0"><channel><title>Craft</title></channel></rss>`)
	etag := ComputeETag(body)

	assert.Equal(t, etag, ComputeETag(body), "same content, same etag")
	assert.Len(t, etag, 34)
	assert.True(t, strings.HasPrefix(etag, `"`) && strings.HasSuffix(etag, `"`))

	changed := []byte(`<rss version="2.0"><channel><title>Crafts</title></channel></rss>`)
	assert.NotEqual(t, etag, ComputeETag(changed))
	assert.NotEqual(t, ComputeETag([]byte("a")), ComputeETag([]byte("b")))
	assert.NotEqual(t, ComputeETag(nil), ComputeETag([]byte(" ")))
}

func TestShouldReturn304(t *testing.T) {
	etag := ComputeETag([]byte("feed body"))
	lastMod := time.Date(2024, 3, 5, 10, 0, 0, 500, time.UTC)

	tests := []struct {
		name   string
		header map[string]string
		want   bool
	}{
		{"no conditional headers", nil, false},
		{"matching etag", map[string]string{"If-None-Match": etag}, true},
		{"etag without quotes", map[string]string{"If-None-Match": strings.Trim(etag, `"`)}, false},
		{"non-matching etag", map[string]string{"If-None-Match": `"deadbeef"`}, false},
		{"etag in list", map[string]string{"If-None-Match": `"aaa", ` + etag}, true},
		{"weak etag", map[string]string{"If-None-Match": "W/" + etag}, true},
		{"wildcard", map[string]string{"If-None-Match": "*"}, true},
		{"modified since equal", map[string]string{"If-Modified-Since": "Tue, 05 Mar 2024 10:00:00 GMT"}, true},
		{"modified since later", map[string]string{"If-Modified-Since": "Wed, 06 Mar 2024 10:00:00 GMT"}, true},
		{"modified since earlier", map[string]string{"If-Modified-Since": "Tue, 05 Mar 2024 09:59:59 GMT"}, false},
		{"modified since garbage", map[string]string{"If-Modified-Since": "yesterday"}, false},
		{"non-matching etag, fresh date", map[string]string{"If-None-Match": `"x"`, "If-Modified-Since": "Wed, 06 Mar 2024 10:00:00 GMT"}, true},
		{"non-matching etag, stale date", map[string]string{"If-None-Match": `"x"`, "If-Modified-Since": "Mon, 04 Mar 2024 10:00:00 GMT"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			for k, v := range tt.header {
				h.Set(k, v)
			}
			assert.Equal(t, tt.want, ShouldReturn304(h, etag, lastMod))
		})
	}
}

func TestRespond(t *testing.T) {
	body := []byte(`{"version":"https://jsonfeed.org/version/1.1"}`)
	lastMod := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	ok := Respond(http.Header{}, body, lastMod)
	assert.Equal(t, http.StatusOK, ok.Status)
	assert.Equal(t, body, ok.Body)
	assert.Equal(t, ComputeETag(body), ok.Header.Get("ETag"))
	assert.Equal(t, "Tue, 05 Mar 2024 10:00:00 GMT", ok.Header.Get("Last-Modified"))
	assert.Equal(t, CacheControl, ok.Header.Get("Cache-Control"))
	assert.Equal(t, "46", ok.Header.Get("Content-Length"))

	h := http.Header{}
	h.Set("If-None-Match", ok.Header.Get("ETag"))
	notMod := Respond(h, body, lastMod)
	assert.Equal(t, http.StatusNotModified, notMod.Status)
	assert.Empty(t, notMod.Body)
	for _, k := range []string{"ETag", "Last-Modified", "Cache-Control"} {
		assert.Equal(t, ok.Header.Get(k), notMod.Header.Get(k), k)
	}
	assert.Empty(t, notMod.Header.Get("Content-Length"))
}

func TestResponse_Write(t *testing.T) {
	body := []byte("<rss/>")
	rec := httptest.NewRecorder()
	rec.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	require.NoError(t, Respond(http.Header{}, body, time.Now()).Write(rec))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<rss/>", rec.Body.String())
	assert.Equal(t, "application/rss+xml; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("ETag"))

	rec = httptest.NewRecorder()
	h := http.Header{}
	h.Set("If-None-Match", ComputeETag(body))
	require.NoError(t, Respond(h, body, time.Now()).Write(rec))
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDescribe(t *testing.T) {
	lastMod := time.Date(2024, 3, 5, 10, 0, 0, 999, time.FixedZone("X", 3600))
	d := Describe([]byte("x"), lastMod)
	assert.Equal(t, ComputeETag([]byte("x")), d.ETag)
	assert.Equal(t, time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC), d.LastModified)
}

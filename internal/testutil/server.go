package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

// MetadataServer is a fake metadata service backed by fixture documents.
// It serves records at /<segment>/<accession>/ and counts requests so
// tests can assert on fetch behavior.
type MetadataServer struct {
	*httptest.Server
	requests atomic.Int64
	docs     map[string]map[string]interface{}
}

// NewMetadataServer starts a fake metadata service. Keys in docs are
// "<segment>/<accession>", e.g. "experiments/ENCSR362AIZ". The server is
// shut down when the test finishes.
func NewMetadataServer(t *testing.T, docs map[string]map[string]interface{}) *MetadataServer {
	t.Helper()

	ms := &MetadataServer{docs: docs}
	ms.Server = httptest.NewServer(http.HandlerFunc(ms.handle))
	t.Cleanup(ms.Server.Close)
	return ms
}

func (ms *MetadataServer) handle(w http.ResponseWriter, r *http.Request) {
	ms.requests.Add(1)

	key := strings.Trim(r.URL.Path, "/")
	doc, ok := ms.docs[key]
	if !ok {
		http.Error(w, `{"error": "not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc)
}

// Requests returns the number of requests served so far.
func (ms *MetadataServer) Requests() int64 {
	return ms.requests.Load()
}

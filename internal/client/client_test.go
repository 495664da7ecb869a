package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kepbod/seqlib/internal/errors"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := New(server.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return c, server
}

func TestNewRejectsRelativeURL(t *testing.T) {
	if _, err := New("not-a-url", time.Second); err == nil {
		t.Error("expected error for relative base URL")
	}
	if _, err := New("://bad", time.Second); err == nil {
		t.Error("expected error for malformed base URL")
	}
}

func TestResourcePath(t *testing.T) {
	if got := ResourcePath("experiments", "ENCSR362AIZ"); got != "/experiments/ENCSR362AIZ/" {
		t.Errorf("unexpected resource path: %q", got)
	}
	if got := ResourcePath("file", "ENCFF037JQC"); got != "/file/ENCFF037JQC/" {
		t.Errorf("unexpected resource path: %q", got)
	}
}

func TestResolveURL(t *testing.T) {
	c, err := New("https://www.encodeproject.org", time.Second)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	tests := []struct {
		ref  string
		want string
	}{
		{"/experiments/ENCSR362AIZ/", "https://www.encodeproject.org/experiments/ENCSR362AIZ/"},
		{"/files/ENCFF037JQC/@@download/ENCFF037JQC.fastq.gz",
			"https://www.encodeproject.org/files/ENCFF037JQC/@@download/ENCFF037JQC.fastq.gz"},
	}
	for _, tt := range tests {
		if got := c.ResolveURL(tt.ref); got != tt.want {
			t.Errorf("ResolveURL(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}

func TestFetchDocument(t *testing.T) {
	var gotPath, gotAccept string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"accession": "ENCSR362AIZ", "assay_term_name": "RNA-seq"}`))
	}))

	doc, err := c.FetchDocument(context.Background(), "experiments", "ENCSR362AIZ")
	if err != nil {
		t.Fatalf("FetchDocument failed: %v", err)
	}

	if gotPath != "/experiments/ENCSR362AIZ/" {
		t.Errorf("expected canonical resource path, got %q", gotPath)
	}
	if gotAccept != "application/json" {
		t.Errorf("expected Accept: application/json, got %q", gotAccept)
	}
	if doc["assay_term_name"] != "RNA-seq" {
		t.Errorf("unexpected document contents: %v", doc)
	}
}

func TestFetchDocumentEmptySegment(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued for an empty segment")
	}))

	_, err := c.FetchDocument(context.Background(), "", "ENCSR362AIZ")
	if err == nil {
		t.Fatal("expected error for empty segment")
	}
	if !errors.IsKind(err, errors.KindConfig) {
		t.Errorf("expected KindConfig, got %v", errors.GetKind(err))
	}
}

func TestFetchDocumentEmptyAccession(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued for an empty accession")
	}))

	_, err := c.FetchDocument(context.Background(), "file", "")
	if err == nil {
		t.Fatal("expected error for empty accession")
	}
	if !errors.IsKind(err, errors.KindValidation) {
		t.Errorf("expected KindValidation, got %v", errors.GetKind(err))
	}
}

func TestFetchDocumentHTTPError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))

	_, err := c.FetchDocument(context.Background(), "experiments", "ENCSR000000")
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if !errors.IsKind(err, errors.KindNetwork) {
		t.Errorf("expected KindNetwork, got %v", errors.GetKind(err))
	}
}

func TestFetchDocumentInvalidJSON(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))

	_, err := c.FetchDocument(context.Background(), "experiments", "ENCSR362AIZ")
	if err == nil {
		t.Fatal("expected error for non-JSON body")
	}
	if !errors.IsKind(err, errors.KindParse) {
		t.Errorf("expected KindParse, got %v", errors.GetKind(err))
	}
}

func TestFetchDocumentContextCancelled(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.FetchDocument(ctx, "experiments", "ENCSR362AIZ"); err == nil {
		t.Error("expected error for cancelled context")
	}
}

package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLandingPageShowsConnectCommand(t *testing.T) {
	srv := httptest.NewServer(newRouter("play.example.com", "2022"))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	body := string(raw)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(body, "ssh -t -p 2022 play.example.com") {
		t.Error("page lacks the connect command")
	}
	if strings.Contains(body, "{{") {
		t.Error("page has unreplaced placeholders")
	}
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter("h", "1").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "ok" {
		t.Errorf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestUnknownRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter("h", "1").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

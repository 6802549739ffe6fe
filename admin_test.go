package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHashIPConsistent(t *testing.T) {
	initAdminToken()

	a := hashIP("203.0.113.7")
	b := hashIP("203.0.113.7")
	c := hashIP("203.0.113.8")

	if a != b {
		t.Error("same IP hashed to different values")
	}
	if a == c {
		t.Error("different IPs hashed to the same value")
	}
	if len(a) != 16 {
		t.Errorf("hash length = %d, want 16", len(a))
	}
	if a == "203.0.113.7" {
		t.Error("hash leaked the raw IP")
	}
}

func TestAdminAuthMiddleware(t *testing.T) {
	initAdminToken()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/admin")
	g.Use(adminAuthMiddleware())
	g.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	// No cookie: redirected to login.
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusFound {
		t.Errorf("unauthenticated status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/login" {
		t.Errorf("redirect = %q, want /admin/login", loc)
	}

	// Wrong token: still redirected.
	req = httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: "admin_token", Value: "bogus"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusFound {
		t.Errorf("bad token status = %d, want 302", w.Code)
	}

	// Correct token passes through.
	req = httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: "admin_token", Value: adminToken})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("authenticated status = %d, want 200", w.Code)
	}
}

func TestAdminStats(t *testing.T) {
	setupTestDB(t)
	initAdminToken()

	trackVisitorPrivacy("203.0.113.7", "test-agent", "/")
	trackVisitorPrivacy("203.0.113.7", "test-agent", "/contact-form")
	trackVisitorPrivacy("203.0.113.9", "test-agent", "/")

	sub := ContactSubmission{FullName: "Robin", Email: "robin@example.com", Message: "hello from the tests"}
	if err := saveContactMessage("msg-1", sub); err != nil {
		t.Fatalf("save: %v", err)
	}

	stats, err := getAdminStats(NewHeroHub())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalVisitors != 3 {
		t.Errorf("TotalVisitors = %d, want 3", stats.TotalVisitors)
	}
	if stats.UniqueVisitors != 2 {
		t.Errorf("UniqueVisitors = %d, want 2", stats.UniqueVisitors)
	}
	if stats.TotalMessages != 1 || stats.UnreadMessages != 1 {
		t.Errorf("messages = %d/%d unread, want 1/1", stats.TotalMessages, stats.UnreadMessages)
	}
	if len(stats.RecentMessages) != 1 {
		t.Errorf("RecentMessages = %d, want 1", len(stats.RecentMessages))
	}
}

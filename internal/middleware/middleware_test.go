package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cat-shelter-admin/internal/platform/logger"
	"cat-shelter-admin/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAuthContext_DevHeader(t *testing.T) {
	var got string
	h := AuthContext(nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, _ := GetClaims(r.Context())
		got = c.UserID
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(DebugUserHeader, "staff-1")
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "staff-1", got)
}

func TestAuthContext_Bearer(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewFromZap(zap.New(core))

	verifier := auth.VerifierFunc(func(_ context.Context, token string) (auth.Claims, error) {
		if token != "s3cret" {
			return auth.Claims{}, errors.New("bad token")
		}
		return auth.Claims{UserID: "staff"}, nil
	})

	var (
		got string
		ok  bool
	)
	h := AuthContext(verifier, log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var c auth.Claims
		c, ok = GetClaims(r.Context())
		got = c.UserID
	}))

	cases := []struct {
		name   string
		header string
		debug  string
		want   string
		wantOK bool
	}{
		{"valid token", "Bearer s3cret", "", "staff", true},
		{"lowercase scheme", "bearer s3cret", "", "staff", true},
		{"wrong token", "Bearer nope", "", "", false},
		{"basic scheme", "Basic s3cret", "", "", false},
		{"debug header ignored", "", "intruder", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok = "", false
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			if tc.debug != "" {
				r.Header.Set(DebugUserHeader, tc.debug)
			}
			h.ServeHTTP(httptest.NewRecorder(), r)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	assert.Equal(t, 1, logs.FilterMessage("bearer token rejected").Len())
}

func TestRecover_LogsAndReturns500(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewFromZap(zap.New(core))

	h := Recover(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestAccessLog_RecordsStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewFromZap(zap.New(core))

	h := AccessLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	entries := logs.FilterMessage("http request").All()
	if assert.Len(t, entries, 1) {
		assert.EqualValues(t, http.StatusTeapot, entries[0].ContextMap()["status"])
	}
}

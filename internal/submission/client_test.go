package submission

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/orbytrixx/orbytrixx/internal/form"
	"github.com/orbytrixx/orbytrixx/internal/logging"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

func careersValues() form.Values {
	return form.Values{
		form.FieldName:        " Grace Hopper ",
		form.FieldEmail:       "grace@navy.mil",
		form.FieldCountryCode: "+1",
		form.FieldPhone:       "5550102030",
		form.FieldCompany:     "US Navy",
		form.FieldRole:        "AI ARCHITECT",
		form.FieldPortfolio:   "https://github.com/grace",
		form.FieldSummary:     "Compilers.",
	}
}

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	client := NewClientWithURL(url, "test-key")
	client.SetTimeout(2 * time.Second)
	t.Cleanup(client.HTTPClient.CloseIdleConnections)
	return client
}

func TestNewClient(t *testing.T) {
	client := NewClient("key")

	if client.Endpoint != DefaultEndpoint {
		t.Errorf("Endpoint = %s, want %s", client.Endpoint, DefaultEndpoint)
	}
	if client.Subject != DefaultSubject || client.FromName != DefaultFromName {
		t.Errorf("sender = %q/%q", client.Subject, client.FromName)
	}
	if client.HTTPClient.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", client.HTTPClient.Timeout, DefaultTimeout)
	}
}

func TestSetTimeoutIgnoresNonPositive(t *testing.T) {
	client := NewClient("key")
	client.SetTimeout(0)
	if client.HTTPClient.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want default", client.HTTPClient.Timeout)
	}
	client.SetTimeout(3 * time.Second)
	if client.HTTPClient.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", client.HTTPClient.Timeout)
	}
}

func TestSetSender(t *testing.T) {
	client := NewClient("key")
	client.SetSender("Hello", "")
	if client.Subject != "Hello" || client.FromName != DefaultFromName {
		t.Errorf("sender = %q/%q", client.Subject, client.FromName)
	}
}

func TestSubmitSuccess(t *testing.T) {
	var got Payload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %s", ct)
		}
		if accept := r.Header.Get("Accept"); accept != "application/json" {
			t.Errorf("Accept = %s", accept)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"Email sent successfully!"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	if err := client.Submit(context.Background(), careersValues()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	want := Payload{
		AccessKey: "test-key",
		Subject:   DefaultSubject,
		FromName:  DefaultFromName,
		Name:      " Grace Hopper ",
		Email:     "grace@navy.mil",
		Phone:     "+1 5550102030",
		Company:   "US Navy",
		Role:      "AI ARCHITECT",
		Portfolio: "https://github.com/grace",
		Summary:   "Compilers.",
	}
	if got != want {
		t.Errorf("payload = %+v, want %+v", got, want)
	}
}

func TestSendReturnsResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	defer server.Close()

	resp, err := newTestClient(t, server.URL).Send(context.Background(), Payload{Subject: "Custom"})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if !resp.Success || resp.Message != "ok" {
		t.Errorf("response = %+v", resp)
	}
}

func TestSubmitRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"Invalid access key"}`))
	}))
	defer server.Close()

	err := newTestClient(t, server.URL).Submit(context.Background(), careersValues())
	if !IsRejected(err) {
		t.Fatalf("Submit() error = %v, want rejected", err)
	}
	if AlertMessage(err) != AlertRejected {
		t.Errorf("AlertMessage() = %q", AlertMessage(err))
	}
	if ShortMessage(err) != "Rejected: Invalid access key" {
		t.Errorf("ShortMessage() = %q", ShortMessage(err))
	}
}

func TestSubmitHTTPStatus(t *testing.T) {
	tests := []struct {
		status    int
		body      string
		retryable bool
		message   string
		alert     string
	}{
		{http.StatusInternalServerError, "oops", true, "unexpected status code: 500", AlertNetwork},
		{http.StatusBadRequest, `{"success":false,"message":"Missing email"}`, false, "Missing email", AlertRejected},
		{http.StatusTooManyRequests, "", true, "unexpected status code: 429", AlertNetwork},
	}

	for _, tt := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			_, _ = w.Write([]byte(tt.body))
		}))

		err := newTestClient(t, server.URL).Submit(context.Background(), careersValues())
		server.Close()

		if !IsHTTPError(err) {
			t.Errorf("status %d: error = %v, want HTTP error", tt.status, err)
			continue
		}
		subErr, _ := asSubmitError(err)
		if subErr.StatusCode != tt.status || subErr.Retryable != tt.retryable || subErr.Message != tt.message {
			t.Errorf("status %d: got %+v", tt.status, subErr)
		}
		if AlertMessage(err) != tt.alert {
			t.Errorf("status %d: AlertMessage() = %q, want %q", tt.status, AlertMessage(err), tt.alert)
		}
	}
}

func TestSubmitParseError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer server.Close()

	err := newTestClient(t, server.URL).Submit(context.Background(), careersValues())
	subErr, ok := asSubmitError(err)
	if !ok || subErr.Type != ErrTypeParse {
		t.Fatalf("Submit() error = %v, want parse error", err)
	}
	if AlertMessage(err) != AlertNetwork {
		t.Errorf("AlertMessage() = %q, want network alert for a non-JSON body", AlertMessage(err))
	}
}

func TestSubmitWithoutAccessKeySendsNothing(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	client.AccessKey = ""

	err := client.Submit(context.Background(), careersValues())
	if !IsConfigError(err) {
		t.Fatalf("Submit() error = %v, want config error", err)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Error("request sent without access key")
	}
}

func TestValidateEndpoint(t *testing.T) {
	tests := []struct {
		endpoint string
		wantErr  bool
	}{
		{"https://api.web3forms.com/submit", false},
		{"http://localhost:8080/x", false},
		{"ftp://example.com", true},
		{"not a url", true},
		{"", true},
	}

	for _, tt := range tests {
		err := NewClientWithURL(tt.endpoint, "key").Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%q) error = %v, wantErr %v", tt.endpoint, err, tt.wantErr)
		}
	}
}

func TestSubmitTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer server.Close()
	defer close(release)

	client := newTestClient(t, server.URL)
	client.SetTimeout(50 * time.Millisecond)

	err := client.Submit(context.Background(), careersValues())
	if !IsTimeout(err) {
		t.Fatalf("Submit() error = %v, want timeout", err)
	}
	if !IsNetworkError(err) || AlertMessage(err) != AlertNetwork {
		t.Errorf("timeout should surface as a network alert, got %q", AlertMessage(err))
	}
}

func TestSubmitConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	err := newTestClient(t, endpoint).Submit(context.Background(), careersValues())
	subErr, ok := asSubmitError(err)
	if !ok || subErr.Type != ErrTypeConnectionRefused {
		t.Fatalf("Submit() error = %v, want connection refused", err)
	}
	if AlertMessage(err) != AlertNetwork {
		t.Errorf("AlertMessage() = %q", AlertMessage(err))
	}
}

func TestSubmitLogsAttemptID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logging.SetLogger(zap.New(core))
	defer logging.SetLogger(zap.NewNop())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_ = client.Submit(context.Background(), careersValues())
	_ = client.Submit(context.Background(), careersValues())

	finished := logs.FilterMessage("Submission finished").All()
	if len(finished) != 2 {
		t.Fatalf("got %d submission entries, want 2", len(finished))
	}

	first, _ := finished[0].ContextMap()["attempt_id"].(string)
	second, _ := finished[1].ContextMap()["attempt_id"].(string)
	if _, err := uuid.Parse(first); err != nil {
		t.Errorf("attempt_id %q is not a UUID", first)
	}
	if first == second {
		t.Error("attempts share an id")
	}
}

func TestClientDrivesFormSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	session := form.NewCareers()
	for field, value := range careersValues() {
		if field == form.FieldCountryCode {
			session.SetCountryCode(value)
			continue
		}
		session.SetField(field, value)
	}

	if err := session.Submit(context.Background(), newTestClient(t, server.URL)); err != nil {
		t.Fatalf("session.Submit() error = %v", err)
	}
	if session.Outcome() != form.Submitted {
		t.Errorf("Outcome() = %v, want submitted", session.Outcome())
	}
}

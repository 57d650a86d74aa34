package generate

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerate_Success(t *testing.T) {
	var gotBody map[string]any
	var gotContentType, gotRequestID, gotMethod string

	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get(RequestIDHeader)
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"completed","video_urls":["a.mp4","b.mp4"],"audio_url":"c.mp3"}`))
	})

	client := NewClient(srv.URL)
	result, err := client.Generate(context.Background(), "draw a circle", "req-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q, want application/json", gotContentType)
	}
	if gotRequestID != "req-1" {
		t.Errorf("request id = %q, want req-1", gotRequestID)
	}
	if len(gotBody) != 1 || gotBody["userPrompt"] != "draw a circle" {
		t.Errorf("body = %v, want only userPrompt", gotBody)
	}

	if len(result.VideoURLs) != 2 || result.VideoURLs[0] != "a.mp4" || result.VideoURLs[1] != "b.mp4" {
		t.Errorf("video urls = %v", result.VideoURLs)
	}
	if result.AudioURL != "c.mp3" {
		t.Errorf("audio url = %q, want c.mp3", result.AudioURL)
	}
}

func TestGenerate_EmptyPromptForwarded(t *testing.T) {
	var raw string
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		raw = string(data)
		_, _ = w.Write([]byte(`{"status":"completed","video_urls":[],"audio_url":"x.mp3"}`))
	})

	result, err := NewClient(srv.URL).Generate(context.Background(), "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != `{"userPrompt":""}` {
		t.Errorf("body = %s, want empty userPrompt", raw)
	}
	if result.VideoURLs == nil || len(result.VideoURLs) != 0 {
		t.Errorf("video urls = %#v, want empty non-nil list", result.VideoURLs)
	}
}

func TestGenerate_URLsKeptVerbatim(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"completed","video_urls":["not a url", "/media/x.mp4"],"audio_url":"::"}`))
	})

	result, err := NewClient(srv.URL).Generate(context.Background(), "p", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.VideoURLs[0] != "not a url" || result.VideoURLs[1] != "/media/x.mp4" {
		t.Errorf("video urls = %v", result.VideoURLs)
	}
	if result.AudioURL != "::" {
		t.Errorf("audio url = %q", result.AudioURL)
	}
}

func TestGenerate_Failures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantErr  error
		wantKind string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"boom"}`, wantErr: ErrStatus, wantKind: "status"},
		{name: "not found", status: http.StatusNotFound, body: ``, wantErr: ErrStatus, wantKind: "status"},
		{name: "pending", status: http.StatusOK, body: `{"status":"pending"}`, wantErr: ErrContract, wantKind: "contract"},
		{name: "missing audio", status: http.StatusOK, body: `{"status":"completed","video_urls":["a.mp4"]}`, wantErr: ErrContract, wantKind: "contract"},
		{name: "null videos", status: http.StatusOK, body: `{"status":"completed","video_urls":null,"audio_url":"c.mp3"}`, wantErr: ErrContract, wantKind: "contract"},
		{name: "malformed json", status: http.StatusOK, body: `{"status":`, wantErr: ErrContract, wantKind: "contract"},
		{name: "wrong shape", status: http.StatusOK, body: `["completed"]`, wantErr: ErrContract, wantKind: "contract"},
		{name: "upper case keys", status: http.StatusOK, body: `{"STATUS":"completed","VIDEO_URLS":["a.mp4"],"AUDIO_URL":"c.mp3"}`, wantErr: ErrContract, wantKind: "contract"},
		{name: "mixed case status key", status: http.StatusOK, body: `{"Status":"completed","video_urls":["a.mp4"],"audio_url":"c.mp3"}`, wantErr: ErrContract, wantKind: "contract"},
		{name: "wrong field type", status: http.StatusOK, body: `{"status":"completed","video_urls":"a.mp4","audio_url":"c.mp3"}`, wantErr: ErrContract, wantKind: "contract"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			result, err := NewClient(srv.URL).Generate(context.Background(), "p", "")
			if err == nil {
				t.Fatal("expected error")
			}
			if result != nil {
				t.Errorf("result = %+v, want nil", result)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if got := Kind(err); got != tt.wantKind {
				t.Errorf("Kind = %q, want %q", got, tt.wantKind)
			}
		})
	}
}

func TestGenerate_StatusErrorCarriesCode(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	})

	_, err := NewClient(srv.URL).Generate(context.Background(), "p", "")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if statusErr.Code != http.StatusServiceUnavailable {
		t.Errorf("code = %d, want 503", statusErr.Code)
	}
	if statusErr.Body != "overloaded\n" {
		t.Errorf("body = %q", statusErr.Body)
	}
}

func TestGenerate_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	_, err := NewClient(endpoint).Generate(context.Background(), "p", "")
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("error = %v, want ErrTransport", err)
	}
	if Kind(err) != "transport" {
		t.Errorf("Kind = %q, want transport", Kind(err))
	}
}

func TestGenerate_InvalidEndpoint(t *testing.T) {
	_, err := NewClient("http://bad host/").Generate(context.Background(), "p", "")
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("error = %v, want ErrTransport", err)
	}
}

func TestWithHTTPClient(t *testing.T) {
	hc := &http.Client{}
	c := NewClient("http://localhost", WithHTTPClient(hc))
	if c.httpClient != hc {
		t.Error("expected custom http client")
	}

	c = NewClient("http://localhost", WithHTTPClient(nil))
	if c.httpClient == nil {
		t.Error("nil option should keep default client")
	}
	if c.httpClient.Timeout != 0 {
		t.Errorf("default timeout = %v, want none", c.httpClient.Timeout)
	}
}

func TestKind(t *testing.T) {
	if Kind(nil) != "" {
		t.Error("nil error should have empty kind")
	}
	if Kind(errors.New("other")) != "unknown" {
		t.Error("foreign error should be unknown")
	}
}

func TestResponse_UnmarshalExactKeys(t *testing.T) {
	var r Response
	body := `{"status":"completed","video_urls":["a.mp4"],"audio_url":"c.mp3","AUDIO_URL":"shadow.mp3","extra":1}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if r.Status != StatusCompleted || len(r.VideoURLs) != 1 || r.AudioURL != "c.mp3" {
		t.Errorf("response = %+v", r)
	}

	var empty Response
	if err := json.Unmarshal([]byte(`{"video_urls":[]}`), &empty); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if empty.VideoURLs == nil || len(empty.VideoURLs) != 0 {
		t.Errorf("empty array decoded as %#v, want non-nil empty slice", empty.VideoURLs)
	}
}

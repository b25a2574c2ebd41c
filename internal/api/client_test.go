package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ytget/college-schedule/internal/model"
)

var testWeek = model.WeekWindow{Start: model.NewDate(2026, 10, 12), End: model.NewDate(2026, 10, 18)}

const sampleResponse = `[
  {"lessonDate": "2026-10-13", "weekday": "вторник", "lessons": [
    {"lessonNumber": 2, "time": "10:10-11:40", "groupParts": {
      "SUB1": {"subject": "Физика", "teacher": "Петров П.П.", "teacherPosition": "доцент", "classroom": "12", "building": "2", "address": "ул. Ленина, 1"},
      "SUB2": null
    }}
  ]},
  {"lessonDate": "2026-10-12", "weekday": "понедельник", "lessons": [
    {"lessonNumber": 1, "time": "08:30-10:00", "groupParts": {
      "FULL": {"subject": "Математика", "teacher": "Иванов И.И.", "teacherPosition": "преподаватель", "classroom": "101", "building": "1", "address": "ул. Ленина, 1"}
    }}
  ]}
]`

func newTestClient(url string) *Client {
	c := NewClient(url, time.Second)
	c.retryDelay = 10 * time.Millisecond
	return c
}

func TestFetchSchedule_DecodesAndSorts(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	days, err := newTestClient(srv.URL).FetchSchedule(context.Background(), "ИС-12", testWeek)
	if err != nil {
		t.Fatalf("FetchSchedule: %v", err)
	}

	if gotPath != "/api/schedule/group/ИС-12" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "end=2026-10-18&start=2026-10-12" {
		t.Errorf("query = %q", gotQuery)
	}

	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	if days[0].Date != model.NewDate(2026, 10, 12) || days[0].Weekday != "понедельник" {
		t.Errorf("first day = %+v", days[0])
	}
	full := days[0].Lessons[0].Parts[model.LessonPartFull]
	if full == nil || full.Subject != "Математика" || full.Classroom != "101" {
		t.Errorf("FULL part = %+v", full)
	}

	split := days[1].Lessons[0]
	if split.Number != 2 || split.Time != "10:10-11:40" {
		t.Errorf("lesson = %+v", split)
	}
	parts := split.OrderedParts()
	if len(parts) != 1 || parts[0].Part != model.LessonPartSub1 {
		t.Errorf("ordered parts = %+v, want only SUB1", parts)
	}
}

func TestFetchSchedule_EmptyWeek(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	days, err := newTestClient(srv.URL).FetchSchedule(context.Background(), "ИС-12", testWeek)
	if err != nil {
		t.Fatalf("FetchSchedule: %v", err)
	}
	if len(days) != 0 {
		t.Errorf("got %d days, want 0", len(days))
	}
}

func TestFetchSchedule_Retries(t *testing.T) {
	tests := []struct {
		name      string
		statuses  []int
		wantCalls int32
		wantErr   bool
		wantCode  int
	}{
		{"server error then success", []int{500, 200}, 2, false, 0},
		{"two server errors", []int{503, 503}, 2, true, 503},
		{"not found is not retried", []int{404}, 1, true, 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				n := atomic.AddInt32(&calls, 1)
				status := tt.statuses[n-1]
				if status != http.StatusOK {
					w.WriteHeader(status)
					return
				}
				_, _ = w.Write([]byte(`[]`))
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL).FetchSchedule(context.Background(), "ИС-12", testWeek)
			if got := atomic.LoadInt32(&calls); got != tt.wantCalls {
				t.Errorf("calls = %d, want %d", got, tt.wantCalls)
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var fe *FetchError
				if !errors.As(err, &fe) || fe.StatusCode != tt.wantCode {
					t.Errorf("err = %#v, want FetchError with status %d", err, tt.wantCode)
				}
			}
		})
	}
}

func TestFetchSchedule_MalformedBody(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchSchedule(context.Background(), "ИС-12", testWeek)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("err = %v, want ErrMalformedResponse", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, malformed responses should not be retried", calls)
	}
}

func TestFetchSchedule_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestClient(url).FetchSchedule(context.Background(), "ИС-12", testWeek)
	var fe *FetchError
	if !errors.As(err, &fe) || fe.StatusCode != 0 {
		t.Fatalf("err = %v, want transport FetchError", err)
	}
	if !fe.Temporary() {
		t.Error("transport errors should be temporary")
	}
}

func TestFetchSchedule_ContextCancelledDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	c.retryDelay = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := c.FetchSchedule(ctx, "ИС-12", testWeek)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("", 0)
	if c.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL = %q", c.BaseURL())
	}
	if c.httpClient.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v", c.httpClient.Timeout)
	}
	if got := NewClient("http://host/", 0).BaseURL(); got != "http://host" {
		t.Errorf("trailing slash not trimmed: %q", got)
	}
}

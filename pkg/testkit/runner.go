package testkit

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// Run executes a single scenario file against handler.
func Run(t *testing.T, handler http.Handler, scenarioPath string) *httptest.ResponseRecorder {
	t.Helper()

	s, err := LoadScenario(scenarioPath)
	if err != nil {
		t.Fatalf("testkit: load scenario %q: %v", scenarioPath, err)
	}

	var rec *httptest.ResponseRecorder
	t.Run(s.Name, func(t *testing.T) {
		rec = Fire(t, handler, s)
	})
	return rec
}

// RunDir runs every scenario in dir as a subtest, in file-name order.
// A failing scenario stops the run, since later ones build on its state.
func RunDir(t *testing.T, handler http.Handler, dir string) {
	t.Helper()

	scenarios, errs := LoadAllFromDir(dir)
	for _, err := range errs {
		t.Errorf("%v", err)
	}
	if len(errs) > 0 {
		return
	}

	for _, s := range scenarios {
		if !t.Run(s.Name, func(t *testing.T) { Fire(t, handler, s) }) {
			return
		}
	}
}

// Fire sends the scenario's request to handler and asserts the response.
func Fire(t *testing.T, handler http.Handler, s *Scenario) *httptest.ResponseRecorder {
	t.Helper()

	body, err := s.Body()
	if err != nil {
		t.Fatalf("[%s] read request body: %v", s.Name, err)
	}

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req := httptest.NewRequest(strings.ToUpper(s.RequestMethod), s.RequestURL, reqBody)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range s.Headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	AssertStatusCode(t, s, rec.Code, rec.Body.String())

	expected, err := s.Expected()
	if err != nil {
		t.Errorf("[%s] read expected body: %v", s.Name, err)
		return rec
	}
	AssertJSONContains(t, s, expected, rec.Body.Bytes())
	return rec
}

// Copyright 2025 The Helix Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/helixweb/helix/extract"
	"github.com/helixweb/helix/handler"
	"github.com/helixweb/helix/middleware/bodylimit"
	"github.com/helixweb/helix/middleware/requestid"
	"github.com/helixweb/helix/respond"
	"github.com/helixweb/helix/router"
)

func TestIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Dispatch Integration Suite")
}

type note struct {
	ID   int    `json:"id"`
	Text string `json:"text" validate:"required,max=140"`
}

type noteStore struct {
	mu    sync.Mutex
	next  int
	notes map[int]note
}

func newNoteStore() *noteStore {
	return &noteStore{next: 1, notes: make(map[int]note)}
}

func (s *noteStore) create(n note) note {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.ID = s.next
	s.next++
	s.notes[n.ID] = n
	return n
}

func (s *noteStore) get(id int) (note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notes[id]
	return n, ok
}

var _ = Describe("Typed dispatch pipeline", func() {
	var (
		r     *router.Router
		store *noteStore
	)

	BeforeEach(func() {
		store = newNoteStore()
		r = router.New()
		r.SetState(store)
		r.UseObservational(requestid.New(requestid.WithGenerator(func() string { return "it-1" })))

		api := r.Group("/api/v1")
		api.GET("/notes/{id}", handler.H2(func(c *router.Context, id extract.Path[int], st extract.State[*noteStore]) (respond.JSON[note], error) {
			n, ok := st.Value.get(id.Value)
			if !ok {
				return respond.JSON[note]{}, fmt.Errorf("note %d not found", id.Value)
			}
			return respond.JSON[note]{Value: n}, nil
		}))
		api.POST("/notes", handler.H2(func(c *router.Context, st extract.State[*noteStore], body extract.JSON[note]) (respond.Created[note], error) {
			created := st.Value.create(body.Value)
			return respond.Created[note]{
				Value:    created,
				Location: fmt.Sprintf("/api/v1/notes/%d", created.ID),
			}, nil
		}), bodylimit.New(bodylimit.WithLimit(1<<10)))
	})

	postJSON := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	It("creates and fetches a note through the full pipeline", func() {
		w := postJSON("/api/v1/notes", `{"text":"remember the milk"}`)
		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(w.Header().Get("Location")).To(Equal("/api/v1/notes/1"))
		Expect(w.Header().Get("X-Request-ID")).To(Equal("it-1"))

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/notes/1", nil))
		Expect(w.Code).To(Equal(http.StatusOK))

		var got note
		Expect(json.Unmarshal(w.Body.Bytes(), &got)).To(Succeed())
		Expect(got.Text).To(Equal("remember the milk"))
	})

	It("rejects a non-integer path parameter with a field-level problem", func() {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/notes/abc", nil))
		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var p map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &p)).To(Succeed())
		Expect(p["kind"]).To(Equal("extraction"))
	})

	It("distinguishes malformed JSON from schema mismatches", func() {
		Expect(postJSON("/api/v1/notes", `{"text": "x"`).Code).To(Equal(http.StatusBadRequest))
		Expect(postJSON("/api/v1/notes", `{"text": ""}`).Code).To(Equal(http.StatusUnprocessableEntity))
	})

	It("rejects oversized bodies before buffering them", func() {
		big := fmt.Sprintf(`{"text":%q}`, strings.Repeat("a", 4096))
		w := postJSON("/api/v1/notes", big)
		Expect(w.Code).To(Equal(http.StatusRequestEntityTooLarge))
	})

	It("unifies handler errors into problem responses", func() {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/notes/999", nil))
		Expect(w.Code).To(Equal(http.StatusInternalServerError))

		var p map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &p)).To(Succeed())
		Expect(p["kind"]).To(Equal("handler"))
		Expect(p["correlation_id"]).NotTo(BeEmpty())
	})

	It("answers unknown paths with a routing problem", func() {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/nothing", nil))
		Expect(w.Code).To(Equal(http.StatusNotFound))

		var p map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &p)).To(Succeed())
		Expect(p["kind"]).To(Equal("routing"))
	})
})

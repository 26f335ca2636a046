// Package quotetest provides an in-process fake of the quote API for tests.
package quotetest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// Quote is a quote as the fake server stores and serves it.
type Quote struct {
	ID             int    `json:"id"`
	Text           string `json:"text"`
	Author         string `json:"author"`
	Classification string `json:"classification"`
	Likes          int    `json:"likes"`
	Approved       bool   `json:"approved"`
}

// Submission is a quote received on POST /quotes.
type Submission struct {
	Text           string `json:"text"`
	Author         string `json:"author"`
	Classification string `json:"classification"`
	SubmitterName  string `json:"submitter_name"`
	Approved       bool   `json:"approved"`
	Likes          int    `json:"likes"`
}

// Feedback is a message received on POST /feedback.
type Feedback struct {
	Text  string `json:"text"`
	Type  string `json:"type"`
	Email string `json:"email"`
}

// Server is a fake quote API. Approved quotes are served; submissions are recorded.
// FailWith makes every request answer with the given status until cleared.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	quotes      []Quote
	submissions []Submission
	feedback    []Feedback
	failStatus  int
	requests    []string
}

// NewServer starts a fake quote API serving quotes.
func NewServer(quotes ...Quote) *Server {
	s := &Server{quotes: slices.Clone(quotes)}
	s.Server = httptest.NewServer(s.routes())
	return s
}

// Add stores more quotes.
func (s *Server) Add(quotes ...Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes = append(s.quotes, quotes...)
}

// FailWith makes the server answer every request with status. Zero restores normal service.
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
}

// Submissions returns the quotes submitted so far.
func (s *Server) Submissions() []Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.submissions)
}

// Feedback returns the feedback received so far.
func (s *Server) Feedback() []Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.feedback)
}

// Requests returns "METHOD /path?query" for every request received.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// Quote returns the stored quote with id.
func (s *Server) Quote(id int) (Quote, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return Quote{}, false
	}
	return s.quotes[i], true
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /quotes/random", s.random)
	mux.HandleFunc("GET /quotes", s.list)
	mux.HandleFunc("POST /quotes", s.submit)
	mux.HandleFunc("GET /quotes/recent", s.recent)
	mux.HandleFunc("GET /quotes/top", s.top)
	mux.HandleFunc("GET /quotes/count", s.count)
	mux.HandleFunc("GET /quotes/{id}", s.byID)
	mux.HandleFunc("GET /quotes/{id}/likes", s.likes)
	mux.HandleFunc("POST /quotes/{id}/like", s.like(1))
	mux.HandleFunc("DELETE /quotes/{id}/like", s.like(-1))
	mux.HandleFunc("POST /feedback", s.sendFeedback)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.Method+" "+r.URL.RequestURI())
		status := s.failStatus
		s.mu.Unlock()

		if status != 0 {
			http.Error(w, http.StatusText(status), status)
			return
		}
		mux.ServeHTTP(w, r)
	})
}

func (s *Server) random(w http.ResponseWriter, r *http.Request) {
	classification := r.URL.Query().Get("classification")
	maxLength, _ := strconv.Atoi(r.URL.Query().Get("maxLength"))

	s.serveList(w, func(q Quote) bool {
		return (classification == "" || q.Classification == classification) &&
			(maxLength == 0 || len([]rune(q.Text)) <= maxLength)
	})
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	author := query.Get("author")
	search := strings.ToLower(query.Get("search"))
	category := query.Get("category")

	s.serveList(w, func(q Quote) bool {
		switch {
		case author != "" && q.Author != author:
			return false
		case category != "" && q.Classification != category:
			return false
		case search != "":
			return strings.Contains(strings.ToLower(q.Text), search) ||
				strings.Contains(strings.ToLower(q.Author), search)
		default:
			return true
		}
	})
}

func (s *Server) recent(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 0 {
		http.Error(w, "bad limit", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	approved := s.approved(func(Quote) bool { return true })
	s.mu.Unlock()

	slices.Reverse(approved)
	writeJSON(w, http.StatusOK, approved[:min(limit, len(approved))])
}

func (s *Server) top(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	s.mu.Lock()
	matches := s.approved(func(q Quote) bool { return category == "" || q.Classification == category })
	s.mu.Unlock()

	slices.SortStableFunc(matches, func(a, b Quote) int { return b.Likes - a.Likes })
	writeJSON(w, http.StatusOK, matches)
}

func (s *Server) count(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	s.mu.Lock()
	n := len(s.approved(func(q Quote) bool { return category == "" || q.Classification == category }))
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]int{"count": n})
}

func (s *Server) byID(w http.ResponseWriter, r *http.Request) {
	s.withQuote(w, r, func(q *Quote) { writeJSON(w, http.StatusOK, q) })
}

func (s *Server) likes(w http.ResponseWriter, r *http.Request) {
	s.withQuote(w, r, func(q *Quote) { writeJSON(w, http.StatusOK, map[string]int{"likes": q.Likes}) })
}

func (s *Server) like(delta int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.withQuote(w, r, func(q *Quote) {
			q.Likes = max(q.Likes+delta, 0)
			writeJSON(w, http.StatusOK, q)
		})
	}
}

func (s *Server) submit(w http.ResponseWriter, r *http.Request) {
	var sub Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		http.Error(w, "bad body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, q := range s.quotes {
		if strings.EqualFold(q.Text, sub.Text) {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "duplicate quote"})
			return
		}
	}

	s.submissions = append(s.submissions, sub)
	s.quotes = append(s.quotes, Quote{
		ID:             s.nextID(),
		Text:           sub.Text,
		Author:         sub.Author,
		Classification: sub.Classification,
	})
	writeJSON(w, http.StatusCreated, map[string]string{"message": "submitted"})
}

func (s *Server) sendFeedback(w http.ResponseWriter, r *http.Request) {
	var fb Feedback
	if err := json.NewDecoder(r.Body).Decode(&fb); err != nil {
		http.Error(w, "bad body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.feedback = append(s.feedback, fb)
	s.mu.Unlock()

	w.WriteHeader(http.StatusCreated)
}

func (s *Server) serveList(w http.ResponseWriter, keep func(Quote) bool) {
	s.mu.Lock()
	matches := s.approved(keep)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, matches)
}

func (s *Server) withQuote(w http.ResponseWriter, r *http.Request, fn func(*Quote)) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 || !s.quotes[i].Approved {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	fn(&s.quotes[i])
}

// approved returns the approved quotes passing keep. Callers hold mu.
func (s *Server) approved(keep func(Quote) bool) []Quote {
	out := []Quote{}
	for _, q := range s.quotes {
		if q.Approved && keep(q) {
			out = append(out, q)
		}
	}
	return out
}

func (s *Server) indexOf(id int) int {
	return slices.IndexFunc(s.quotes, func(q Quote) bool { return q.ID == id })
}

func (s *Server) nextID() int {
	next := 1
	for _, q := range s.quotes {
		next = max(next, q.ID+1)
	}
	return next
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Package ipfstest runs an in-memory stand-in for the Kubo HTTP RPC API
// covering add and cat.
package ipfstest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

type Server struct {
	*httptest.Server

	mu        sync.Mutex
	blocks    map[string][]byte
	authHdrs  []string
	addCalls  int
	failNext  bool
	badCidOut bool
}

func NewServer() *Server {
	s := &Server{blocks: make(map[string][]byte)}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v0/add", s.add)
	mux.HandleFunc("/api/v0/cat", s.cat)
	s.Server = httptest.NewServer(mux)

	return s
}

// ComputeCID returns the CIDv1 (raw codec, sha2-256) of data.
func ComputeCID(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}

	return cid.NewCidV1(cid.Raw, sum), nil
}

// FailNext makes the next request answer 500.
func (s *Server) FailNext() {
	s.mu.Lock()
	s.failNext = true
	s.mu.Unlock()
}

// ReturnInvalidCID makes every add answer a hash that does not parse.
func (s *Server) ReturnInvalidCID() {
	s.mu.Lock()
	s.badCidOut = true
	s.mu.Unlock()
}

func (s *Server) AddCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addCalls
}

func (s *Server) Authorizations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.authHdrs...)
}

func (s *Server) Put(data []byte) string {
	c, err := ComputeCID(data)
	if err != nil {
		panic(err)
	}

	s.mu.Lock()
	s.blocks[c.String()] = append([]byte(nil), data...)
	s.mu.Unlock()

	return c.String()
}

func (s *Server) begin(w http.ResponseWriter, r *http.Request) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.authHdrs = append(s.authHdrs, r.Header.Get("Authorization"))

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)

		return false
	}

	if s.failNext {
		s.failNext = false
		http.Error(w, "node unavailable", http.StatusInternalServerError)

		return false
	}

	return true
}

func (s *Server) add(w http.ResponseWriter, r *http.Request) {
	if !s.begin(w, r) {
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	name, err := url.QueryUnescape(header.Filename)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	hash := s.Put(data)

	s.mu.Lock()
	s.addCalls++
	if s.badCidOut {
		hash = "not-a-cid"
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"Name": name,
		"Hash": hash,
		"Size": fmt.Sprint(len(data)),
	})
}

func (s *Server) cat(w http.ResponseWriter, r *http.Request) {
	if !s.begin(w, r) {
		return
	}

	s.mu.Lock()
	data, ok := s.blocks[r.URL.Query().Get("arg")]
	s.mu.Unlock()

	if !ok {
		http.Error(w, "block was not found locally (offline)", http.StatusInternalServerError)

		return
	}

	_, _ = w.Write(data)
}

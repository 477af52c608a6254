package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hyperjump/lapwise/internal/advisor"
	"github.com/hyperjump/lapwise/internal/extract"
	"github.com/hyperjump/lapwise/internal/llm"
	"github.com/hyperjump/lapwise/internal/match"
	"github.com/hyperjump/lapwise/internal/models"
	"github.com/hyperjump/lapwise/internal/ranking"
	"github.com/hyperjump/lapwise/internal/storage"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req models.CompareRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.logger.Debug("compare request", zap.Int("queries", len(req.Queries)), zap.String("persona", req.Persona))
	cmp, err := s.advisor.Compare(r.Context(), &req)
	if err != nil {
		s.fail(w, "compare", err)
		return
	}
	s.respondJSON(w, http.StatusOK, cmp)
}

type rankResponse struct {
	Persona ranking.Persona         `json:"persona"`
	Results []*ranking.ScoredLaptop `json:"results"`
}

func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req models.RankRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	persona, err := ranking.ParsePersona(req.Persona)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	ranker := s.advisor.Ranker()
	resp := rankResponse{Persona: persona}
	if req.Breakdown {
		resp.Results = ranker.RankWithBreakdown(req.Laptops, persona)
	} else {
		resp.Results = ranker.Rank(req.Laptops, persona)
	}
	s.respondJSON(w, http.StatusOK, resp)
}

type matchResponse struct {
	Query  *match.Query       `json:"query"`
	Laptop *models.LaptopSpec `json:"laptop"`
	Match  match.Result       `json:"match"`
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req models.MatchRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	q := match.ParseQuery(req.Query)
	laptop, result := s.advisor.Matcher().MatchQuery(q)
	s.respondJSON(w, http.StatusOK, matchResponse{Query: q, Laptop: laptop, Match: result})
}

type extractResponse struct {
	Result *extract.Result    `json:"result"`
	Valid  bool               `json:"valid"`
	Laptop *models.LaptopSpec `json:"laptop"`
	// URLCheck is set when a source URL was given.
	URLCheck *extract.Validation `json:"url_check,omitempty"`
}

// handleExtract accepts JSON {content, url} or a multipart spec sheet in the
// "file" field. A JSON request with only a url fetches the page first.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		s.handleExtractFile(w, r)
		return
	}

	var req models.ExtractRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	content := req.Content
	if content == "" {
		if s.fetcher == nil {
			s.respondError(w, http.StatusBadRequest, "content is required: page fetching is not configured")
			return
		}
		html, err := s.fetcher.Fetch(r.Context(), req.URL)
		if err != nil {
			// An unreachable page extracts nothing; it is not a request failure.
			s.logger.Warn("extract: fetch failed", zap.String("url", req.URL), zap.Error(err))
		}
		content = html
	}

	s.respondJSON(w, http.StatusOK, s.extractResponse(s.extractor.Extract(content, req.URL), req.URL))
}

func (s *Server) handleExtractFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "failed to read upload")
		return
	}
	sourceURL := r.FormValue("url")
	s.logger.Debug("extract file request", zap.String("filename", header.Filename), zap.Int("bytes", len(content)))

	res, err := s.documents.Read(content, header.Filename, sourceURL)
	if err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, s.extractResponse(res, sourceURL))
}

func (s *Server) extractResponse(res *extract.Result, sourceURL string) extractResponse {
	resp := extractResponse{
		Result: res,
		Valid:  res.Valid(),
		Laptop: extract.ToSpec(res, sourceURL),
	}
	if sourceURL != "" {
		resp.URLCheck = extract.ValidateURL(sourceURL)
	}
	return resp
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if !s.decode(w, r, &req) {
		return
	}
	reply, err := s.advisor.Chat(r.Context(), &req)
	if err != nil {
		s.fail(w, "chat", err)
		return
	}
	s.respondJSON(w, http.StatusOK, reply)
}

func (s *Server) handleDiscover(w http.ResponseWriter, r *http.Request) {
	var req models.DiscoverRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.logger.Debug("discover request", zap.String("brand", req.Brand), zap.Int("limit", req.Limit))
	cmp, err := s.advisor.Discover(r.Context(), &req)
	if err != nil {
		s.fail(w, "discover", err)
		return
	}
	s.respondJSON(w, http.StatusOK, cmp)
}

func (s *Server) handleAssist(w http.ResponseWriter, r *http.Request) {
	var req models.AssistRequest
	if !s.decode(w, r, &req) {
		return
	}
	out, err := s.advisor.Handle(r.Context(), &req)
	if err != nil {
		s.fail(w, "assist", err)
		return
	}
	s.respondJSON(w, http.StatusOK, out)
}

type personaInfo struct {
	Name    ranking.Persona `json:"name"`
	Weights ranking.Weights `json:"weights"`
}

func (s *Server) handlePersonas(w http.ResponseWriter, r *http.Request) {
	out := make([]personaInfo, 0, len(ranking.Personas()))
	for _, p := range ranking.Personas() {
		out = append(out, personaInfo{Name: p, Weights: p.Weights()})
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"personas": out})
}

func (s *Server) handleSaveComparison(w http.ResponseWriter, r *http.Request) {
	var c models.SavedComparison
	if !s.decode(w, r, &c) {
		return
	}
	laptops := c.Laptops[:0]
	for _, l := range c.Laptops {
		if l != nil {
			laptops = append(laptops, l)
		}
	}
	c.Laptops = laptops
	if len(c.Laptops) == 0 {
		s.respondError(w, http.StatusBadRequest, "laptops cannot be empty")
		return
	}
	if c.Persona != "" {
		p, err := ranking.ParsePersona(c.Persona)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Persona = p.String()
	}
	if strings.TrimSpace(c.Title) == "" {
		c.Title = defaultTitle(c.Laptops)
	}

	if err := s.store.Save(r.Context(), &c); err != nil {
		s.fail(w, "save comparison", err)
		return
	}
	s.respondJSON(w, http.StatusCreated, &c)
}

func defaultTitle(laptops []*models.LaptopSpec) string {
	names := make([]string, 0, len(laptops))
	for _, l := range laptops {
		names = append(names, l.Name)
	}
	return strings.Join(names, " vs ")
}

func (s *Server) handleListComparisons(w http.ResponseWriter, r *http.Request) {
	offset := queryInt(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	limit := queryInt(r, "limit", defaultListLimit)
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}

	items, err := s.store.List(r.Context(), offset, limit)
	if err != nil {
		s.fail(w, "list comparisons", err)
		return
	}
	total, err := s.store.Count(r.Context())
	if err != nil {
		s.fail(w, "count comparisons", err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"comparisons": items,
		"total":       total,
		"offset":      offset,
		"limit":       limit,
	})
}

func (s *Server) handleGetComparison(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, "get comparison", err)
		return
	}
	s.respondJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteComparison(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.logger.Debug("delete comparison request", zap.String("id", id))
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.fail(w, "delete comparison", err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"id": id, "status": "deleted"})
}

type diskUser interface {
	DiskUsage() (int64, error)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{"status": "ok"}
	if s.store != nil {
		count, err := s.store.Count(r.Context())
		if err != nil {
			s.logger.Error("health: count comparisons failed", zap.Error(err))
			s.respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "error": err.Error()})
			return
		}
		resp["comparisons"] = count
		if du, ok := s.store.(diskUser); ok {
			if bytes, err := du.DiskUsage(); err == nil {
				resp["disk_usage_bytes"] = bytes
			}
		}
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// fail maps err to a status code and writes it.
func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(op+" failed", zap.Error(err))
	} else {
		s.logger.Debug(op+" rejected", zap.Error(err))
	}
	s.respondError(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, advisor.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, llm.ErrMissingAPIKey):
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

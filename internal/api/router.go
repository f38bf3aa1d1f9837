package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mentorra/backend/internal/config"
	"github.com/mentorra/backend/internal/fault"
	"github.com/mentorra/backend/internal/mentor"
	"github.com/mentorra/backend/internal/provider"
)

// Per-call vendor timeouts. Synthesis gets longer because the response is a
// stream that lives as long as the vendor keeps sending audio.
const (
	completionTimeout    = 60 * time.Second
	transcriptionTimeout = 60 * time.Second
	synthesisTimeout     = 120 * time.Second
)

const maxUploadBytes = 15 << 20

// Server holds dependencies for API handlers.
type Server struct {
	cfg      *config.Config
	registry *provider.Registry
	mentor   *mentor.Service
}

// NewRouter creates a fully wired Chi router.
func NewRouter(cfg *config.Config, registry *provider.Registry, mentorSvc *mentor.Service) *chi.Mux {
	s := &Server{cfg: cfg, registry: registry, mentor: mentorSvc}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/healthz"))
	r.Use(CORSMiddleware(cfg.AllowedOrigin))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/providers", s.handleProviders)
		r.Post("/mentor-assist", s.handleMentorAssist)
		r.Route("/voice", func(r chi.Router) {
			r.Post("/speak", s.handleSpeak)
			r.Post("/transcribe", s.handleTranscribe)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleProviders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.Names())
}

func (s *Server) handleMentorAssist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		mentor.AssistRequest
		Provider string `json:"provider,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "mentor assist", fault.Input("invalid request body: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), completionTimeout)
	defer cancel()

	resp, err := s.mentor.Assist(ctx, req.Provider, req.AssistRequest)
	if err != nil {
		writeError(w, "mentor assist", err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSpeak(w http.ResponseWriter, r *http.Request) {
	var req struct {
		provider.SynthesisRequest
		Provider string `json:"provider,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "speech synthesis", fault.Input("invalid request body: %v", err))
		return
	}
	if req.Text == "" {
		writeError(w, "speech synthesis", fault.Input("text is required"))
		return
	}

	providerName := req.Provider
	if providerName == "" {
		providerName = s.cfg.DefaultTTSProvider
	}
	tts, err := s.registry.GetTTS(providerName)
	if err != nil {
		writeError(w, "speech synthesis", fault.Input("%v", err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), synthesisTimeout)
	defer cancel()

	stream, contentType, err := tts.Synthesize(ctx, req.SynthesisRequest)
	if err != nil {
		writeError(w, "speech synthesis", fault.Vendor(err))
		return
	}
	defer stream.Close()

	// Headers are committed on the first copied byte. A vendor failure after
	// that can only truncate the body, so it is logged rather than reported.
	w.Header().Set("Content-Type", contentType)
	if _, err := io.Copy(w, stream); err != nil {
		slog.Error("speech synthesis stream aborted", "error", err)
	}
}

func (s *Server) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	// Walked by hand instead of ParseMultipartForm: a part without a filename
	// must still count as the upload, with the fixed placeholder name.
	mr, err := r.MultipartReader()
	if err != nil {
		writeError(w, "transcription", fault.Input("invalid multipart form: %v", err))
		return
	}

	var audio []byte
	filename := ""
	providerName := ""
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			writeError(w, "transcription", fault.Input("invalid multipart form: %v", err))
			return
		}
		switch part.FormName() {
		case "file":
			audio, err = io.ReadAll(part)
			if err != nil {
				writeError(w, "transcription", fault.Input("read upload: %v", err))
				return
			}
			filename = part.FileName()
		case "provider":
			v, err := io.ReadAll(part)
			if err == nil {
				providerName = string(v)
			}
		}
		part.Close()
	}

	if audio == nil {
		writeError(w, "transcription", fault.Input("audio file is required"))
		return
	}
	if filename == "" {
		filename = "audio.mp3"
	}

	if providerName == "" {
		providerName = s.cfg.DefaultSTTProvider
	}
	sttProvider, err := s.registry.GetSTT(providerName)
	if err != nil {
		writeError(w, "transcription", fault.Input("%v", err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), transcriptionTimeout)
	defer cancel()

	text, err := sttProvider.Transcribe(ctx, bytes.NewReader(audio), filename)
	if err != nil {
		writeError(w, "transcription", fault.Vendor(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/motifdex/analysis"
	"github.com/jsphweid/motifdex/constants"
	"github.com/jsphweid/motifdex/db"
	"github.com/jsphweid/motifdex/extract"
	"github.com/jsphweid/motifdex/highlight"
	"github.com/jsphweid/motifdex/model"
	"github.com/jsphweid/motifdex/note"
)

const (
	maxImageBytes   = 20 << 20
	maxAnalyzeBytes = 1 << 20
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the pattern finder over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		cobra.CheckErr(err)

		srv := &Server{Store: s}
		if key := constants.GetGeminiAPIKey(); key != "" {
			cli, err := extract.NewGeminiClient(cmd.Context(), key)
			cobra.CheckErr(err)
			geminiModel := constants.GetGeminiModel()
			srv.ImageExtractor = func(image []byte, mediaType string) extract.Extractor {
				return extract.NewGemini(cli, geminiModel, image, mediaType)
			}
		} else {
			log.Println("GEMINI_API_KEY not set, POST /analyze/image disabled")
		}

		addr := ":" + constants.GetPort()
		log.Printf("listening on %s", addr)
		log.Fatal(http.ListenAndServe(addr, NewRouter(srv)))
	},
}

type Server struct {
	Store db.Store
	// ImageExtractor is nil when no vision model is configured.
	ImageExtractor func(image []byte, mediaType string) extract.Extractor
	// Body limits in bytes, zero means the defaults.
	MaxAnalyzeBytes int64
	MaxImageBytes   int64
}

func orDefault(v, def int64) int64 {
	if v > 0 {
		return v
	}
	return def
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

func NewRouter(s *Server) http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(logRequests)
	router.HandleFunc("/analyze", s.HandleAnalyze).Methods("POST")
	router.HandleFunc("/analyze/image", s.HandleAnalyzeImage).Methods("POST")
	router.HandleFunc("/analyses/{id}", s.HandleGetAnalysis).Methods("GET")
	router.HandleFunc("/palette", HandlePalette).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(router)
}

func (s *Server) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, orDefault(s.MaxAnalyzeBytes, maxAnalyzeBytes))
	var input model.AnalyzeRequestBody
	if err := json.NewDecoder(body).Decode(&input); err != nil {
		if isTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
		return
	}

	ex := extract.Tokens{Notes: input.Notes, Figures: input.Figures}
	s.analyze(r.Context(), w, ex, "http")
}

func (s *Server) HandleAnalyzeImage(w http.ResponseWriter, r *http.Request) {
	if s.ImageExtractor == nil {
		writeError(w, http.StatusServiceUnavailable, "image extraction is not configured")
		return
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || !extract.IsSupportedMediaType(mediaType) {
		writeError(w, http.StatusUnsupportedMediaType, "expected an image or pdf body")
		return
	}

	image, err := io.ReadAll(http.MaxBytesReader(w, r.Body, orDefault(s.MaxImageBytes, maxImageBytes)))
	if isTooLarge(err) {
		writeError(w, http.StatusRequestEntityTooLarge, "image too large")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read image: "+err.Error())
		return
	}
	if len(image) == 0 {
		writeError(w, http.StatusBadRequest, "empty image")
		return
	}

	s.analyze(r.Context(), w, s.ImageExtractor(image, mediaType), "image")
}

func (s *Server) analyze(ctx context.Context, w http.ResponseWriter, ex extract.Extractor, source string) {
	a, err := analysis.Run(ctx, ex, source)
	if err != nil {
		var se *extract.ServiceError
		switch {
		case errors.Is(err, note.ErrInvalidNote), errors.Is(err, analysis.ErrSequenceTooLong):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &se):
			writeError(w, http.StatusUnprocessableEntity, se.Message)
		case errors.Is(err, extract.ErrUnsupportedMedia):
			writeError(w, http.StatusUnsupportedMediaType, err.Error())
		default:
			log.Printf("extraction failed: %v", err)
			writeError(w, http.StatusBadGateway, "extraction failed")
		}
		return
	}

	if err := s.Store.Put(ctx, a); err != nil {
		log.Printf("could not store analysis %s: %v", a.ID, err)
		writeError(w, http.StatusInternalServerError, "could not store analysis")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) HandleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	a, err := s.Store.Get(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no analysis with id "+id)
		return
	}
	if err != nil {
		log.Printf("could not load analysis %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "could not load analysis")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func HandlePalette(w http.ResponseWriter, r *http.Request) {
	res := make([]model.PaletteEntry, len(highlight.Palette))
	for i, c := range highlight.Palette {
		res[i] = model.PaletteEntry{Index: i, Name: c.Name}
	}
	writeJSON(w, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("could not encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

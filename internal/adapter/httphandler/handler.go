package httphandler

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"

	"github.com/niksmo/shop-feed/internal/core/port"
)

// GET v1/feeds/google (response 200 OK text/xml, 500 Internal server error)

type FeedHandler struct {
	generator port.FeedGenerator
}

func RegisterFeed(mux *http.ServeMux, generator port.FeedGenerator) {
	h := FeedHandler{generator}
	mux.HandleFunc("GET /v1/feeds/google", h.GetGoogleFeed)
}

// GetGoogleFeed generates the feed for each request. The generator's
// header sink lines become response headers, so the document is fully
// buffered before the first byte goes out.
func (h FeedHandler) GetGoogleFeed(w http.ResponseWriter, r *http.Request) {
	const op = "FeedHandler.GetGoogleFeed"
	log := slog.With("op", op)

	var header, data bytes.Buffer
	if err := h.generator.Generate(r.Context(), &header, &data); err != nil {
		http.Error(w, "failed to generate feed", http.StatusInternalServerError)
		log.Error("failed to generate feed", "err", err)
		return
	}

	applyHeaders(w, header.String())
	if _, err := w.Write(data.Bytes()); err != nil {
		log.Error("failed to write response body", "err", err)
		return
	}

	log.Info("feed served", "bytes", data.Len())
}

func applyHeaders(w http.ResponseWriter, headers string) {
	for _, line := range strings.Split(headers, "\n") {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		w.Header().Set(strings.TrimSpace(name), strings.TrimSpace(value))
	}
}

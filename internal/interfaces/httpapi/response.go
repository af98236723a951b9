package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-hub/internal/domain/prediction"
	"github.com/riskibarqy/football-hub/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	labelMatches      = "Failed to fetch matches"
	labelStandings    = "Failed to fetch standings"
	labelTeam         = "Failed to fetch team data"
	labelMatch        = "Failed to fetch match data"
	labelCompetitions = "Failed to fetch competitions"
	labelInternal     = "Something went wrong!"
)

const (
	contentTypeJSON     = "application/json"
	contentTypeHTML     = "text/html; charset=utf-8"
	contentTypeMarkdown = "text/markdown; charset=utf-8"
)

// errorEnvelope is the body of every failed JSON response.
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type mappedError struct {
	HTTPStatus int
	Label      string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

// writeRaw relays an upstream body unchanged.
func writeRaw(ctx context.Context, w http.ResponseWriter, status int, raw []byte) {
	_, span := startSpan(ctx, "httpapi.writeRaw")
	defer span.End()

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(raw)
}

// writeRelayError answers a failed proxy call: always 500 with the route's label.
func writeRelayError(ctx context.Context, w http.ResponseWriter, label string, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeRelayError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, errorEnvelope{
		Error:   label,
		Message: err.Error(),
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	writeJSON(ctx, w, mapped.HTTPStatus, errorEnvelope{
		Error:   mapped.Label,
		Message: err.Error(),
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, errorEnvelope{Error: labelInternal})
}

func mapError(ctx context.Context, err error) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, prediction.ErrInvalidSelection):
		return mappedError{HTTPStatus: http.StatusBadRequest, Label: "Invalid request"}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{HTTPStatus: http.StatusNotFound, Label: "Not found"}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{HTTPStatus: http.StatusServiceUnavailable, Label: "Upstream temporarily unavailable"}
	case errors.Is(err, usecase.ErrUpstream):
		return mappedError{HTTPStatus: http.StatusBadGateway, Label: "Upstream fetch failed"}
	default:
		return mappedError{HTTPStatus: http.StatusInternalServerError, Label: labelInternal}
	}
}

// writeFragment renders into a pooled buffer before any header is written.
// ?format=markdown converts the result.
func (h *Handler) writeFragment(ctx context.Context, w http.ResponseWriter, r *http.Request, status int, render func(io.Writer) error) {
	ctx, span := startSpan(ctx, "httpapi.writeFragment")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := render(buf); err != nil {
		h.logger.ErrorContext(ctx, "render fragment failed", "path", r.URL.Path, "error", err)
		writeInternalError(ctx, w)
		return
	}

	if wantsMarkdown(r) {
		out, err := h.renderer.Markdown(buf.String())
		if err != nil {
			h.logger.ErrorContext(ctx, "convert fragment failed", "path", r.URL.Path, "error", err)
			writeInternalError(ctx, w)
			return
		}
		w.Header().Set("Content-Type", contentTypeMarkdown)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, out)
		return
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

// writeViewError renders the error banner with a status derived from err.
func (h *Handler) writeViewError(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
	mapped := mapError(ctx, err)
	message := ""
	if mapped.HTTPStatus == http.StatusBadRequest {
		message = err.Error()
	}
	h.writeFragment(ctx, w, r, mapped.HTTPStatus, func(out io.Writer) error {
		return h.renderer.ErrorBanner(out, message)
	})
}

func wantsMarkdown(r *http.Request) bool {
	return r.URL.Query().Get("format") == "markdown"
}

package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
	"github.com/rocketscienceinc/sos-backend/internal/sos"
	"github.com/rocketscienceinc/sos-backend/internal/usecase"
)

const maxBodyBytes = 1 << 20

type Handlers interface {
	PingHandler(w http.ResponseWriter, r *http.Request)

	CreateSession(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
	DeleteSession(w http.ResponseWriter, r *http.Request)
	MakeMove(w http.ResponseWriter, r *http.Request)
	MakeComputerMove(w http.ResponseWriter, r *http.Request)
	Configure(w http.ResponseWriter, r *http.Request)
	ResetSession(w http.ResponseWriter, r *http.Request)

	DownloadSession(w http.ResponseWriter, r *http.Request)
	ExportReplay(w http.ResponseWriter, r *http.Request)
	UploadReplay(w http.ResponseWriter, r *http.Request)
	DownloadReplay(w http.ResponseWriter, r *http.Request)
	DeleteReplay(w http.ResponseWriter, r *http.Request)
	ImportReplay(w http.ResponseWriter, r *http.Request)
}

type gameUseCase interface {
	CreateSession(ctx context.Context, size int, mode entity.Mode) (*entity.Session, error)
	GetSession(ctx context.Context, id string) (*entity.Session, error)
	DeleteSession(ctx context.Context, id string) error
	MakeMove(ctx context.Context, id string, row, col int) (*entity.Session, error)
	MakeComputerMove(ctx context.Context, id string) (*entity.Session, error)
	Configure(ctx context.Context, id string, settings usecase.Settings) (*entity.Session, error)
	ResetSession(ctx context.Context, id string, size int) (*entity.Session, error)

	DownloadSession(ctx context.Context, id string) ([]byte, error)
	ExportReplay(ctx context.Context, sessionID string) (*entity.Replay, error)
	UploadReplay(ctx context.Context, text []byte) (*entity.Replay, error)
	DownloadReplay(ctx context.Context, replayID string) ([]byte, error)
	DeleteReplay(ctx context.Context, replayID string) error
	ImportReplay(ctx context.Context, replayID string) (*usecase.ReplayImport, error)
}

// Defaults apply when a request leaves size or mode out.
type Defaults struct {
	Size int
	Mode entity.Mode
}

type handlers struct {
	logger   *slog.Logger
	defaults Defaults
	uGame    gameUseCase
}

func NewHandlers(logger *slog.Logger, defaults Defaults, uGame gameUseCase) Handlers {
	return &handlers{
		logger:   logger.With("component", "rest"),
		defaults: defaults,
		uGame:    uGame,
	}
}

type createSessionRequest struct {
	Size *float64    `json:"size,omitempty"`
	Mode entity.Mode `json:"mode,omitempty"`
}

type moveRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type resetRequest struct {
	Size *float64 `json:"size,omitempty"`
}

type replaySummary struct {
	ID        string      `json:"id"`
	CreatedAt string      `json:"createdAt"`
	Size      int         `json:"size"`
	Mode      entity.Mode `json:"mode"`
	Moves     int         `json:"moves"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if !that.decodeOptional(w, r, &req) {
		return
	}

	size := that.defaults.Size
	if req.Size != nil {
		size = sos.ClampSize(*req.Size)
	}

	mode := that.defaults.Mode
	if req.Mode != "" {
		mode = req.Mode
	}

	if !mode.IsValid() {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("unknown mode %q", mode)})
		return
	}

	session, err := that.uGame.CreateSession(r.Context(), size, mode)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, session)
}

func (that *handlers) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := that.uGame.GetSession(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, session)
}

func (that *handlers) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := that.uGame.DeleteSession(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) MakeMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if !that.decode(w, r, &req) {
		return
	}

	if req.Row == nil || req.Col == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "row and col are required"})
		return
	}

	session, err := that.uGame.MakeMove(r.Context(), chi.URLParam(r, "sessionID"), *req.Row, *req.Col)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, session)
}

func (that *handlers) MakeComputerMove(w http.ResponseWriter, r *http.Request) {
	session, err := that.uGame.MakeComputerMove(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, session)
}

func (that *handlers) Configure(w http.ResponseWriter, r *http.Request) {
	var settings usecase.Settings
	if !that.decode(w, r, &settings) {
		return
	}

	session, err := that.uGame.Configure(r.Context(), chi.URLParam(r, "sessionID"), settings)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, session)
}

func (that *handlers) ResetSession(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if !that.decodeOptional(w, r, &req) {
		return
	}

	ctx := r.Context()
	id := chi.URLParam(r, "sessionID")

	var size int
	if req.Size != nil {
		size = sos.ClampSize(*req.Size)
	} else {
		current, err := that.uGame.GetSession(ctx, id)
		if err != nil {
			that.writeError(w, err)
			return
		}
		size = current.State.Size
	}

	session, err := that.uGame.ResetSession(ctx, id, size)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, session)
}

func (that *handlers) DownloadSession(w http.ResponseWriter, r *http.Request) {
	data, err := that.uGame.DownloadSession(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeAttachment(w, data)
}

func (that *handlers) ExportReplay(w http.ResponseWriter, r *http.Request) {
	stored, err := that.uGame.ExportReplay(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, summarize(stored))
}

func (that *handlers) UploadReplay(w http.ResponseWriter, r *http.Request) {
	text, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		that.writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "replay is too large"})
		return
	}

	stored, err := that.uGame.UploadReplay(r.Context(), text)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, summarize(stored))
}

func (that *handlers) DownloadReplay(w http.ResponseWriter, r *http.Request) {
	data, err := that.uGame.DownloadReplay(r.Context(), chi.URLParam(r, "replayID"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeAttachment(w, data)
}

func (that *handlers) DeleteReplay(w http.ResponseWriter, r *http.Request) {
	if err := that.uGame.DeleteReplay(r.Context(), chi.URLParam(r, "replayID")); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) ImportReplay(w http.ResponseWriter, r *http.Request) {
	imported, err := that.uGame.ImportReplay(r.Context(), chi.URLParam(r, "replayID"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	status := http.StatusCreated
	if imported.Session == nil {
		status = http.StatusOK
	}

	that.writeJSON(w, status, imported)
}

func summarize(stored *entity.Replay) replaySummary {
	return replaySummary{
		ID:        stored.ID,
		CreatedAt: stored.CreatedAt.Format(time.RFC3339),
		Size:      stored.Payload.Header.Size,
		Mode:      stored.Payload.Header.Mode,
		Moves:     len(stored.Payload.Moves),
	}
}

func (that *handlers) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}

	return true
}

// decodeOptional accepts an empty body.
func (that *handlers) decodeOptional(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}

	return true
}

func (that *handlers) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperror.ErrSessionNotFound), errors.Is(err, apperror.ErrReplayNotFound):
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, apperror.ErrInvalidMove),
		errors.Is(err, apperror.ErrMalformedReplay),
		errors.Is(err, apperror.ErrReplayIntegrity):
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		that.logger.Error("request failed", "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
	}
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *handlers) writeAttachment(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="sos-replay.json"`)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		that.logger.Error("failed to write replay", "error", err)
	}
}

package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/renato0307/punch/internal/domain"
)

// Timesheet is the backend the handlers serve
type Timesheet interface {
	ClockIn(ctx context.Context, userID string) (domain.TimeEntry, error)
	ClockOut(ctx context.Context, userID string) (domain.TimeEntry, error)
	Current(ctx context.Context, userID string) (*domain.TimeEntry, error)
	List(ctx context.Context, userID string, limit int) ([]domain.TimeEntry, error)
}

// EntryDTO is the wire form of a time entry
type EntryDTO struct {
	ClockIn  string  `json:"clockIn"`
	ClockOut *string `json:"clockOut,omitempty"`
	ID       string  `json:"id"`
	UserID   string  `json:"userId"`
}

// EntryResponse wraps a single entry. Entry is null when there is none.
type EntryResponse struct {
	Entry *EntryDTO `json:"entry"`
}

// EntriesResponse wraps a list of entries
type EntriesResponse struct {
	Entries []EntryDTO `json:"entries"`
}

func toEntryDTO(e domain.TimeEntry) EntryDTO {
	dto := EntryDTO{
		ClockIn: e.ClockIn.UTC().Format(time.RFC3339Nano),
		ID:      e.ID,
		UserID:  e.UserID,
	}
	if e.ClockOut != nil {
		clockOut := e.ClockOut.UTC().Format(time.RFC3339Nano)
		dto.ClockOut = &clockOut
	}
	return dto
}

type handlers struct {
	timesheet Timesheet
}

func (h *handlers) clockIn(w http.ResponseWriter, r *http.Request) {
	entry, err := h.timesheet.ClockIn(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	dto := toEntryDTO(entry)
	writeJSON(w, http.StatusOK, EntryResponse{Entry: &dto})
}

func (h *handlers) clockOut(w http.ResponseWriter, r *http.Request) {
	entry, err := h.timesheet.ClockOut(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	dto := toEntryDTO(entry)
	writeJSON(w, http.StatusOK, EntryResponse{Entry: &dto})
}

func (h *handlers) current(w http.ResponseWriter, r *http.Request) {
	entry, err := h.timesheet.Current(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var res EntryResponse
	if entry != nil {
		dto := toEntryDTO(*entry)
		res.Entry = &dto
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handlers) entries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeErrorMessage(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	list, err := h.timesheet.List(r.Context(), query.Get("userId"), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res := EntriesResponse{Entries: make([]EntryDTO, 0, len(list))}
	for _, e := range list {
		res.Entries = append(res.Entries, toEntryDTO(e))
	}
	writeJSON(w, http.StatusOK, res)
}

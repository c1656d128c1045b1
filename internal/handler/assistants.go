package handler

import (
	"net/http"
	"time"

	"github.com/joblink-dev/admin-console/backend/internal/console"
)

func (h *Handler) GetAssistants(w http.ResponseWriter, r *http.Request) {
	records, err := loadRecords(r.Context(), h.assistants, r)
	if err != nil {
		h.listLoadError(w, r, err)
		return
	}

	filters, accumulate := parseFilters(r)

	h.successResponse(w, r, "获取助理列表成功", map[string]any{
		"page":  derivePage(records, filters, accumulate),
		"stats": console.AssistantStats(records, time.Now()),
	})
}

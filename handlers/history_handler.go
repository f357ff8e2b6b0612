package handlers

import (
	"net/http"

	"github.com/Dosada05/league-console/services"
)

type HistoryHandler struct {
	historyService services.HistoryService
}

func NewHistoryHandler(historyService services.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

func (h *HistoryHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var input services.HistoricRecordInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	record, err := h.historyService.CreateRecord(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"record": record}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *HistoryHandler) GetRecordByID(w http.ResponseWriter, r *http.Request) {
	recordID, err := getIDFromURL(r, "recordID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	record, err := h.historyService.GetRecordByID(r.Context(), recordID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"record": record}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *HistoryHandler) GetAllRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.historyService.GetAllRecords(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"records": records}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *HistoryHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	recordID, err := getIDFromURL(r, "recordID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.HistoricRecordInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	record, err := h.historyService.UpdateRecord(r.Context(), recordID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"record": record}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *HistoryHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	recordID, err := getIDFromURL(r, "recordID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.historyService.DeleteRecord(r.Context(), recordID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

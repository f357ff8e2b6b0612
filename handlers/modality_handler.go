package handlers

import (
	"net/http"

	"github.com/Dosada05/league-console/services"
)

type ModalityHandler struct {
	modalityService services.ModalityService
}

func NewModalityHandler(modalityService services.ModalityService) *ModalityHandler {
	return &ModalityHandler{modalityService: modalityService}
}

func (h *ModalityHandler) CreateModality(w http.ResponseWriter, r *http.Request) {
	var input services.ModalityInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	modality, err := h.modalityService.CreateModality(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"modality": modality}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ModalityHandler) GetModalityByID(w http.ResponseWriter, r *http.Request) {
	modalityID, err := getIDFromURL(r, "modalityID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	modality, err := h.modalityService.GetModalityByID(r.Context(), modalityID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"modality": modality}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ModalityHandler) ListModalities(w http.ResponseWriter, r *http.Request) {
	sportID, err := intQuery(r, "sport_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	modalities, err := h.modalityService.ListModalities(r.Context(), sportID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"modalities": modalities}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ModalityHandler) UpdateModality(w http.ResponseWriter, r *http.Request) {
	modalityID, err := getIDFromURL(r, "modalityID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.ModalityInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	modality, err := h.modalityService.UpdateModality(r.Context(), modalityID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"modality": modality}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ModalityHandler) DeleteModality(w http.ResponseWriter, r *http.Request) {
	modalityID, err := getIDFromURL(r, "modalityID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.modalityService.DeleteModality(r.Context(), modalityID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

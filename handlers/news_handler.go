package handlers

import (
	"net/http"

	"github.com/Dosada05/league-console/services"
)

type NewsHandler struct {
	newsService services.NewsService
}

func NewNewsHandler(newsService services.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

func (h *NewsHandler) CreateNews(w http.ResponseWriter, r *http.Request) {
	var input services.NewsInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	news, err := h.newsService.CreateNews(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"news": news}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *NewsHandler) GetNewsByID(w http.ResponseWriter, r *http.Request) {
	newsID, err := getIDFromURL(r, "newsID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	news, err := h.newsService.GetNewsByID(r.Context(), newsID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"news": news}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *NewsHandler) GetAllNews(w http.ResponseWriter, r *http.Request) {
	items, err := h.newsService.GetAllNews(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"news": items}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *NewsHandler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	newsID, err := getIDFromURL(r, "newsID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.NewsInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	news, err := h.newsService.UpdateNews(r.Context(), newsID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"news": news}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *NewsHandler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	newsID, err := getIDFromURL(r, "newsID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.newsService.DeleteNews(r.Context(), newsID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *NewsHandler) UploadNewsCover(w http.ResponseWriter, r *http.Request) {
	newsID, err := getIDFromURL(r, "newsID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	file, contentType, err := readUploadedFile(r, "cover")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer file.Close()

	news, err := h.newsService.UploadNewsCover(r.Context(), newsID, file, contentType)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"news": news}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

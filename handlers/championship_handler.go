package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/league-console/brackets"
	"github.com/Dosada05/league-console/models"
	"github.com/Dosada05/league-console/services"
)

type ChampionshipHandler struct {
	championshipService services.ChampionshipService
}

func NewChampionshipHandler(championshipService services.ChampionshipService) *ChampionshipHandler {
	return &ChampionshipHandler{championshipService: championshipService}
}

func (h *ChampionshipHandler) CreateChampionship(w http.ResponseWriter, r *http.Request) {
	var input services.ChampionshipInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	championship, err := h.championshipService.CreateChampionship(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.respond(w, r, http.StatusCreated, championship)
}

func (h *ChampionshipHandler) GetChampionshipByID(w http.ResponseWriter, r *http.Request) {
	championshipID, err := getIDFromURL(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	championship, err := h.championshipService.GetChampionshipByID(r.Context(), championshipID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, championship)
}

func (h *ChampionshipHandler) ListChampionships(w http.ResponseWriter, r *http.Request) {
	modalityID, err := intQuery(r, "modality_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	championships, err := h.championshipService.ListChampionships(r.Context(), modalityID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"championships": championships}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ChampionshipHandler) UpdateChampionship(w http.ResponseWriter, r *http.Request) {
	championshipID, err := getIDFromURL(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.ChampionshipInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	championship, err := h.championshipService.UpdateChampionship(r.Context(), championshipID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, championship)
}

func (h *ChampionshipHandler) DeleteChampionship(w http.ResponseWriter, r *http.Request) {
	championshipID, err := getIDFromURL(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.championshipService.DeleteChampionship(r.Context(), championshipID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ChampionshipHandler) UploadChampionshipLogo(w http.ResponseWriter, r *http.Request) {
	championshipID, err := getIDFromURL(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	file, contentType, err := readUploadedFile(r, "logo")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer file.Close()

	championship, err := h.championshipService.UploadChampionshipLogo(r.Context(), championshipID, file, contentType)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, championship)
}

func (h *ChampionshipHandler) AddPhase(w http.ResponseWriter, r *http.Request) {
	championshipID, err := getIDFromURL(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Name string           `json:"name"`
		Type models.PhaseType `json:"type"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	championship, err := h.championshipService.AddPhase(r.Context(), championshipID, input.Name, input.Type)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, championship)
}

func (h *ChampionshipHandler) SetPhaseType(w http.ResponseWriter, r *http.Request) {
	championshipID, phaseIndex, ok := h.phaseParams(w, r)
	if !ok {
		return
	}

	var input struct {
		Type models.PhaseType `json:"type"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	championship, err := h.championshipService.SetPhaseType(r.Context(), championshipID, phaseIndex, input.Type)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, championship)
}

func (h *ChampionshipHandler) AddCriterion(w http.ResponseWriter, r *http.Request) {
	championshipID, err := getIDFromURL(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input models.Criterion
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	championship, err := h.championshipService.AddCriterion(r.Context(), championshipID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, championship)
}

func (h *ChampionshipHandler) RemoveCriterion(w http.ResponseWriter, r *http.Request) {
	championshipID, err := getIDFromURL(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	key := chi.URLParam(r, "criterionKey")

	championship, err := h.championshipService.RemoveCriterion(r.Context(), championshipID, key)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, championship)
}

func (h *ChampionshipHandler) AddRow(w http.ResponseWriter, r *http.Request) {
	championshipID, phaseIndex, ok := h.phaseParams(w, r)
	if !ok {
		return
	}

	championship, err := h.championshipService.AddRow(r.Context(), championshipID, phaseIndex)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, championship)
}

func (h *ChampionshipHandler) RemoveRow(w http.ResponseWriter, r *http.Request) {
	championshipID, phaseIndex, ok := h.phaseParams(w, r)
	if !ok {
		return
	}
	rowIndex, err := getIndexFromURL(r, "rowIndex")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	championship, err := h.championshipService.RemoveRow(r.Context(), championshipID, phaseIndex, rowIndex)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, championship)
}

func (h *ChampionshipHandler) SetCell(w http.ResponseWriter, r *http.Request) {
	championshipID, phaseIndex, ok := h.phaseParams(w, r)
	if !ok {
		return
	}
	rowIndex, err := getIndexFromURL(r, "rowIndex")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Key   string `json:"key"`
		Value any    `json:"value"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	championship, err := h.championshipService.SetCell(r.Context(), championshipID, phaseIndex, rowIndex, input.Key, input.Value)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, championship)
}

func (h *ChampionshipHandler) AddGroup(w http.ResponseWriter, r *http.Request) {
	championshipID, phaseIndex, ok := h.phaseParams(w, r)
	if !ok {
		return
	}

	var input struct {
		Name string `json:"name"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	championship, err := h.championshipService.AddGroup(r.Context(), championshipID, phaseIndex, input.Name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, championship)
}

func (h *ChampionshipHandler) SetGroupCell(w http.ResponseWriter, r *http.Request) {
	championshipID, phaseIndex, ok := h.phaseParams(w, r)
	if !ok {
		return
	}
	groupIndex, err := getIndexFromURL(r, "groupIndex")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	rowIndex, err := getIndexFromURL(r, "rowIndex")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Key   string `json:"key"`
		Value any    `json:"value"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	championship, err := h.championshipService.SetGroupCell(
		r.Context(), championshipID, phaseIndex, groupIndex, rowIndex, input.Key, input.Value)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, championship)
}

func (h *ChampionshipHandler) AddStage(w http.ResponseWriter, r *http.Request) {
	championshipID, phaseIndex, ok := h.phaseParams(w, r)
	if !ok {
		return
	}

	var input struct {
		Name string `json:"name"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	championship, err := h.championshipService.AddStage(r.Context(), championshipID, phaseIndex, input.Name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, championship)
}

func (h *ChampionshipHandler) AddMatchup(w http.ResponseWriter, r *http.Request) {
	championshipID, phaseIndex, ok := h.phaseParams(w, r)
	if !ok {
		return
	}
	stageIndex, err := getIndexFromURL(r, "stageIndex")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	championship, err := h.championshipService.AddMatchup(r.Context(), championshipID, phaseIndex, stageIndex)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, championship)
}

func (h *ChampionshipHandler) SelectRowTeam(w http.ResponseWriter, r *http.Request) {
	championshipID, phaseIndex, ok := h.phaseParams(w, r)
	if !ok {
		return
	}
	rowIndex, err := getIndexFromURL(r, "rowIndex")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		TeamID int `json:"team_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	championship, err := h.championshipService.SelectRowTeam(r.Context(), championshipID, phaseIndex, rowIndex, input.TeamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, championship)
}

func (h *ChampionshipHandler) SelectGroupRowTeam(w http.ResponseWriter, r *http.Request) {
	championshipID, phaseIndex, ok := h.phaseParams(w, r)
	if !ok {
		return
	}
	groupIndex, err := getIndexFromURL(r, "groupIndex")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	rowIndex, err := getIndexFromURL(r, "rowIndex")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		TeamID int `json:"team_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	championship, err := h.championshipService.SelectGroupRowTeam(
		r.Context(), championshipID, phaseIndex, groupIndex, rowIndex, input.TeamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, championship)
}

func (h *ChampionshipHandler) SelectMatchupTeam(w http.ResponseWriter, r *http.Request) {
	championshipID, phaseIndex, ok := h.phaseParams(w, r)
	if !ok {
		return
	}
	stageIndex, err := getIndexFromURL(r, "stageIndex")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	matchupIndex, err := getIndexFromURL(r, "matchupIndex")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Side   brackets.Side `json:"side"`
		TeamID int           `json:"team_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	championship, err := h.championshipService.SelectMatchupTeam(
		r.Context(), championshipID, phaseIndex, stageIndex, matchupIndex, input.Side, input.TeamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, championship)
}

func (h *ChampionshipHandler) SetRankings(w http.ResponseWriter, r *http.Request) {
	championshipID, err := getIDFromURL(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Rankings []models.RankingEntry `json:"rankings"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	championship, err := h.championshipService.SetRankings(r.Context(), championshipID, input.Rankings)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, championship)
}

func (h *ChampionshipHandler) phaseParams(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	championshipID, err := getIDFromURL(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return 0, 0, false
	}
	phaseIndex, err := getIndexFromURL(r, "phaseIndex")
	if err != nil {
		badRequestResponse(w, r, err)
		return 0, 0, false
	}
	return championshipID, phaseIndex, true
}

func (h *ChampionshipHandler) respond(w http.ResponseWriter, r *http.Request, status int, championship *models.Championship) {
	response := jsonResponse{"championship": championship}
	if err := writeJSON(w, status, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

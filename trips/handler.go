package trips

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"naviora/models"
	"naviora/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	assembler *Assembler
	store     Store
}

func NewHandler(assembler *Assembler, store Store) *Handler {
	return &Handler{assembler: assembler, store: store}
}

type tripRequest struct {
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

func fail(w http.ResponseWriter, code int, msg string) {
	utils.RespondWithJSON(w, code, utils.M{"success": false, "error": msg})
}

// POST /api/itinerary
func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Destination == "" || req.StartDate == "" || req.EndDate == "" {
		fail(w, http.StatusBadRequest, "Destination, startDate, and endDate are required")
		return
	}

	start, err := time.ParseInLocation(DateLayout, req.StartDate, time.UTC)
	if err != nil {
		fail(w, http.StatusBadRequest, "startDate must be a valid YYYY-MM-DD date")
		return
	}
	end, err := time.ParseInLocation(DateLayout, req.EndDate, time.UTC)
	if err != nil {
		fail(w, http.StatusBadRequest, "endDate must be a valid YYYY-MM-DD date")
		return
	}
	if start.After(end) {
		fail(w, http.StatusBadRequest, "startDate must not be after endDate")
		return
	}

	log.Printf("📅 Creating itinerary for %s from %s to %s", req.Destination, req.StartDate, req.EndDate)

	days := h.assembler.Build(r.Context(), req.Destination, start, end)

	itinerary := models.Itinerary{
		ItineraryID: utils.GetUUID(),
		Location:    req.Destination,
		Description: fmt.Sprintf("Day-wise trip from %s to %s", req.StartDate, req.EndDate),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	// Persistence must not change the response already prepared for the caller.
	if err := h.store.SaveItinerary(r.Context(), itinerary); err != nil {
		log.Printf("⚠️ Failed to persist itinerary: %v", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":     true,
		"destination": req.Destination,
		"startDate":   req.StartDate,
		"endDate":     req.EndDate,
		"days":        days,
	})
}

// GET /api/itinerary
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	itineraries, err := h.store.ListItineraries(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching itineraries")
		return
	}
	if itineraries == nil {
		itineraries = []models.Itinerary{}
	}

	utils.RespondWithJSON(w, http.StatusOK, itineraries)
}

package feedback

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"naviora/db"
	"naviora/models"
	"naviora/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// POST /feedback
func SubmitFeedback(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload models.Feedback
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"message": "Invalid JSON payload"})
		return
	}

	payload.Name = strings.TrimSpace(payload.Name)
	payload.Email = strings.TrimSpace(payload.Email)
	payload.Feedback = strings.TrimSpace(payload.Feedback)
	if payload.Feedback == "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"message": "Missing required field: feedback"})
		return
	}
	payload.Date = time.Now().UTC()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.FeedbackCollection.InsertOne(ctx, payload); err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"message": "Error saving feedback"})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Feedback submitted successfully!"})
}

// GET /api/feedbacks
func GetFeedbacks(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"date": -1})
	feedbacks, err := utils.FindAndDecode[models.Feedback](ctx, db.FeedbackCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"message": "Error fetching feedbacks"})
		return
	}
	if feedbacks == nil {
		feedbacks = []models.Feedback{}
	}

	utils.RespondWithJSON(w, http.StatusOK, feedbacks)
}

// DELETE /api/feedbacks/:id
func DeleteFeedback(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"message": "Invalid feedback id"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.FeedbackCollection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"message": "Error deleting feedback"})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Feedback deleted successfully!"})
}

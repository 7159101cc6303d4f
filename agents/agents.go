package agents

import (
	"context"
	"net/http"
	"time"

	"naviora/db"
	"naviora/models"
	"naviora/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var defaultAgents = []interface{}{
	models.Agent{Name: "Sky Gazer", Title: "Vistas & Scenic Views", Description: "Finds scenic viewpoints", Image: "skygazer.png"},
	models.Agent{Name: "Trailblazer", Title: "Adventure & Trekking", Description: "Explores trails", Image: "trailblazer.png"},
	models.Agent{Name: "Quartermaster", Title: "Culture & Food", Description: "Uncovers local heritage", Image: "quartermaster.png"},
	models.Agent{Name: "Orchestrator", Title: "Festivals & Events", Description: "Finds unique festivals", Image: "orchestrator.png"},
}

// GET /api/agents
func GetAgents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	agents, err := utils.FindAndDecode[models.Agent](ctx, db.AgentsCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching agents")
		return
	}
	if agents == nil {
		agents = []models.Agent{}
	}

	utils.RespondWithJSON(w, http.StatusOK, agents)
}

// GET /api/populateAgents
//
// One-time: reset the collection to the default personas.
func PopulateAgents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if _, err := db.AgentsCollection.DeleteMany(ctx, bson.M{}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if _, err := db.AgentsCollection.InsertMany(ctx, defaultAgents); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Agents populated successfully!"})
}

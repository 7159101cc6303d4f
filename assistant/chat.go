package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"naviora/utils"

	"github.com/julienschmidt/httprouter"
)

const chatPromptTemplate = `
You are a friendly travel assistant. Suggest 3 destinations based on this query: "%s".
For each destination, give a one-line reason and a recommended local event or activity.
`

// POST /api/chat
func Chat(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	reply, err := generateText(ctx, fmt.Sprintf(chatPromptTemplate, input.Message), 200)
	if err != nil {
		log.Printf("❌ AI Chat Error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "AI chat failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"reply": stripFences(reply)})
}

package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"naviora/utils"

	"github.com/julienschmidt/httprouter"
)

type Spot struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Dist   int    `json:"dist"`
	Reason string `json:"reason"`
}

const spotsPromptTemplate = `
You are a travel recommender. List popular tourist spots for the city "%s".
For each spot, provide:
  - name
  - a one-line reason to visit
  - kind (e.g., 'Historical Site', 'Museum', 'Park')
Output ONLY a JSON array of objects like:
[
  { "name": "Spot Name", "reason": "Reason to visit", "kind": "Type" }
]
`

// parseSpots decodes the model's reply. The model sometimes wraps the array
// in an object; scan it for the first array value. Decode failure yields an
// empty list, not an error.
func parseSpots(raw string) []Spot {
	raw = stripFences(raw)

	var spots []Spot
	if err := json.Unmarshal([]byte(raw), &spots); err == nil {
		return spots
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &wrapped); err != nil {
		log.Printf("Failed to parse AI JSON response: %v", err)
		return nil
	}
	for _, v := range wrapped {
		if err := json.Unmarshal(v, &spots); err == nil {
			return spots
		}
	}
	return nil
}

// GET /api/spots/:city
func GetSpots(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	city := ps.ByName("city")

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	reply, err := generateText(ctx, fmt.Sprintf(spotsPromptTemplate, city), 2000)
	if err != nil {
		log.Printf("❌ Tourist Spots Fetch Error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch tourist spots")
		return
	}

	spots := parseSpots(reply)
	enriched := make([]Spot, 0, len(spots))
	for _, spot := range spots {
		spot.Dist = rand.Intn(5000) + 500
		enriched = append(enriched, spot)
	}

	utils.RespondWithJSON(w, http.StatusOK, enriched)
}

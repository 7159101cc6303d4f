package events

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"naviora/utils"

	"github.com/julienschmidt/httprouter"
)

var searchURL = "https://www.eventbriteapi.com/v3/events/search/"

// GET /api/events?q=&location=
//
// Proxies the Eventbrite event search for the explore page.
func GetEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query().Get("q")
	if query == "" {
		query = "festival"
	}

	values := url.Values{}
	values.Set("q", query)
	if location := r.URL.Query().Get("location"); location != "" {
		values.Set("location.address", location)
	}
	values.Set("expand", "venue")
	values.Set("sort_by", "date")
	values.Set("start_date.range_start", time.Now().UTC().Format(time.RFC3339))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL+"?"+values.Encode(), nil)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Events fetch failed")
		return
	}
	req.Header.Set("Authorization", "Bearer "+os.Getenv("EVENTBRITE_TOKEN"))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("❌ Eventbrite Error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Events fetch failed")
		return
	}
	defer resp.Body.Close()

	var data json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		log.Printf("❌ Eventbrite Error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Events fetch failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, data)
}

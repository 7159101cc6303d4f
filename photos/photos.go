package photos

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

var searchURL = "https://api.unsplash.com/search/photos"

// GET /api/photos?q=&orientation=&count=
//
// Proxies the Unsplash photo search so the access key never reaches the
// browser. The upstream body is forwarded as-is.
func GetPhotos(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query().Get("q")
	if query == "" {
		query = "travel"
	}
	orientation := r.URL.Query().Get("orientation")
	if orientation == "" {
		orientation = "landscape"
	}
	count := r.URL.Query().Get("count")
	if count == "" {
		count = "1"
	}

	values := url.Values{}
	values.Set("page", "1")
	values.Set("per_page", count)
	values.Set("query", query)
	values.Set("orientation", orientation)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL+"?"+values.Encode(), nil)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Photo fetch failed")
		return
	}
	req.Header.Set("Authorization", "Client-ID "+os.Getenv("UNSPLASH_ACCESS_KEY"))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("❌ Unsplash Error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Photo fetch failed")
		return
	}
	defer resp.Body.Close()

	var data json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		log.Printf("❌ Unsplash Error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Photo fetch failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, data)
}

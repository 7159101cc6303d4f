package admin

import (
	"encoding/json"
	"net/http"

	"naviora/globals"
	"naviora/utils"

	"github.com/julienschmidt/httprouter"
)

// POST /admin/login
//
// The admin panel is gated by a single shared password.
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Invalid input"})
		return
	}

	if input.Password != globals.EnvOr("ADMIN_PASSWORD", "Admin123") {
		utils.RespondWithJSON(w, http.StatusUnauthorized, utils.M{"success": false, "message": "Invalid password"})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"naviora/db"
	"naviora/models"
	"naviora/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var tokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

type googleTokenInfo struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Subject  string `json:"sub"`
	Audience string `json:"aud"`
}

// verifyGoogleToken validates a Google ID token against the tokeninfo
// endpoint and checks the audience against our client id.
func verifyGoogleToken(ctx context.Context, credential string) (*googleTokenInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		tokenInfoURL+"?id_token="+url.QueryEscape(credential), nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token rejected: status %d", resp.StatusCode)
	}

	var info googleTokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	if clientID := os.Getenv("GOOGLE_CLIENT_ID"); clientID != "" && info.Audience != clientID {
		return nil, fmt.Errorf("token audience mismatch")
	}
	return &info, nil
}

// POST /google-login
func GoogleLogin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Credential string `json:"credential"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Credential == "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"msg": "Google login failed"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	info, err := verifyGoogleToken(ctx, input.Credential)
	if err != nil {
		log.Printf("Google token verification failed: %v", err)
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"msg": "Google login failed"})
		return
	}

	var user models.User
	err = db.UserCollection.FindOneAndUpdate(
		ctx,
		bson.M{"email": info.Email},
		bson.M{"$set": bson.M{
			"name":     info.Name,
			"googleId": info.Subject,
			"verified": true,
		}, "$setOnInsert": bson.M{"email": info.Email}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"msg": "Google login failed"})
		return
	}

	tokenString, err := issueToken(user)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"msg": "Failed to generate token"})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"msg":   "Google login successful",
		"token": tokenString,
		"user":  utils.M{"name": user.Name, "email": user.Email},
	})
}

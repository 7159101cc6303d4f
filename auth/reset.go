package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"naviora/db"
	"naviora/mailer"
	"naviora/rdx"
	"naviora/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = 1 * time.Hour

func generateResetToken() (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// POST /forgot-password
func ForgotPassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Email == "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"msg": "Email is required"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := db.UserCollection.FindOne(ctx, bson.M{"email": input.Email}).Err()
	if err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"msg": "User not found"})
		return
	}

	token, err := generateResetToken()
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"msg": "Error sending reset email"})
		return
	}
	// The token expires with the Redis key; no cleanup pass needed.
	if err := rdx.SetWithExpiry("reset:"+token, input.Email, resetTokenTTL); err != nil {
		log.Printf("Failed to cache reset token: %v", err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"msg": "Error sending reset email"})
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	resetURL := "http://localhost:" + port + "/reset-password.html?token=" + token

	if err := mailer.Send(input.Email, "Password Reset Request",
		"You requested a password reset. Click the link: "+resetURL); err != nil {
		log.Printf("Failed to send reset email: %v", err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"msg": "Error sending reset email"})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"msg": "Password reset link sent!"})
}

// POST /reset-password
func ResetPassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Token == "" || input.Password == "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"msg": "Invalid input"})
		return
	}

	email, err := rdx.RdxGet("reset:" + input.Token)
	if err != nil || email == "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"msg": "Invalid or expired token"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"msg": "Error resetting password"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	_, err = db.UserCollection.UpdateOne(
		ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"password": string(hashedPassword)}},
	)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"msg": "Error resetting password"})
		return
	}

	rdx.RdxDel("reset:" + input.Token)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"msg": "Password reset successful!"})
}

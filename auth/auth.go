package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"naviora/db"
	"naviora/globals"
	"naviora/mailer"
	"naviora/middleware"
	"naviora/models"
	"naviora/rdx"
	"naviora/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL = 1 * time.Hour
	codeTTL  = 10 * time.Minute
)

// POST /send-code
func SendCode(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Email == "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"msg": "Email is required"})
		return
	}

	code := utils.GenerateRandomDigitString(6)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Ensure a user record exists for the address so signup can complete later.
	_, err := db.UserCollection.UpdateOne(
		ctx,
		bson.M{"email": input.Email},
		bson.M{"$setOnInsert": bson.M{"email": input.Email, "verified": false}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"msg": "Error sending code"})
		return
	}

	if err := rdx.SetWithExpiry("verify:"+input.Email, code, codeTTL); err != nil {
		log.Printf("Failed to cache verification code: %v", err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"msg": "Error sending code"})
		return
	}

	if err := mailer.Send(input.Email, "Naviora Verification Code", "Your verification code is: "+code); err != nil {
		log.Printf("Failed to send verification email: %v", err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"msg": "Error sending code"})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"msg": "Verification code sent!"})
}

// POST /verify-code
func VerifyCode(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"msg": "Invalid input"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := db.UserCollection.FindOne(ctx, bson.M{"email": input.Email}).Err()
	if err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"msg": "Email not found"})
		return
	}

	storedCode, err := rdx.RdxGet("verify:" + input.Email)
	if err != nil || storedCode != input.Code {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"msg": "Invalid verification code"})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"msg": "Code verified!"})
}

// POST /signup
func Signup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Email == "" || input.Password == "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"msg": "Invalid input"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Signup completes a record created by the verification-code step.
	err := db.UserCollection.FindOne(ctx, bson.M{"email": input.Email}).Err()
	if err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"msg": "Email not found"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password for %s: %v", input.Email, err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"msg": "Failed to hash password"})
		return
	}

	_, err = db.UserCollection.UpdateOne(
		ctx,
		bson.M{"email": input.Email},
		bson.M{"$set": bson.M{
			"name":     input.Name,
			"password": string(hashedPassword),
			"verified": true,
		}},
	)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"msg": "Failed to create account"})
		return
	}

	rdx.RdxDel("verify:" + input.Email)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"msg": "Signup successful!"})
}

// POST /login
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"msg": "Invalid input"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var storedUser models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"email": input.Email}).Decode(&storedUser)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"msg": "User not found"})
		return
	} else if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"msg": "Database error"})
		return
	}

	if !storedUser.Verified {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"msg": "Email not verified"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedUser.Password), []byte(input.Password)); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"msg": "Invalid password"})
		return
	}

	tokenString, err := issueToken(storedUser)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"msg": "Failed to generate token"})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"msg":   "Login successful!",
		"token": tokenString,
		"user":  utils.M{"name": storedUser.Name, "email": storedUser.Email},
	})
}

func issueToken(user models.User) (string, error) {
	claims := &middleware.Claims{
		Name:   user.Name,
		Email:  user.Email,
		UserID: user.ID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

package auth

import (
	"context"
	"fmt"
	"time"

	DB "Backend-CrickZone/src/database"
	"Backend-CrickZone/src/models"
	"Backend-CrickZone/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const refreshTokenTTL = 7 * 24 * time.Hour

// TokenPair - access JWT + opaque refresh token
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Register creates a user with a bcrypt-hashed password
func Register(name, email, password, role string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if role == "" {
		role = models.RoleCustomer
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Password:  string(hash),
		Role:      role,
		CreatedAt: time.Now(),
	}
	if _, err := DB.UserCollection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.NewValidationError("email already registered", email)
		}
		return nil, models.NewPersistenceError(err)
	}
	return &user, nil
}

// Login checks credentials and issues a token pair. The refresh token is
// stored in Redis keyed by user id.
func Login(email, password string) (*models.User, *TokenPair, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil, fmt.Errorf("invalid email or password")
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, fmt.Errorf("invalid email or password")
	}

	access, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return nil, nil, err
	}
	refresh, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, nil, err
	}
	if err := utils.StoreRefreshToken(user.ID.Hex(), refresh, refreshTokenTTL); err != nil {
		return nil, nil, err
	}

	return &user, &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh exchanges a valid refresh token for a new token pair
func Refresh(userID, refreshToken string) (*TokenPair, error) {
	ok, err := utils.ValidateRefreshToken(userID, refreshToken)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("invalid refresh token")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id")
	}
	var user models.User
	if err := DB.UserCollection.FindOne(ctx, bson.M{"_id": uid}).Decode(&user); err != nil {
		return nil, fmt.Errorf("user not found")
	}

	access, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}
	if err := utils.StoreRefreshToken(userID, refresh, refreshTokenTTL); err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Logout revokes the stored refresh token
func Logout(userID string) error {
	return utils.RevokeRefreshToken(userID)
}

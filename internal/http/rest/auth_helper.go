package rest

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/campusconnect/campus_api/internal/model"
	"github.com/campusconnect/campus_api/internal/store"
	"github.com/campusconnect/campus_api/util"
	"github.com/campusconnect/campus_api/util/values"
	"github.com/golang-jwt/jwt"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type TokenClaims struct {
	UserID string `json:"sub"`
	Type   string `json:"typ"`
	Exp    int64  `json:"exp"`
}

// Simplified token creation
func (api *API) createToken(id string) (string, time.Time, error) {
	exp_time, err := time.ParseDuration(api.Config.JwtExpires)
	if err != nil {
		return "", time.Time{}, err
	}
	expiresAt := time.Now().Add(exp_time)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": id, // subject (user ID)
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
		"typ": "access",
	})

	tokenString, err := token.SignedString([]byte(api.Config.JwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

func (api *API) verifyToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(api.Config.JwtSecret), nil
	})

	if ve, ok := err.(*jwt.ValidationError); ok {
		if ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, fmt.Errorf("token expired")
		}
	}

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims")
	}

	tokenType, _ := claims["typ"].(string)
	if tokenType != "access" {
		return nil, fmt.Errorf("invalid token type")
	}

	userID, ok := claims["sub"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid user id")
	}

	return &TokenClaims{
		UserID: userID,
		Type:   tokenType,
		Exp:    int64(claims["exp"].(float64)),
	}, nil
}

func (api *API) RegisterUser(ctx context.Context, req model.RegisterRequest) (model.LoginResponse, string, string, error) {
	req.Email = strings.TrimSpace(req.Email)

	if err := util.ValidateStruct(req); err != nil {
		return model.LoginResponse{}, values.BadRequestBody, "Invalid registration details", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.LoginResponse{}, values.Error, "Failed to hash password", err
	}

	user := model.User{
		ID:           util.GenerateUUID(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(req.Email),
		PasswordHash: string(hash),
		Role:         values.RoleStudent,
		StudentID:    req.StudentID,
		Department:   req.Department,
		Year:         req.Year,
		RoomNumber:   req.RoomNumber,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := api.Store.Users().Create(ctx, user); err != nil {
		status, message := storeErrStatus(err)
		return model.LoginResponse{}, status, message, err
	}

	token, _, err := api.createToken(user.ID.String())
	if err != nil {
		return model.LoginResponse{}, values.Error, fmt.Sprintf("%s [CrTk]", values.SystemErr), err
	}

	return model.LoginResponse{User: user, Token: token}, values.Created, "User created successfully", nil
}

func (api *API) LoginUser(ctx context.Context, req model.LoginRequest) (model.LoginResponse, string, string, error) {
	req.Email = strings.TrimSpace(req.Email)

	if err := util.ValidEmail(req.Email); err != nil {
		return model.LoginResponse{}, values.NotAllowed, "Invalid email address provided", err
	}

	user, err := api.Store.Users().GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Same rejection as a bad password so callers cannot probe
			// for registered emails.
			return model.LoginResponse{}, values.NotAuthorised, "Invalid credentials", err
		}
		return model.LoginResponse{}, values.Error, "Error looking up user", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Println("failed login attempt for", user.Email)
		return model.LoginResponse{}, values.NotAuthorised, "Invalid credentials", err
	}

	token, _, err := api.createToken(user.ID.String())
	if err != nil {
		return model.LoginResponse{}, values.Error, fmt.Sprintf("%s [CrTk]", values.SystemErr), err
	}

	return model.LoginResponse{User: user, Token: token}, values.Success, "Login successful", nil
}

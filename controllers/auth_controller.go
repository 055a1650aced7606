package controllers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"

	"github.com/Huskyauto/mindfulbite-emotional-eating-support/config"
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/models"
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/utils"
)

// AuthController handles session issuance. There is no local password path;
// identities arrive signed from the companion app or via Google OAuth.
type AuthController struct {
	db *gorm.DB
}

// NewAuthController creates a new controller instance.
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

const sessionDuration = 72 * time.Hour

type identityLoginRequest struct {
	OpenID      string `json:"open_id" binding:"required"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	LoginMethod string `json:"login_method"`
	Nonce       string `json:"nonce" binding:"required"`
	AuthDate    int64  `json:"auth_date" binding:"required"`
	Signature   string `json:"signature" binding:"required"`
}

// Nonce issues a single-use login nonce for the signed identity flow.
func (a *AuthController) Nonce(ctx *gin.Context) {
	nonce := uuid.NewString()
	utils.SaveState(nonce, 10*time.Minute)
	utils.Success(ctx, gin.H{"nonce": nonce})
}

// Login verifies a signed identity payload from the companion app and issues
// a JWT, provisioning the user on first sight.
func (a *AuthController) Login(ctx *gin.Context) {
	var req identityLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}

	cfg := config.Get()
	if !verifyIdentitySignature(cfg.IdentitySharedSecret, req) {
		utils.Error(ctx, http.StatusUnauthorized, 40106, "invalid identity signature")
		return
	}

	authTime := time.Unix(req.AuthDate, 0)
	if time.Since(authTime) > 5*time.Minute {
		utils.Error(ctx, http.StatusUnauthorized, 40107, "login request expired")
		return
	}

	if !utils.ConsumeState(req.Nonce) {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "invalid or expired nonce")
		return
	}

	user, err := a.findOrCreateUser(req.OpenID, req.Name, req.Email, req.LoginMethod)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50001, "failed to persist user")
		return
	}

	a.issueSession(ctx, user)
}

// OAuthRedirect generates the Google authorization URL.
func (a *AuthController) OAuthRedirect(ctx *gin.Context) {
	cfg, err := a.googleOAuthConfig()
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40004, err.Error())
		return
	}

	state := uuid.NewString()
	utils.SaveState(state, 10*time.Minute)

	url := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
	utils.Success(ctx, gin.H{"authorization_url": url, "state": state})
}

// OAuthCallback exchanges the authorization code for a Google identity and
// issues a JWT.
func (a *AuthController) OAuthCallback(ctx *gin.Context) {
	code := ctx.Query("code")
	state := ctx.Query("state")

	if code == "" || state == "" {
		utils.Error(ctx, http.StatusBadRequest, 40005, "missing code or state")
		return
	}

	if !utils.ConsumeState(state) {
		utils.Error(ctx, http.StatusBadRequest, 40006, "invalid or expired state")
		return
	}

	cfg, err := a.googleOAuthConfig()
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40004, err.Error())
		return
	}

	token, err := cfg.Exchange(context.Background(), code)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40007, "failed to exchange code")
		return
	}

	info, err := fetchGoogleUser(token)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50005, err.Error())
		return
	}

	user, err := a.findOrCreateUser("google:"+info.ID, info.Name, info.Email, "google")
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50001, "failed to persist user")
		return
	}

	a.issueSession(ctx, user)
}

// Me returns the current authenticated user's profile and gamification state.
func (a *AuthController) Me(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var user models.User
	if err := a.db.First(&user, userID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40401, "user not found")
		return
	}

	utils.Success(ctx, userResponse(user))
}

// UpdateProfile lets the authenticated user change display name and email.
func (a *AuthController) UpdateProfile(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}

	var user models.User
	if err := a.db.First(&user, userID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40401, "user not found")
		return
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = utils.Sanitize(name)
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		user.Email = email
	}

	if err := a.db.Save(&user).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50002, "failed to update profile")
		return
	}

	utils.Success(ctx, userResponse(user))
}

// Logout invalidates the token by blacklisting it until expiration.
func (a *AuthController) Logout(ctx *gin.Context) {
	authHeader := ctx.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		utils.Error(ctx, http.StatusUnauthorized, 40102, "Please login")
		return
	}

	token := strings.TrimSpace(parts[1])
	claims, err := utils.ParseToken(token)
	if err != nil {
		utils.Error(ctx, http.StatusUnauthorized, 40105, "Please login")
		return
	}

	expiresAt := time.Now().Add(sessionDuration)
	if claims.RegisteredClaims.ExpiresAt != nil {
		expiresAt = claims.RegisteredClaims.ExpiresAt.Time
	}

	utils.BlacklistToken(token, expiresAt)
	utils.Success(ctx, gin.H{"message": "logged out"})
}

func (a *AuthController) issueSession(ctx *gin.Context, user *models.User) {
	token, err := utils.GenerateToken(user.ID, user.OpenID, user.Role, sessionDuration)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50004, "failed to generate token")
		return
	}

	utils.Success(ctx, gin.H{
		"token": token,
		"user":  userResponse(*user),
	})
}

func (a *AuthController) findOrCreateUser(openID, name, email, method string) (*models.User, error) {
	cfg := config.Get()
	role := "user"
	if cfg.OwnerOpenID != "" && openID == cfg.OwnerOpenID {
		role = "admin"
	}

	now := time.Now()
	var user models.User
	err := a.db.Where("open_id = ?", openID).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user = models.User{
			OpenID:       openID,
			Name:         utils.Sanitize(strings.TrimSpace(name)),
			Email:        strings.TrimSpace(email),
			LoginMethod:  method,
			Role:         role,
			Level:        1,
			LastSignedIn: &now,
		}
		if err := a.db.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}

	updates := map[string]interface{}{
		"last_signed_in": now,
		"role":           role,
	}
	if name = strings.TrimSpace(name); name != "" {
		updates["name"] = utils.Sanitize(name)
	}
	if email = strings.TrimSpace(email); email != "" {
		updates["email"] = email
	}
	if method != "" {
		updates["login_method"] = method
	}
	if err := a.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *AuthController) googleOAuthConfig() (*oauth2.Config, error) {
	cfg := config.Get()
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		return nil, fmt.Errorf("google oauth not configured")
	}
	return &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  fmt.Sprintf("%s/api/v1/auth/oauth/google/callback", cfg.OAuthRedirectBase),
		Scopes:       []string{"openid", "profile", "email"},
		Endpoint:     google.Endpoint,
	}, nil
}

type googleUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func fetchGoogleUser(token *oauth2.Token) (*googleUser, error) {
	req, _ := http.NewRequest("GET", "https://www.googleapis.com/oauth2/v2/userinfo", nil)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token.AccessToken))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google user info request failed: %s", resp.Status)
	}

	var payload googleUser
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// verifyIdentitySignature checks the HMAC-SHA256 over the sorted key=value
// lines of the login payload, keyed by the shared secret's SHA-256 digest.
func verifyIdentitySignature(secret string, req identityLoginRequest) bool {
	if secret == "" {
		return false
	}

	values := map[string]string{
		"auth_date": fmt.Sprintf("%d", req.AuthDate),
		"open_id":   req.OpenID,
		"nonce":     req.Nonce,
	}
	if req.Name != "" {
		values["name"] = req.Name
	}
	if req.Email != "" {
		values["email"] = req.Email
	}
	if req.LoginMethod != "" {
		values["login_method"] = req.LoginMethod
	}

	pairs := make([]string, 0, len(values))
	for k, v := range values {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(pairs)
	dataCheckString := strings.Join(pairs, "\n")

	digest := sha256.Sum256([]byte(secret))
	h := hmac.New(sha256.New, digest[:])
	h.Write([]byte(dataCheckString))
	expected := h.Sum(nil)
	provided, err := hex.DecodeString(strings.TrimSpace(req.Signature))
	if err != nil {
		return false
	}
	if len(provided) != len(expected) {
		return false
	}
	return subtle.ConstantTimeCompare(expected, provided) == 1
}

func userResponse(user models.User) gin.H {
	return gin.H{
		"id":                 user.ID,
		"open_id":            user.OpenID,
		"name":               user.Name,
		"email":              user.Email,
		"login_method":       user.LoginMethod,
		"role":               user.Role,
		"points":             user.Points,
		"level":              user.Level,
		"current_streak":     user.CurrentStreak,
		"longest_streak":     user.LongestStreak,
		"last_check_in_date": user.LastCheckInDate,
		"last_signed_in":     user.LastSignedIn,
		"created_at":         user.CreatedAt,
	}
}

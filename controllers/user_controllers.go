package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Ahnaf-17/hangoutz-restaurant-plus/models"
	"github.com/Ahnaf-17/hangoutz-restaurant-plus/policy"
	"github.com/Ahnaf-17/hangoutz-restaurant-plus/utils"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// isDuplicateKey recognizes a unique-constraint violation. SQLite and MySQL
// spell it differently and neither driver translates it without opt-in, so
// the message is matched as well.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry")
}

func userPayload(u *models.User) gin.H {
	return gin.H{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	}
}

// Signup creates a customer account. The role is never taken from the
// request; only an admin can promote a user afterwards.
func (uc *UserController) Signup(c *gin.Context) {
	type request struct {
		Name     string `json:"name" binding:"required,min=2"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("%s", err.Error()))
		return
	}

	// Emails are unique case-insensitively, so normalize before storing.
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    email,
		Password: string(hashed),
		Role:     string(policy.RoleCustomer),
	}

	// The unique index is the authority on duplicates. A lookup before the
	// insert would still race a concurrent signup, so let the constraint
	// decide and translate its violation into a conflict.
	if err := uc.DB.Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			utils.RespondError(c, utils.ConflictError("email already registered"))
			return
		}
		utils.RespondError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", user.Email, user.Role)

	utils.RespondJSON(c, http.StatusCreated, "User registered", gin.H{
		"token": token,
		"user":  userPayload(&user),
	})
}

// Login -> return JWT
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ValidationError("%s", err.Error()))
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var user models.User
	if err := uc.DB.Where("email = ?", email).First(&user).Error; err != nil {
		// Same message for unknown email and wrong password.
		c.JSON(http.StatusUnauthorized, utils.JSONResponse{
			Status:  false,
			Message: "invalid credentials",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, utils.JSONResponse{
			Status:  false,
			Message: "invalid credentials",
		})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  userPayload(&user),
	})
}

// GetProfile returns the caller's own record, credential hash excluded.
func (uc *UserController) GetProfile(c *gin.Context) {
	actorID, _, ok := currentActor(c)
	if !ok {
		utils.RespondError(c, utils.ForbiddenError("no actor in context"))
		return
	}

	var user models.User
	if err := uc.DB.First(&user, actorID).Error; err != nil {
		utils.RespondError(c, utils.NotFoundError("user not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile data retrieved successfully", userPayload(&user))
}

// GetAllUsers -> staff/admin listing.
func (uc *UserController) GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := uc.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All users", users)
}

// UpdateRole assigns a new role to a user. Admin only; the updated row is
// re-read after the mutation so the caller always sees the persisted state.
func (uc *UserController) UpdateRole(c *gin.Context) {
	_, actorRole, ok := currentActor(c)
	if !ok || !policy.CanAssignRole(actorRole) {
		utils.RespondError(c, utils.ForbiddenError("admin access required"))
		return
	}

	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		utils.RespondError(c, utils.ValidationError("invalid user id"))
		return
	}

	var input struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ValidationError("%s", err.Error()))
		return
	}

	newRole, ok := policy.ParseRole(input.Role)
	if !ok {
		utils.RespondError(c, utils.ValidationError("invalid role '%s'", input.Role))
		return
	}

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		utils.RespondError(c, utils.NotFoundError("user not found"))
		return
	}

	if err := uc.DB.Model(&user).Update("role", string(newRole)).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	// Read back the post-mutation state instead of trusting the in-memory
	// struct.
	var updated models.User
	if err := uc.DB.First(&updated, user.ID).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Role of user %d changed to %s", updated.ID, updated.Role)

	utils.RespondJSON(c, http.StatusOK, "Role updated", userPayload(&updated))
}

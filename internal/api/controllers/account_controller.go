package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"golfpoi/internal/models/request_models"
	"golfpoi/internal/models/response_models"
	"golfpoi/internal/services"
	"golfpoi/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.CreateAccount(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Account created successfully")
}

func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(req, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c,
		response_models.AccountLoginResponse{Token: token},
		"Login successful")
}

// ManageUsers lists non-admin accounts; the service enforces the admin
// gate before disclosing anything.
func (a *AccountController) ManageUsers(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	users, err := a.accountService.ListRegularUsers(c.Request.Context(), actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Users fetched successfully")
}

package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"golfpoi/internal/models/db_models"
	"golfpoi/internal/models/request_models"
	"golfpoi/internal/models/response_models"
	"golfpoi/internal/repositories"
	"golfpoi/pkg/utils"
)

type AccountServiceInterface interface {
	Login(request request_models.LoginRequest, ctx context.Context) (string, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error

	// RequireAdmin resolves the acting identity and rejects it unless the
	// account carries the admin flag. An unknown identity is rejected the
	// same way, without detail.
	RequireAdmin(ctx context.Context, actorID uuid.UUID) (*db_models.Account, error)

	// ListRegularUsers returns every non-admin account, admin-gated.
	ListRegularUsers(ctx context.Context, actorID uuid.UUID) ([]response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

func (a *AccountService) Login(request request_models.LoginRequest, ctx context.Context) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		log.Printf("Error fetching account: %v", err)
		return "", utils.ErrDatabaseError
	}

	if account == nil {
		return "", utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) RequireAdmin(ctx context.Context, actorID uuid.UUID) (*db_models.Account, error) {
	account, err := a.accountRepo.FindByID(ctx, actorID)
	if err != nil {
		log.Printf("Error resolving actor %s: %v", actorID, err)
		return nil, utils.ErrDatabaseError
	}

	if account == nil || !account.AdminUser {
		return nil, utils.ErrUnauthorized
	}

	return account, nil
}

func (a *AccountService) ListRegularUsers(ctx context.Context, actorID uuid.UUID) ([]response_models.AccountResponse, error) {
	if _, err := a.RequireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	accounts, err := a.accountRepo.List(ctx)
	if err != nil {
		log.Printf("Error listing accounts: %v", err)
		return nil, utils.ErrDatabaseError
	}

	users := make([]response_models.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		if account.AdminUser {
			continue
		}
		users = append(users, response_models.AccountResponse{
			ID:    account.ID.String(),
			Name:  account.Name,
			Email: account.Email,
		})
	}

	return users, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/dmitrijs2005/unigate/internal/common"
	"github.com/dmitrijs2005/unigate/internal/server/models"
	"github.com/google/uuid"
)

// BootstrapSystemAdmin creates the first system admin from configuration.
// It does nothing when an account with that username already exists, and
// reports whether an account was created.
func (s *ProvisioningService) BootstrapSystemAdmin(ctx context.Context, username string, password []byte, address string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(password) == 0 {
		return false, nil
	}
	if _, err := mail.ParseAddress(address); err != nil {
		return false, fmt.Errorf("%w: bootstrap admin address is invalid", common.ErrValidation)
	}

	repo := s.repomanager.Accounts(s.db)
	_, err := repo.FindForLogin(ctx, "", username)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, common.ErrorNotFound):
		return false, err
	}

	verifier, err := s.hasher.Hash(password)
	if err != nil {
		return false, err
	}
	_, err = repo.Create(ctx, &models.Account{
		ID:             uuid.NewString(),
		Role:           models.RoleSystemAdmin,
		Username:       username,
		DisplayName:    username,
		ContactAddress: address,
		Verifier:       verifier,
		DeliveryStatus: models.DeliveryDelivered,
	})
	if errors.Is(err, common.ErrUsernameTaken) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	s.log.Info(ctx, "system admin bootstrapped", "username", username)
	return true, nil
}

package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// demoVerificationCode is the fixed code accepted by the demo verification
// flows.
const demoVerificationCode = "123456"

type VerifyEmailCommand struct {
	Email string
	Code  string
}

type VerifyEmailUseCase struct {
	logger logger.Interface
}

func NewVerifyEmailUseCase(logger logger.Interface) *VerifyEmailUseCase {
	return &VerifyEmailUseCase{logger: logger}
}

func (uc *VerifyEmailUseCase) Execute(ctx context.Context, cmd VerifyEmailCommand) error {
	if cmd.Code != demoVerificationCode {
		return errors.NewValidationError("invalid verification code")
	}
	uc.logger.Infow("email verified", "email", cmd.Email)
	return nil
}

type ForgotPasswordCommand struct {
	Email string
}

// ForgotPasswordUseCase sends the reset code. The response never reveals
// whether the address exists.
type ForgotPasswordUseCase struct {
	userRepo user.Repository
	mailer   EmailSender
	logger   logger.Interface
}

func NewForgotPasswordUseCase(
	userRepo user.Repository,
	mailer EmailSender,
	logger logger.Interface,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo: userRepo,
		mailer:   mailer,
		logger:   logger,
	}
}

func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, cmd ForgotPasswordCommand) error {
	if cmd.Email == "" {
		return errors.NewValidationError("email is required")
	}

	account, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Infow("password reset requested for unknown email", "email", cmd.Email)
			return nil
		}
		return err
	}

	if uc.mailer != nil {
		body := fmt.Sprintf("Hello %s,\n\nYour password reset code is %s.\n", account.FullName(), demoVerificationCode)
		if err := uc.mailer.Send(ctx, account.Email(), "Password Reset Code", body); err != nil {
			uc.logger.Warnw("failed to send password reset email", "error", err, "email", cmd.Email)
		}
	}

	return nil
}

type VerifyResetCodeCommand struct {
	Email string
	Code  string
}

type VerifyResetCodeUseCase struct {
	logger logger.Interface
}

func NewVerifyResetCodeUseCase(logger logger.Interface) *VerifyResetCodeUseCase {
	return &VerifyResetCodeUseCase{logger: logger}
}

func (uc *VerifyResetCodeUseCase) Execute(ctx context.Context, cmd VerifyResetCodeCommand) error {
	if cmd.Code != demoVerificationCode {
		return errors.NewValidationError("invalid reset code")
	}
	return nil
}

type ResetPasswordCommand struct {
	Email       string
	Code        string
	NewPassword string
}

type ResetPasswordUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewResetPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
	if cmd.Code != demoVerificationCode {
		return errors.NewValidationError("invalid reset code")
	}
	if len(cmd.NewPassword) < 5 {
		return errors.NewValidationError("password must be at least 5 characters")
	}

	account, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		return err
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash new password", "error", err)
		return errors.NewInternalError("failed to hash password")
	}
	if err := account.ChangePasswordHash(hash); err != nil {
		return errors.NewInternalError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, account); err != nil {
		uc.logger.Errorw("failed to persist password reset", "error", err, "user_id", account.ID())
		return err
	}

	uc.logger.Infow("password reset completed", "user_id", account.ID())
	return nil
}

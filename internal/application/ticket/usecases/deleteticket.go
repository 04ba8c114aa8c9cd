package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	Code string
}

type DeleteTicketResult struct {
	Code string
}

// DeleteTicketUseCase removes a ticket and its dependent comments and
// rating. With a transaction manager present the cascade commits or rolls
// back as one unit.
type DeleteTicketUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	ratingRepo  ticket.RatingRepository
	tx          TransactionManager
	logger      logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	ratingRepo ticket.RatingRepository,
	tx TransactionManager,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		ratingRepo:  ratingRepo,
		tx:          tx,
		logger:      logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	uc.logger.Infow("executing delete ticket use case", "code", cmd.Code)

	if len(cmd.Code) == 0 {
		return nil, errors.NewValidationError("ticket code is required")
	}

	if _, err := uc.ticketRepo.GetByCode(ctx, cmd.Code); err != nil {
		return nil, err
	}

	cascade := func(ctx context.Context) error {
		if err := uc.commentRepo.DeleteByTicketCode(ctx, cmd.Code); err != nil {
			uc.logger.Errorw("failed to delete ticket comments", "error", err, "code", cmd.Code)
			return err
		}
		if err := uc.ratingRepo.DeleteByTicketCode(ctx, cmd.Code); err != nil {
			uc.logger.Errorw("failed to delete ticket rating", "error", err, "code", cmd.Code)
			return err
		}
		if err := uc.ticketRepo.Delete(ctx, cmd.Code); err != nil {
			uc.logger.Errorw("failed to delete ticket", "error", err, "code", cmd.Code)
			return err
		}
		return nil
	}

	var err error
	if uc.tx != nil {
		err = uc.tx.RunInTransaction(ctx, cascade)
	} else {
		err = cascade(ctx)
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket deleted successfully", "code", cmd.Code)

	return &DeleteTicketResult{Code: cmd.Code}, nil
}

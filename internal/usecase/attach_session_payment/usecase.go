package attach_session_payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	sessionRequestRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/sessionrequest"
)

// UseCase use case для прикрепления чека оплаты к заявке
type UseCase struct {
	requestRepo RequestRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(requestRepo RequestRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		requestRepo: requestRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute прикрепляет чек; допускается в любом статусе, кроме booked
// Повторный вызов заменяет ссылку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AttachSessionPayment: actor=%d, request=%d", req.ActorUserID, req.RequestID)

	// 1. Валидация входных данных
	proof := strings.TrimSpace(req.PaymentProofURL)
	if req.ActorUserID <= 0 || req.RequestID <= 0 {
		return nil, fmt.Errorf("%w: actor and request are required", ErrInvalidInput)
	}
	if proof == "" {
		return nil, fmt.Errorf("%w: payment proof url is required", ErrInvalidInput)
	}

	var status domain.SessionRequestStatus

	// 2. Проверки и запись
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		sessionReq, err := uc.requestRepo.GetByID(txCtx, req.RequestID)
		if err != nil {
			if errors.Is(err, sessionRequestRepo.ErrRequestNotFound) {
				return ErrRequestNotFound
			}
			return fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
		}

		if sessionReq.UserID != req.ActorUserID {
			return ErrForbidden
		}

		if !sessionReq.CanAttachPaymentProof() {
			return ErrInvalidState
		}

		if err := uc.requestRepo.AttachPaymentProof(txCtx, sessionReq.ID, proof); err != nil {
			if errors.Is(err, sessionRequestRepo.ErrStatusChanged) {
				return ErrInvalidState
			}
			return fmt.Errorf("%w: failed to attach payment proof: %v", ErrInternal, err)
		}

		status = sessionReq.Status
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("AttachSessionPayment: request=%d: %v", req.RequestID, err)
		} else {
			uc.logger.Warn("AttachSessionPayment: request=%d rejected: %v", req.RequestID, err)
		}
		return nil, err
	}

	uc.logger.Info("AttachSessionPayment: payment proof attached to request=%d (status %s)", req.RequestID, status)

	return &Response{
		ID:              req.RequestID,
		Status:          status,
		PaymentProofURL: proof,
	}, nil
}

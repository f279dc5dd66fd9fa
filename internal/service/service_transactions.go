package service

import (
	"context"

	"github.com/Cleber-Canto/transactions-api/internal/logger"
	"github.com/Cleber-Canto/transactions-api/internal/store"
	"github.com/Cleber-Canto/transactions-api/models"
)

type transactionService struct {
	transactionRepository store.TransactionRepository
	idGenerator           IDGenerator

	logger *logger.Logger
}

func NewTransactionService(transactionRepository store.TransactionRepository, idGenerator IDGenerator, logger *logger.Logger) TransactionService {
	return &transactionService{
		transactionRepository: transactionRepository,
		idGenerator:           idGenerator,
		logger:                logger,
	}
}

func (s *transactionService) List(ctx context.Context, sessionID string) ([]models.Transaction, error) {
	return s.transactionRepository.List(ctx, sessionID)
}

func (s *transactionService) GetOne(ctx context.Context, id, sessionID string) (models.Transaction, error) {
	return s.transactionRepository.GetOne(ctx, id, sessionID)
}

func (s *transactionService) Summarize(ctx context.Context, sessionID string) (models.Summary, error) {
	return s.transactionRepository.Summarize(ctx, sessionID)
}

// Create assigns a fresh transaction id, resolves or mints the session
// identifier, and stores the sign-adjusted amount. The session token is an
// opaque correlation value: an already-present sessionID is reused
// unconditionally, with no registry lookup.
func (s *transactionService) Create(ctx context.Context, payload models.TransactionPayload, sessionID string) (models.Transaction, bool, error) {
	log := logger.FromContext(ctx)

	if payload.Title == nil || payload.Amount == nil || payload.Type == nil {
		return models.Transaction{}, false, ErrInvalidDataProvided
	}

	minted := false
	if sessionID == "" {
		sessionID = s.idGenerator.Generate()
		minted = true
		log.Debug().Str("session_id", sessionID).Msg("minted new session")
	}

	transaction := models.Transaction{
		ID:        s.idGenerator.Generate(),
		Title:     *payload.Title,
		Amount:    signAdjust(*payload.Amount, *payload.Type),
		SessionID: sessionID,
	}

	created, err := s.transactionRepository.Create(ctx, transaction)
	if err != nil {
		return models.Transaction{}, false, err
	}

	return created, minted, nil
}

func (s *transactionService) Update(ctx context.Context, id, sessionID string, payload models.TransactionPayload) error {
	if payload.Title == nil || payload.Amount == nil || payload.Type == nil {
		return ErrInvalidDataProvided
	}

	return s.transactionRepository.Update(ctx, id, sessionID, *payload.Title, signAdjust(*payload.Amount, *payload.Type))
}

func (s *transactionService) Delete(ctx context.Context, id, sessionID string) error {
	return s.transactionRepository.Delete(ctx, id, sessionID)
}

// signAdjust collapses the transaction type into the arithmetic sign of the
// stored amount: credits stay positive, debits are negated. The transform is
// lossy for zero amounts.
func signAdjust(amount float64, transactionType string) float64 {
	if transactionType == models.TypeCredit {
		return amount
	}
	return -amount
}

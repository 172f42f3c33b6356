package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/foodie-cart/internal/domain"
	"github.com/DRSN-tech/foodie-cart/pkg/e"
	"github.com/DRSN-tech/foodie-cart/pkg/logger"
)

// ContactUseCase дописывает сообщения обратной связи в журнал "contactMessages".
type ContactUseCase struct {
	store  PersistentStore
	logger logger.Logger
	now    func() time.Time
}

func NewContactUC(store PersistentStore, logger logger.Logger) *ContactUseCase {
	return &ContactUseCase{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (c *ContactUseCase) Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error) {
	const op = "ContactUseCase.Submit"

	msg := domain.NewContactMessage(name, email, message, c.now())

	var records []ContactMessageRecord
	if !c.store.Read(ctx, ContactMessagesKey, &records) {
		records = nil
	}
	records = append(records, ToContactMessageRecord(msg))

	if err := c.store.Write(ctx, ContactMessagesKey, records); err != nil {
		return nil, e.Wrap(op, err)
	}

	return msg, nil
}

func (c *ContactUseCase) Messages(ctx context.Context) []domain.ContactMessage {
	var records []ContactMessageRecord
	if !c.store.Read(ctx, ContactMessagesKey, &records) {
		return []domain.ContactMessage{}
	}

	res := make([]domain.ContactMessage, 0, len(records))
	for _, r := range records {
		res = append(res, ToContactMessage(r))
	}

	return res
}

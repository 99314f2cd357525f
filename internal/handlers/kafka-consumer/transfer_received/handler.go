package transfer_received

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fulfillment/internal/pkg/apperr"
	"fulfillment/pkg/logger"

	"github.com/IBM/sarama"
)

type Handler struct {
	reconciler               Reconciler
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, reconciler Reconciler, timeout time.Duration) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "transfer.received"),
	)

	return &Handler{
		reconciler:               reconciler,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("transfer.received: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("transfer.received: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно уведомление о переводе.
// Возвращает true, если сообщение не помечено и ConsumeClaim нужно прервать:
// после перезапуска сессии оно придет снова. Повтор безопасен, подтверждение идемпотентно.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event transferEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("transfer.received handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order_ref", event.OrderRef),
		logger.NewField("txn_id", event.TxnID),
		logger.NewField("offset", message.Offset),
	)

	callback, err := event.toDomain()
	if err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Error("transfer.received handler received bad amount")
		sess.MarkMessage(message, "")
		return false
	}

	result, err := h.reconciler.ConfirmFromCallback(ctx, callback)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("transfer.received handler context cancelled, message will be reprocessed")
			return true

		case apperr.KindOf(err) == apperr.KindInternal || apperr.IsExternalUnavailable(err):
			msgLog.With(
				logger.NewField("error", err),
			).Error("transfer.received handler failed, message will be reprocessed")
			return true

		default:
			// Validation, NotFound, Conflict: повтор ничего не изменит
			msgLog.With(
				logger.NewField("error", err),
			).Warn("transfer.received handler rejected callback")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("already_paid", result.AlreadyPaid),
	).Info("transfer.received: processed")

	sess.MarkMessage(message, "")
	return false
}

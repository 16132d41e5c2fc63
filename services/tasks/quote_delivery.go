package tasks

import (
	"dispatchly/models"
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeQuoteDeliver = "quote:deliver"

func NewQuoteDeliveryTask(payload models.QuoteDeliveryPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeQuoteDeliver, b)
	opts := []asynq.Option{asynq.MaxRetry(5), asynq.Queue("default")}

	return task, opts, nil
}

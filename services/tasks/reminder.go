package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"groomer/config"
	"groomer/models"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// NewReminderTask builds an asynq task that fires at the given time.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReminderSend, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	return task, opts, nil
}

// ReminderQueue enqueues appointment reminders onto the Redis-backed queue.
// It satisfies booking.ReminderScheduler.
type ReminderQueue struct {
	client *asynq.Client
}

// NewReminderQueue connects an asynq client to the reminder queue DB.
func NewReminderQueue() *ReminderQueue {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &ReminderQueue{client: client}
}

// ScheduleReminder queues the payload for delivery at fireAt.
func (q *ReminderQueue) ScheduleReminder(payload models.ReminderPayload, fireAt time.Time) error {
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := q.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (q *ReminderQueue) Close() error {
	return q.client.Close()
}

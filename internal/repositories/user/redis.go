package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/thirstylabs/chugline/internal/models"
)

const (
	// Key layout mirrors the public collection path
	// artifacts/{appId}/public/data/drinkingGameUsers, one document per
	// user id plus a set index of all ids and a change-feed channel.
	userKeyFormat       = "artifacts:%s:public:data:drinkingGameUsers:%s"
	userIndexKeyFormat  = "artifacts:%s:public:data:drinkingGameUsers_index"
	eventsChannelFormat = "artifacts:%s:public:data:drinkingGameUsers_events"
)

// ErrUserNotFound is returned when a user record is not found
var ErrUserNotFound = errors.New("user record not found")

// Config holds configuration for the Redis user repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// AppID namespaces the collection so multiple deployments can share
	// one Redis instance
	AppID string
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	appID  string
}

// NewRedis creates a new Redis-backed user repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.AppID == "" {
		return nil, errors.New("app ID cannot be empty")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		appID:  cfg.AppID,
	}, nil
}

func (r *redisRepository) userKey(userID string) string {
	return fmt.Sprintf(userKeyFormat, r.appID, userID)
}

func (r *redisRepository) indexKey() string {
	return fmt.Sprintf(userIndexKeyFormat, r.appID)
}

func (r *redisRepository) eventsChannel() string {
	return fmt.Sprintf(eventsChannelFormat, r.appID)
}

// SaveUser persists a user record to Redis and publishes a change event
// for watchers.
func (r *redisRepository) SaveUser(ctx context.Context, input *SaveUserInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record

	if record.UserID == "" {
		return errors.New("user ID cannot be empty")
	}

	// Marshal the record to JSON
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal user record: %w", err)
	}

	// Write the document and maintain the collection index atomically
	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.userKey(record.UserID), recordJSON, 0)
	pipe.SAdd(ctx, r.indexKey(), record.UserID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save user record: %w", err)
	}

	// Notify watchers. A missed publish only delays the next snapshot, so
	// a failure here is not a save failure.
	r.client.Publish(ctx, r.eventsChannel(), record.UserID)

	return nil
}

// GetUser retrieves a user record by ID from Redis
func (r *redisRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.UserRecord, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	recordJSON, err := r.client.Get(ctx, r.userKey(input.UserID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user record: %w", err)
	}

	var record models.UserRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user record: %w", err)
	}

	return &record, nil
}

// ListUsers retrieves every user record in the collection from Redis
func (r *redisRepository) ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	userIDs, err := r.client.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get user index: %w", err)
	}

	if len(userIDs) == 0 {
		return &ListUsersOutput{
			Records: []*models.UserRecord{},
		}, nil
	}

	// Fetch all records in one round trip
	pipe := r.client.Pipeline()
	recordCommands := make(map[string]*redis.StringCmd)

	for _, userID := range userIDs {
		recordCommands[userID] = pipe.Get(ctx, r.userKey(userID))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get user records: %w", err)
	}

	records := make([]*models.UserRecord, 0, len(userIDs))
	for userID, cmd := range recordCommands {
		recordJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Index entry without a document; skip it
				continue
			}
			return nil, fmt.Errorf("failed to get user record %s: %w", userID, err)
		}

		var record models.UserRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal user record %s: %w", userID, err)
		}

		records = append(records, &record)
	}

	return &ListUsersOutput{
		Records: records,
	}, nil
}

// WatchUser opens a live subscription to a single user record
func (r *redisRepository) WatchUser(ctx context.Context, input *WatchUserInput) (*WatchUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	pubsub := r.client.Subscribe(ctx, r.eventsChannel())

	// Confirm the subscription before the initial snapshot so no change
	// can land between the two unobserved.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to change feed: %w", err)
	}

	events := make(chan *UserEvent)

	go func() {
		defer close(events)
		defer pubsub.Close()

		// Initial snapshot; a missing record just means the identity has
		// not been observed yet.
		record, err := r.GetUser(ctx, &GetUserInput{UserID: input.UserID})
		if err == nil {
			if !send(ctx, events, &UserEvent{Record: record}) {
				return
			}
		} else if !errors.Is(err, ErrUserNotFound) {
			if !send(ctx, events, &UserEvent{Err: err}) {
				return
			}
		}

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				if msg.Payload != input.UserID {
					continue
				}

				record, err := r.GetUser(ctx, &GetUserInput{UserID: input.UserID})
				if err != nil {
					if errors.Is(err, ErrUserNotFound) {
						continue
					}
					if !send(ctx, events, &UserEvent{Err: err}) {
						return
					}
					continue
				}

				if !send(ctx, events, &UserEvent{Record: record}) {
					return
				}
			}
		}
	}()

	return &WatchUserOutput{Events: events}, nil
}

// WatchAll opens a live subscription to the full collection
func (r *redisRepository) WatchAll(ctx context.Context, input *WatchAllInput) (*WatchAllOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	pubsub := r.client.Subscribe(ctx, r.eventsChannel())

	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to change feed: %w", err)
	}

	events := make(chan *CollectionEvent)

	go func() {
		defer close(events)
		defer pubsub.Close()

		emit := func() bool {
			output, err := r.ListUsers(ctx, &ListUsersInput{})
			if err != nil {
				return send(ctx, events, &CollectionEvent{Err: err})
			}
			return send(ctx, events, &CollectionEvent{Records: output.Records})
		}

		// Initial snapshot
		if !emit() {
			return
		}

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-ch:
				if !ok {
					return
				}
				if !emit() {
					return
				}
			}
		}
	}()

	return &WatchAllOutput{Events: events}, nil
}

// send delivers an event unless the watcher's context is done first.
func send[T any](ctx context.Context, events chan<- T, event T) bool {
	select {
	case <-ctx.Done():
		return false
	case events <- event:
		return true
	}
}

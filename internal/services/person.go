package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/people-manager/internal/logger"
	"github.com/sbilibin2017/people-manager/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrPersonNotFound is returned when the caller owns no record with the given sequence number.
	ErrPersonNotFound = errors.New("person not found")
	// ErrEmptyUpdate is returned when a partial update carries no applicable fields.
	ErrEmptyUpdate = errors.New("no updatable fields in payload")
	// ErrProtectedField is returned when a partial update names an identity field.
	ErrProtectedField = errors.New("payload contains a protected field")
	// ErrInvalidAge is returned when age is negative or not an integer.
	ErrInvalidAge = errors.New("age must be a non-negative integer")
)

// PersonReader defines owner-scoped person read operations.
type PersonReader interface {
	GetBySeq(ctx context.Context, userID uuid.UUID, seq int64) (*models.PersonDB, error)
	List(ctx context.Context, userID uuid.UUID, search *string, offset, limit int) ([]models.PersonDB, error)
}

// PersonWriter defines owner-scoped person write operations.
type PersonWriter interface {
	Create(ctx context.Context, userID uuid.UUID, name, roll string, age int, gender string) (*models.PersonDB, error)
	Replace(ctx context.Context, userID uuid.UUID, seq int64, name, roll string, age int, gender string) (*models.PersonDB, error)
	UpdateFields(ctx context.Context, userID uuid.UUID, seq int64, fields map[string]any) (*models.PersonDB, error)
	Delete(ctx context.Context, userID uuid.UUID, seq int64) (*models.PersonDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PersonService handles person CRUD and Kafka change-event publishing.
type PersonService struct {
	readRepo    PersonReader
	writeRepo   PersonWriter
	kafkaWriter KafkaWriter
}

// NewPersonService creates a new PersonService.
func NewPersonService(readRepo PersonReader, writeRepo PersonWriter, kafkaWriter KafkaWriter) *PersonService {
	return &PersonService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a person change event to Kafka. Best effort: a
// publish failure is logged and never fails the request. Events are emitted
// before the ambient request transaction commits, so a later rollback can
// leave an event with no matching row; consumers must treat events as
// notifications, not as state.
func (s *PersonService) publishEvent(ctx context.Context, person *models.PersonDB, operation string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing",
			"person_id", person.ID, "operation", operation)
		return
	}

	event := models.PersonEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    person.UserID.String(),
		PersonID:  person.ID,
		Seq:       person.Seq,
		Operation: operation,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal person event for Kafka",
			"event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish person event to Kafka",
			"event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Person event published to Kafka",
			"event_id", event.EventID, "operation", operation, "person_id", person.ID)
	}
}

// Create persists a new record owned by the caller. The repository allocates
// the next per-owner sequence number under a per-owner lock.
func (s *PersonService) Create(ctx context.Context, userID uuid.UUID, name, roll string, age int, gender string) (*models.PersonDB, error) {
	if age < 0 {
		return nil, ErrInvalidAge
	}

	person, err := s.writeRepo.Create(ctx, userID, name, roll, age, gender)
	if err != nil {
		logger.Log.Errorw("failed to create person", "userID", userID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, person, models.PersonCreated)
	return person, nil
}

// List returns the caller's records ordered by sequence number.
func (s *PersonService) List(ctx context.Context, userID uuid.UUID, search *string, offset, limit int) ([]models.PersonDB, error) {
	persons, err := s.readRepo.List(ctx, userID, search, offset, limit)
	if err != nil {
		logger.Log.Errorw("failed to list persons", "userID", userID, "error", err)
		return nil, err
	}
	return persons, nil
}

// Get returns the caller's record with the given sequence number.
func (s *PersonService) Get(ctx context.Context, userID uuid.UUID, seq int64) (*models.PersonDB, error) {
	person, err := s.readRepo.GetBySeq(ctx, userID, seq)
	if err != nil {
		logger.Log.Errorw("failed to get person", "userID", userID, "seq", seq, "error", err)
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}
	return person, nil
}

// Replace overwrites all mutable fields of the caller's record.
func (s *PersonService) Replace(ctx context.Context, userID uuid.UUID, seq int64, name, roll string, age int, gender string) (*models.PersonDB, error) {
	if age < 0 {
		return nil, ErrInvalidAge
	}

	person, err := s.writeRepo.Replace(ctx, userID, seq, name, roll, age, gender)
	if err != nil {
		logger.Log.Errorw("failed to replace person", "userID", userID, "seq", seq, "error", err)
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}

	s.publishEvent(ctx, person, models.PersonUpdated)
	return person, nil
}

// PartialUpdate applies only the supplied fields to the caller's record.
// Identity fields are rejected, unknown fields are logged and skipped, and at
// least one recognized field must remain or the call fails.
func (s *PersonService) PartialUpdate(ctx context.Context, userID uuid.UUID, seq int64, fields map[string]any) (*models.PersonDB, error) {
	if len(fields) == 0 {
		return nil, ErrEmptyUpdate
	}

	applicable := make(map[string]any, len(fields))
	for field, value := range fields {
		switch {
		case models.PersonProtectedField(field):
			return nil, fmt.Errorf("%w: %s", ErrProtectedField, field)
		case models.PersonUpdatableField(field):
			applicable[field] = value
		default:
			logger.Log.Infow("skipping unrecognized field in partial update",
				"field", field, "userID", userID, "seq", seq)
		}
	}
	if len(applicable) == 0 {
		return nil, ErrEmptyUpdate
	}

	if raw, ok := applicable[models.PersonFieldAge]; ok {
		age, err := toAge(raw)
		if err != nil {
			return nil, err
		}
		applicable[models.PersonFieldAge] = age
	}

	person, err := s.writeRepo.UpdateFields(ctx, userID, seq, applicable)
	if err != nil {
		logger.Log.Errorw("failed to patch person", "userID", userID, "seq", seq, "error", err)
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}

	s.publishEvent(ctx, person, models.PersonUpdated)
	return person, nil
}

// Delete removes the caller's record and returns its last state. Other
// records keep their sequence numbers.
func (s *PersonService) Delete(ctx context.Context, userID uuid.UUID, seq int64) (*models.PersonDB, error) {
	person, err := s.writeRepo.Delete(ctx, userID, seq)
	if err != nil {
		logger.Log.Errorw("failed to delete person", "userID", userID, "seq", seq, "error", err)
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}

	s.publishEvent(ctx, person, models.PersonDeleted)
	return person, nil
}

// toAge coerces a decoded JSON value into a non-negative integer age.
func toAge(v any) (int, error) {
	switch t := v.(type) {
	case int:
		if t < 0 {
			return 0, ErrInvalidAge
		}
		return t, nil
	case float64:
		age := int(t)
		if float64(age) != t || age < 0 {
			return 0, ErrInvalidAge
		}
		return age, nil
	default:
		return 0, ErrInvalidAge
	}
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-planner/internal/logger"
	"github.com/sbilibin2017/gw-trip-planner/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=trip_plan.go -destination=trip_plan_mock.go -package=services

const tripPlanCreated = "trip_plan.created"

var (
	// ErrInvalidTripPlan wraps every payload validation failure.
	ErrInvalidTripPlan = models.ErrInvalidTripPlan
	// ErrMissingOwner is returned when a plan is stored without a user.
	ErrMissingOwner = errors.New("trip plan owner is required")
)

// TripPlanWriter persists trip plans.
type TripPlanWriter interface {
	Save(ctx context.Context, userID uuid.UUID, plan models.TripPlanRequest) (*models.TripPlanDB, error)
}

// TripPlanReader lists stored trip plans.
type TripPlanReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.TripPlanDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AfterCommitFunc defers fn until the transaction carried by ctx commits.
// It reports false when ctx carries no transaction.
type AfterCommitFunc func(ctx context.Context, fn func(ctx context.Context)) bool

// TripPlanService stores trip plans and announces them on Kafka.
type TripPlanService struct {
	writer      TripPlanWriter
	reader      TripPlanReader
	kafkaWriter KafkaWriter
	afterCommit AfterCommitFunc
}

// NewTripPlanService creates a new TripPlanService. kafkaWriter and
// afterCommit may be nil; without afterCommit events are published right
// after the insert.
func NewTripPlanService(writer TripPlanWriter, reader TripPlanReader, kafkaWriter KafkaWriter, afterCommit AfterCommitFunc) *TripPlanService {
	return &TripPlanService{
		writer:      writer,
		reader:      reader,
		kafkaWriter: kafkaWriter,
		afterCommit: afterCommit,
	}
}

// ValidateTripPlan checks the fields every stored plan must carry.
func ValidateTripPlan(plan models.TripPlanRequest) error {
	return plan.Validate()
}

// Create validates plan and inserts it as a new record owned by userID.
// There is no update path: saving an edited plan creates another record.
func (s *TripPlanService) Create(ctx context.Context, userID uuid.UUID, plan models.TripPlanRequest) (*models.TripPlanDB, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	if err := ValidateTripPlan(plan); err != nil {
		logger.Log.Warnw("rejected trip plan", "userID", userID, "error", err)
		return nil, err
	}

	saved, err := s.writer.Save(ctx, userID, plan)
	if err != nil {
		logger.Log.Errorw("failed to save trip plan", "userID", userID, "error", err)
		return nil, err
	}

	logger.Log.Infow("trip plan saved", "userID", userID, "tripPlanID", saved.TripPlanID)

	// A rolled back insert must not be announced.
	publish := func(ctx context.Context) { s.publishCreated(ctx, saved) }
	if s.afterCommit == nil || !s.afterCommit(ctx, publish) {
		publish(ctx)
	}

	return saved, nil
}

// List returns the plans owned by userID.
func (s *TripPlanService) List(ctx context.Context, userID uuid.UUID) ([]models.TripPlanDB, error) {
	plans, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list trip plans", "userID", userID, "error", err)
		return nil, err
	}
	return plans, nil
}

// publishCreated publishes a trip_plan.created event. Failures are logged only.
func (s *TripPlanService) publishCreated(ctx context.Context, plan *models.TripPlanDB) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "tripPlanID", plan.TripPlanID)
		return
	}

	event := models.TripPlanEvent{
		EventID:        uuid.NewString(),
		Type:           tripPlanCreated,
		TripPlanID:     plan.TripPlanID.String(),
		UserID:         plan.UserID.String(),
		Destinations:   plan.Destinations,
		NumberOfPeople: plan.NumberOfPeople,
		Timestamp:      plan.CreatedAt.Unix(),
	}
	if plan.CreatedAt.IsZero() {
		event.Timestamp = time.Now().Unix()
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal trip plan event", "tripPlanID", event.TripPlanID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TripPlanID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish trip plan event", "tripPlanID", event.TripPlanID, "error", err)
	} else {
		logger.Log.Infow("Trip plan event published", "tripPlanID", event.TripPlanID)
	}
}

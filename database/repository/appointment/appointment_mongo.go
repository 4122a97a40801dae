package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new instance of MongoAppointmentRepo.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &MongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}

// Create inserts a new appointment document.
func (repo *MongoAppointmentRepo) Create(appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, appt); err != nil {
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment document by ID.
func (repo *MongoAppointmentRepo) GetByID(appointmentID string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var appt models.Appointment
	filter := bson.M{"id": appointmentID}
	if err := repo.coll.FindOne(ctx, filter).Decode(&appt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching appointment with id %s: %w", appointmentID, err)
	}
	return &appt, nil
}

// ListBusyByProviderDate fetches the pending/confirmed appointments for a provider
// whose start time falls within the given provider-local calendar day. Timestamps
// are stored as native BSON datetimes, so the day is resolved to an absolute range
// here rather than by string comparison.
func (repo *MongoAppointmentRepo) ListBusyByProviderDate(providerID, date string, loc *time.Location) ([]models.Appointment, error) {
	dayStart, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"provider_id": providerID,
		"status":      bson.M{"$in": []string{models.StatusPending, models.StatusConfirmed}},
		"start_time":  bson.M{"$gte": dayStart, "$lt": dayEnd},
	}
	return repo.list(ctx, filter, options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}))
}

// ListByProvider retrieves all appointments for a provider, newest first.
func (repo *MongoAppointmentRepo) ListByProvider(providerID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"provider_id": providerID}
	return repo.list(ctx, filter, options.Find().SetSort(bson.D{{Key: "start_time", Value: -1}}))
}

// ListByCustomer retrieves all appointments for a customer, newest first.
func (repo *MongoAppointmentRepo) ListByCustomer(customerID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"customer_id": customerID}
	return repo.list(ctx, filter, options.Find().SetSort(bson.D{{Key: "start_time", Value: -1}}))
}

// UpdateStatus moves an appointment to a new status, guarded by its expected
// current status. Returns ErrNoMatch when a concurrent transition won.
func (repo *MongoAppointmentRepo) UpdateStatus(appointmentID, fromStatus, toStatus string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": appointmentID, "status": fromStatus}
	update := bson.M{"$set": bson.M{"status": toStatus}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating status for appointment %s: %w", appointmentID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNoMatch
	}
	return nil
}

func (repo *MongoAppointmentRepo) list(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Appointment, error) {
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	for cursor.Next(ctx) {
		var appt models.Appointment
		if err := cursor.Decode(&appt); err != nil {
			return nil, fmt.Errorf("error decoding appointment: %w", err)
		}
		appts = append(appts, appt)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return appts, nil
}

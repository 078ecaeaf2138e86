package appointments

import (
	"context"
	"mindmatch-service/internal/app/contracts"
	"mindmatch-service/internal/app/models"
	"mindmatch-service/internal/pkg/constvars"
	"mindmatch-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	now := time.Now()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now
	result, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrSlotConflict(err)
		}
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	appointment.ID = result.InsertedID.(primitive.ObjectID)
	return appointment, nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var appointment models.Appointment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindByUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"user_id": objectID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) FindActiveByPractitionerAndDate(ctx context.Context, practitionerID, date string) ([]models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(practitionerID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{
		"practitioner_id": objectID,
		"date":            date,
		"status":          bson.M{"$ne": constvars.AppointmentStatusCancelled},
	}
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) ExistsActiveSlot(ctx context.Context, practitionerID, date, timeSlot string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(practitionerID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{
		"practitioner_id": objectID,
		"date":            date,
		"time":            timeSlot,
		"status":          bson.M{"$ne": constvars.AppointmentStatusCancelled},
	}
	count, err := r.Collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, exceptions.ErrMongoDBFindDocument(err)
	}
	return count > 0, nil
}

func (r *AppointmentMongoRepository) UpdateStatus(ctx context.Context, appointmentID, status string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) Delete(ctx context.Context, appointmentID string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

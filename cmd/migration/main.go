package main

import (
	"context"
	"mindmatch-service/internal/app/config"
	"mindmatch-service/internal/app/drivers/database"
	"mindmatch-service/internal/pkg/constvars"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Creates the indexes the service relies on. The partial unique index on
// appointments is the backstop that keeps two active bookings from ever
// landing on the same practitioner slot.
func main() {
	driverConfig := config.NewDriverConfig()
	mongoClient := database.NewMongoDB(driverConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer mongoClient.Disconnect(ctx)

	db := mongoClient.Database(driverConfig.MongoDB.DbName)

	createIndexes(ctx, db.Collection(constvars.MongoCollectionUsers), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	createIndexes(ctx, db.Collection(constvars.MongoCollectionPractitioners), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "specialties", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "average_rating", Value: -1}},
		},
	})

	createIndexes(ctx, db.Collection(constvars.MongoCollectionAppointments), []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "practitioner_id", Value: 1},
				{Key: "date", Value: 1},
				{Key: "time", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": bson.A{
						constvars.AppointmentStatusPlanned,
						constvars.AppointmentStatusCompleted,
					}},
				}),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "date", Value: 1},
				{Key: "time", Value: 1},
			},
		},
	})

	logrus.Println("Migration finished")
}

func createIndexes(ctx context.Context, collection *mongo.Collection, models []mongo.IndexModel) {
	names, err := collection.Indexes().CreateMany(ctx, models)
	if err != nil {
		logrus.Fatalf("Error creating indexes on %s: %v", collection.Name(), err)
	}
	logrus.Printf("Created indexes on %s: %v", collection.Name(), names)
}

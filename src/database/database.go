package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	UserCollection       *mongo.Collection
	ProgramCollection    *mongo.Collection
	SessionCollection    *mongo.Collection
	AttendanceCollection *mongo.Collection
	EnrollmentCollection *mongo.Collection
)

// ConnectMongoDB connects to MongoDB exactly once and binds the
// package-level collections.
func ConnectMongoDB() error {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "CrickZoneDB"
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		UserCollection = GetCollection(dbName, "users")
		ProgramCollection = GetCollection(dbName, "coachingPrograms")
		SessionCollection = GetCollection(dbName, "sessions")
		AttendanceCollection = GetCollection(dbName, "attendanceRecords")
		EnrollmentCollection = GetCollection(dbName, "programEnrollments")

		log.Println("✅ MongoDB connected successfully")

		connectErr = EnsureIndexes(context.TODO())
		if connectErr != nil {
			log.Fatal("❌ Failed to create indexes:", connectErr)
		}
	})

	return connectErr
}

// GetCollection returns a collection by database/collection name
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}

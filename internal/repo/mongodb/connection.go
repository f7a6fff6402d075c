package mongodb

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DB is the shared database handle repositories are built on. Connection
// setup and teardown happen in the application lifecycle, not here.
type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

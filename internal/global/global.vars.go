package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/batkt/sudalgaaQRBackend/config"
	"github.com/batkt/sudalgaaQRBackend/internal/registry"
)

// CollectionNames holds the MongoDB collection names used by the application.
type CollectionNames struct {
	Employees    string // employee records
	Departments  string // department hierarchy roots
	QuestionSets string // survey question sets
	Responses    string // survey responses and ratings
	Attendance   string // daily check-ins
	Settings     string // system settings (SMS, thresholds, policies)
	Keywords     string // tone keywords for feedback screening
}

// Global variables
var Validate *validator.Validate              // input validation
var MongoDB_Session *mongo.Client             // MongoDB connection
var ServerConfig *config.Configuration        // server configuration
var ColNames = CollectionNames{               // collection names
	Employees:    "employees",
	Departments:  "departments",
	QuestionSets: "question_sets",
	Responses:    "responses",
	Attendance:   "attendance",
	Settings:     "settings",
	Keywords:     "keywords",
}

// Registries
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // collections by name
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // databases by name

// GetCollection returns a registered collection by name.
func GetCollection(name string) (*mongo.Collection, bool) {
	return RegistryCollections.Get(name)
}

// Package constants contains configuration switch values shared across layers.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Storage drivers
const (
	StorageDriverMemory   = "memory"
	StorageDriverMongo    = "mongo"
	StorageDriverPostgres = "postgres"
)

// Payment providers
const (
	PaymentProviderRazorpay = "razorpay"
)

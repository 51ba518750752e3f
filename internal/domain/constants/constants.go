// Package constants holds identifiers shared across layers.
package constants

// Deployment environments.
const (
	EnvLocal      = "local"
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// SMS senders used by the OTP delivery worker.
const (
	SMSSenderLog     = "log"
	SMSSenderWebhook = "webhook"
)

// Storage drivers.
const (
	StorageDriverFirestore = "firestore"
	StorageDriverPostgres  = "postgres"
)

// Key-value store backends for OTP challenges and token revocations.
const (
	KVStoreMemory = "memory"
	KVStoreRedis  = "redis"
)

// Document collections. The same names are used as Firestore collections,
// PostgreSQL tables and real-time hub topics.
const (
	CollectionUsers    = "users"
	CollectionProducts = "products"
	CollectionOrders   = "orders"
	CollectionDevices  = "devices"
)

// EventTypeOTPRequested is published when a verification code must be delivered.
const EventTypeOTPRequested = "otp.requested"

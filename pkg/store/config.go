package store

// ObjectConfig holds connection settings for an S3-compatible bucket.
type ObjectConfig struct {
	// Endpoint is the host[:port] of the service; a scheme prefix is stripped.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL selects https.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the containers.
	Bucket string `mapstructure:"bucket" default:"rcol"`
	// Prefix is prepended to every object name.
	Prefix string `mapstructure:"prefix" default:"resources/"`
	// Region of the bucket, e.g. us-east-1.
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds connection setup and the first response byte.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

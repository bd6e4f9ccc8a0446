package storage

// Config holds the MinIO/S3 settings of the bucket asset source.
type Config struct {
	// Endpoint is host:port of the S3 API. A scheme prefix is stripped.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the asset tree.
	Bucket string `mapstructure:"bucket" default:"assets"`
	// Prefix is prepended to every asset directory inside the bucket.
	Prefix string `mapstructure:"prefix" default:""`
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dialing, the TLS handshake and the first response byte.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

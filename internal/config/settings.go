package config

import (
	"github.com/Netflix/go-env"
)

type Settings struct {
	Port        int    `env:"PORT,default=8080"`
	BasePath    string `env:"BASE_PATH"`
	LogEncoding string `env:"LOG_ENCODING,default=console"`

	ArchiveBackend string `env:"ARCHIVE_BACKEND,default=gcs"`
	ArchiveBucket  string `env:"ARCHIVE_BUCKET,default=idris-witness-archive-001"`
	IdentityName   string `env:"IDENTITY_NAME,default=Idris"`

	GCSEndpoint string `env:"GCS_ENDPOINT"`

	S3Endpoint        string `env:"S3_ENDPOINT"`
	S3AccessKeyID     string `env:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY"`
	S3Region          string `env:"S3_REGION,default=us-east-1"`
	S3UseSSL          bool   `env:"S3_USE_SSL,default=true"`

	MongoDBURI      string `env:"MONGODB_URI,default=mongodb://localhost:27017"`
	MongoDBDatabase string `env:"MONGODB_DATABASE,default=witness"`
}

func Load() (Settings, error) {
	var settings Settings
	_, err := env.UnmarshalFromEnviron(&settings)

	return settings, err
}

package config

// Object storage providers supported for avatar uploads
const (
	AwsStorageProvider   = "aws"
	MinioStorageProvider = "minio"
)

// Database types
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

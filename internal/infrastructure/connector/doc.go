// Package connector implements avatar storage on S3 and S3-compatible
// object stores.
package connector

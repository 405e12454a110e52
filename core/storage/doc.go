// Package storage provides an S3/MinIO client used to mirror rewritten
// dataset files and chunk exports to a bucket.
//
// The Client interface is intentionally narrow (bucket existence, bucket
// creation, object upload) so tests can substitute the mock in
// storage/mocks. Mirroring is optional and off by default; the local
// filesystem remains the source of truth.
package storage

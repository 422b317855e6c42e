// Package logger provides the structured logger shared by the kudos services.
package logger

// Logger defines the logging interface.
//
// Messages carry optional key-value pairs, e.g.:
//
//	log.Info("kudo sent", "kudo_id", kudo.ID, "recipient_id", kudo.RecipientID)
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	Panic(msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}

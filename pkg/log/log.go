package log

// Logger ... A leveled key-value logger shared by the client and its local stores.
type Logger interface {
	Debug(msg string, keyvals ...interface{})
	Info(msg string, keyvals ...interface{})
	Warn(msg string, keyvals ...interface{})
	Error(msg string, keyvals ...interface{})
	Panic(msg string, keyvals ...interface{})
	With(keyvals ...interface{}) Logger
}

package logger

// Logger is the logging surface of the key ring processors, services, handlers and
// binaries. The bigint, prime and rsakey packages never log.
//
// Arguments are concatenated like fmt.Sprint; Fatal exits the process and Panic
// panics with the formatted message after logging it.
type Logger interface {
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}

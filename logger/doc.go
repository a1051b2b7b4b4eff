// Package logger provides structured logging for validify using zerolog.
//
// It supports JSON and console output, log level configuration and
// component-scoped loggers with structured fields. Validators log through a
// disabled logger unless one is supplied.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("validation")
//	log.Debug("constraint violated", logger.Fields("kind", "min"))
package logger

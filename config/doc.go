// Package config loads validify settings from YAML files, .env files and
// environment variables using Viper.
//
// # Usage
//
//	settings, err := config.Load("signup")
//	if err != nil {
//	    return err
//	}
//	res := validation.NewText(name, validation.WithLogger(settings.Logger())).
//	    MinLength(2).
//	    CustomMessage(settings.TextMessages()).
//	    Validate()
//
// Environment variables prefixed with the upper-cased service name override
// file values, with underscores separating nested keys
// (e.g. SIGNUP_MESSAGES_TEXT_MIN, SIGNUP_LOGGING_LEVEL).
package config

// Package config loads the login credentials for the access point.
//
// Credentials are read from a small YAML file with two string keys:
//
//	USER: admin
//	PASS: secret
//
// Scalars are taken verbatim, so numeric-looking passwords keep their digits.
// WLX_USER and WLX_PASS override the file; LoadDotEnv can populate them from a
// .env file first. When both variables are set the file may be absent.
//
// Credentials implement slog.LogValuer and never print the password.
package config

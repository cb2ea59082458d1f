// Package config loads runtime configuration for the SecureApp client.
//
// Sources & precedence
//
//  1. Built-in defaults.
//  2. Optional YAML config file: --config <path>, or config.yml in the XDG
//     config dir (~/.config/secureapp).
//  3. Environment variables with the SECUREAPP_ prefix, e.g.
//     SECUREAPP_SERVER_BASE_URL. A .env file in the working directory is
//     loaded first.
//  4. Command-line flags, which override everything else.
//
// # YAML schema
//
//	server_base_url: https://api.example.com
//	request_timeout: 10s
//	token_file: /home/me/.local/state/secureapp/tokens.json
//	log_level: info
//	log_format: console
package config

// Package config handles loading and validating appointd configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables (APPOINTD_*)
//   - Validation of required fields
//   - Default value handling
//
// Security Considerations:
//   - Sensitive values (JWT secret, SMTP password) should be set via
//     environment variables rather than the config file
//   - The config file should have restricted permissions (0600)
//   - The JWT signing secret has no default: startup fails when it is
//     missing or too short, so token integrity can never silently rely
//     on a built-in value
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config

// Package config provides configuration loading and validation for romserve.
//
// The package handles YAML configuration files, environment variables, and CLI flags
// with automatic merging and validation using go-playground/validator.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s) - multiple files merged left-to-right
//  3. Environment variables (ROMSERVE_ prefix)
//  4. CLI flags
//
// Without explicit files, romserve.yaml in the working directory is read if present.
//
// # Usage
//
//	cfg, err := config.Load([]string{"romserve.yaml"}, cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx = config.WithContext(ctx, cfg)
//	cfg, err = config.FromContext(ctx)
//
// # Environment Variables
//
// All config keys map to environment variables with ROMSERVE_ prefix:
//   - server.port → ROMSERVE_SERVER_PORT
//   - assets.dir → ROMSERVE_ASSETS_DIR
//   - api.prefix → ROMSERVE_API_PREFIX
//
// # Validation
//
//   - Port must be 1-65535
//   - Adapter must be chi or chain
//   - router.default_document must be a valid asset path
//   - Ignored prefixes and api.prefix must start with "/"
//   - Log level must be debug, info, warn, or error
//   - env must be dev or prod
package config

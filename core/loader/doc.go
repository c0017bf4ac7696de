// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which defines whether it is enabled
// and how it registers its routes.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager holds the registry of available features:
//   - Register() adds a feature
//   - LoadAll() loads every enabled feature in registration order
//
// Features such as 'catalog', 'upload' and 'integrity' are developed and tested in isolation.
package loader

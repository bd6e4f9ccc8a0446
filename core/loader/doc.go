// Package loader provides the plugin-like feature loading system.
//
// Features (the asset inspector, for now) implement the Feature interface and are
// registered with a Manager, which mounts every enabled one on the Fiber router.
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
//   - Register() records a feature; registration order is load order.
//   - LoadAll() loads the enabled features and stops at the first error.
package loader

// Package domain contains the core domain model for the asset registry.
//
// This package defines:
//   - Entities: Vendor, AssetCategory, System and their embedded values
//   - Value Objects: Location, KvAttribute, ParameterValue, the tagged Value union
//   - Response Wrappers: the envelope every operation returns
//   - Result and error codes: the stable taxonomy carried by wrappers
//   - Domain Errors: sentinel errors crossing the repository boundary
//
// Rules for this package:
//   - No external dependencies except the standard library and uuid
//   - No infrastructure concerns (database, HTTP, etc.)
//   - Value objects should be immutable
package domain

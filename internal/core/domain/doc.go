// Package domain defines the core business entities for octoview.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - UserProfile: A GitHub user's bio fields
//   - Repository: A single repository list entry
//   - RepositoryDetails: The full detail payload for one repository
//   - UserSnapshot: A searched user with their repositories, as cached
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

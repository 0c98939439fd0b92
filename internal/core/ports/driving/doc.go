// Package driving defines the interfaces that external actors use to
// call INTO the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement them; the CLI and TUI adapters consume them.
//
//   - UserSearchService: cache-first user search and suggestions
//   - RepoPager / PagerFactory: incremental repository pagination
//   - RepoDetailsService: repository details with offline fallback
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driving

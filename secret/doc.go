// Package secret provides a secret resolution layer over the Keyfort client.
//
// It supports:
//   - Pluggable secret providers (see Provider + Registry)
//   - Resolving secret references in configuration values (see Resolver)
//   - Strict environment expansion (see ExpandEnvStrict)
//   - TTL caching and concurrent bulk loading (see CachedProvider, Loader)
//
// References use the prefix "secretref:":
//   - Full value:  secretref:keyfort:OPENAI_API_KEY
//   - Inline use:  Bearer secretref:keyfort:OPENAI_API_KEY
package secret

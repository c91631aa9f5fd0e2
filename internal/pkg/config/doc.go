// Package config holds the validated settings of the key ring binaries:
// logging, the key metadata database, key generation defaults and the
// REST server. RestConfig is loaded from YAML with environment overrides.
package config

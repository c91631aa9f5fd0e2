// Package app implements the key ring services on top of the key repository
// and the RSA key processor.
package app

// Package file provides a TOML file-based implementation of the
// configuration port: webhook endpoints, default sheet routing, and
// tuning knobs, with live reload via filesystem notifications.
package file

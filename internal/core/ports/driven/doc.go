// Package driven defines the outbound ports: interfaces the core
// services depend on, implemented by adapters (sheet reader, webhook
// trigger, stores). Core code never imports adapter packages.
package driven

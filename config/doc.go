// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Resolver policy knobs (fare-type aliases, the route-variant display
// number prefix) default to the values the source tariffs were published
// with, so a config file is only needed to override them.
package config

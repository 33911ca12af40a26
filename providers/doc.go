// Package providers groups the commerce platform adapters. Each provider
// package builds its resource services from a core.Runtime; devkit holds the
// shared test doubles.
package providers

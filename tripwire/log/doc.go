// Package log defines the logging contract used across lib-tripwire.
//
// Assertion handlers and the tripwire CLI log through Logger so the backend
// (see the zap package) can be swapped without touching call sites.
package log

// Package units collects numeric limits, decimal storage sizes, durations
// and standard stream descriptors used by tripwire call sites.
package units

// Package constant holds telemetry names shared by tripwire packages.
package constant

// Package timezone centralizes clock access and calendar-day normalization.
//
// The data layer may hand back timestamps with arbitrary time-of-day and zone
// components; everything that compares booking ranges or builds the occupancy
// calendar converts through DayStart first so the rest of the code never
// branches on date representation.
package timezone

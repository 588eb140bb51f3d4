// Package event defines the normalized hackathon record shared by every
// stage of the feed pipeline.
//
// A HackathonEvent is the one common schema all sources normalize into:
// title, canonical URL, start/end dates, location, and the source it came
// from. The package also carries the date parsing helpers and the ordering
// and overlap rules the merger relies on.
package event

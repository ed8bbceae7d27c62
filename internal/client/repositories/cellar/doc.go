// Package cellar holds the cabinet and bottle repositories: the API the CLI
// talks to. Every call decides between the remote store and the local
// cache/queue. Writes made while offline, or whose remote attempt fails for
// a transient reason, are applied to the cache at once and queued for replay.
package cellar

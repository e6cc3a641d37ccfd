// Package model defines the launcher's domain values: sort letters, catalog
// apps and the rows of the grouped app list. Values are plain structs passed
// by value between the catalog, the scrubber and the hosts.
package model

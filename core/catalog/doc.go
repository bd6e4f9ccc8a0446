// Package catalog holds the settings of the startup asset load.
//
// It names the asset source, the directories loaded per kind and the batch
// policy. The assets feature turns a Config into Manager options and load
// directories; this package only defines and validates the settings.
package catalog

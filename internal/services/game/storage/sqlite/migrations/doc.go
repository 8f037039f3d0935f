// Package migrations embeds the SQL schema history of the prize catalog.
package migrations

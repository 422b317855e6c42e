// Package kudos contains the Kudo entity, its visual style and the query
// used to sort and filter the feed.
package kudos

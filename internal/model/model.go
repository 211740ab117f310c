// Package model holds the stored record types, the request payloads that
// create them, and the JSON codecs for dates and skill lists.
package model

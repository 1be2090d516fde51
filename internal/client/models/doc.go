// Package models defines the marketplace records the console reads from and
// writes to the REST API. JSON tags follow the API's field names.
package models

// Package entity holds the state pieces and reducers shared by every domain
// slice: the message/loader status, a paginated collection, and a
// single-entity detail.
//
// Every reducer is a pure function of (state, input, result). Nothing here
// touches the network or storage.
package entity

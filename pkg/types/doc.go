// Package types defines the Item and ToDo entity types, the BlobStore
// interface, configuration, and the standard error types for todos.
//
// A ToDo is an ordered, titled list of Items. Bulk mutations are lenient:
// text is promoted to a new Item, Items pass through, and every other
// value is dropped. Single-entry operations such as Add are strict and
// report invalid input through the sentinel errors declared here.
package types

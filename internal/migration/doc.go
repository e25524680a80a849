// Package migration implements the startup gate that refuses to serve
// traffic until the persistent schema matches the migrations shipped with
// the binary.
package migration

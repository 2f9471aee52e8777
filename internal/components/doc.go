// Package components holds the component kinds shared by the binaries and their
// typed views. views_gen.go is generated from components.yaml.
package components

//go:generate go run ../../cmd/viewgen -in components.yaml -out views_gen.go

// Package testsupport provides in-memory fakes and file builders shared by
// tests across the module.
package testsupport

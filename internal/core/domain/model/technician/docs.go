// Package technician implements the technician aggregate: a field worker who
// installs and services purifiers for one tenant.
//
// The aggregate owns the availability contract of the workflow engine: its
// work status is busy exactly while the technician holds one open
// service-request assignment, and the free->busy transition is a guarded
// compare-and-set so two concurrent assignments can never both claim the
// same technician.
package technician

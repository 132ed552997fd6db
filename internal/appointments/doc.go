// Package appointments provides storage for booking requests.
//
// Visitors create appointments through the public booking endpoint;
// the administrator reviews and manages them behind the access gate.
// Appointments move through a small lifecycle: pending on creation,
// then confirmed or cancelled by the administrator.
package appointments

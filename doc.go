// Package main provides the entry point of clinicdesk, an appointment booking
// backend for a clinic. It runs a Fiber web server that stores appointment
// requests with gorm, serves the public booking page and the admin dashboard,
// and notifies the doctor by email and WhatsApp when an appointment is confirmed.
package main

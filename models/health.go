package models

// HealthResponse is the payload returned by the health endpoint.
//
// The wire representation is fixed: clients and monitors key off the exact
// field names and values, so neither side should ever need to version this
// shape.
type HealthResponse struct {
	// Message is a static greeting identifying the service.
	Message string `json:"message"`

	// Status reports service liveness. Always "ok" while the process is
	// able to answer requests at all.
	Status string `json:"status"`
}

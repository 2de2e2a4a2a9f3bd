package slogx

// Attribute keys shared by every log line of the service.
const (
	ErrorKey         = "error"
	PackageKey       = "package"
	EventIDKey       = "eventId"
	ParticipantIDKey = "participantId"
	LotNumberKey     = "lotNumber"
	RequestIDKey     = "requestId"
)

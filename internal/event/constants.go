package event

// EventSchemaVersion is the current version of the event envelope format
const EventSchemaVersion = "1.0"

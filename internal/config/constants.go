package config

const (
	// Queue defaults mirroring the equip command contract
	DefaultEquipTopic     = "queue_equip_item"
	DefaultEquipGroupID   = "equip-workers"
	DefaultDeadLetterPath = "dead_letter_events.jsonl"

	// DefaultConsumerRetries bounds redelivery attempts before dead-lettering
	DefaultConsumerRetries = 1

	// Cache defaults
	DefaultCacheTTLSeconds     = 60
	DefaultCacheRetries        = 1
	DefaultCacheBaseWaitMillis = 500
)

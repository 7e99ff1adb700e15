package eventbus

// Priority classifies a topic's importance for delivery guarantees.
type Priority int

const (
	PriorityLow      Priority = 0
	PriorityNormal   Priority = 1
	PriorityCritical Priority = 2
)

// DeliveryStrategy determines behaviour when a subscriber's channel is full.
type DeliveryStrategy string

const (
	// StrategyDropOldest removes the oldest event from the channel and enqueues the new one.
	StrategyDropOldest DeliveryStrategy = "drop-oldest"
	// StrategyDropNewest discards the incoming event when the channel is full.
	StrategyDropNewest DeliveryStrategy = "drop-newest"
)

// DeliveryPolicy controls how a topic handles backpressure.
type DeliveryPolicy struct {
	Strategy DeliveryStrategy
	Priority Priority
}

// defaultPolicy is used for topics without an explicit entry in defaultPolicies.
var defaultPolicy = DeliveryPolicy{
	Strategy: StrategyDropOldest,
	Priority: PriorityNormal,
}

// defaultPolicies maps known topics to their delivery policies.
var defaultPolicies = map[Topic]DeliveryPolicy{
	// A stale connection status is worse than a dropped intermediate one;
	// subscribers always want the latest transition.
	TopicConnectionStatus: {Strategy: StrategyDropOldest, Priority: PriorityCritical},
	TopicPlaybackChanged:  {Strategy: StrategyDropOldest, Priority: PriorityNormal},
	TopicChatMessage:      {Strategy: StrategyDropOldest, Priority: PriorityNormal},
	TopicRosterChanged:    {Strategy: StrategyDropNewest, Priority: PriorityLow},
	TopicBridgeLog:        {Strategy: StrategyDropNewest, Priority: PriorityLow},
}

func policyFor(topic Topic, overrides map[Topic]DeliveryPolicy) DeliveryPolicy {
	if overrides != nil {
		if p, ok := overrides[topic]; ok {
			return p
		}
	}
	if p, ok := defaultPolicies[topic]; ok {
		return p
	}
	return defaultPolicy
}

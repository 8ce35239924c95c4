package model

// Bot strategy constants
const (
	BotStrategyGreedy = "greedy"
)

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy string) string {
	switch strategy {
	case BotStrategyGreedy:
		return "Greedy first-fit"
	default:
		return strategy
	}
}

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategyGreedy}
}

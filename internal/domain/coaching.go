package domain

// Provider selects which text-generation backend serves coaching requests.
type Provider string

const (
	ProviderOllama Provider = "ollama"
	ProviderOpenAI Provider = "openai"
	ProviderClaude Provider = "claude"
	ProviderMock   Provider = "mock"
)

func (p Provider) Valid() bool {
	switch p {
	case ProviderOllama, ProviderOpenAI, ProviderClaude, ProviderMock:
		return true
	default:
		return false
	}
}

// CoachingKind names one of the three coaching operations.
type CoachingKind string

const (
	CoachingActivity CoachingKind = "activity"
	CoachingHealth   CoachingKind = "health"
	CoachingPlan     CoachingKind = "plan"
)

func (k CoachingKind) Valid() bool {
	switch k {
	case CoachingActivity, CoachingHealth, CoachingPlan:
		return true
	default:
		return false
	}
}

// DataKind names one of the retrieval operations exposed by fetch-data.
type DataKind string

const (
	DataActivities DataKind = "activities"
	DataHealth     DataKind = "health"
	DataStats      DataKind = "stats"
)

func (k DataKind) Valid() bool {
	switch k {
	case DataActivities, DataHealth, DataStats:
		return true
	default:
		return false
	}
}

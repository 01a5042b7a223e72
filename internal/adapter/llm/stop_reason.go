package llm

// Normalized stop reasons reported in domain.ChatCompletion.
const (
	StopReasonEnd       = "end"
	StopReasonMaxTokens = "max_tokens"
	StopReasonFiltered  = "filtered"
)
